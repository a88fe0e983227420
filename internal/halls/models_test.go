package halls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacity(t *testing.T) {
	tests := []struct {
		name string
		hall TheatreHall
		want int
	}{
		{"typical hall", TheatreHall{Rows: 20, SeatsInRow: 30}, 600},
		{"single seat", TheatreHall{Rows: 1, SeatsInRow: 1}, 1},
		{"single row", TheatreHall{Rows: 1, SeatsInRow: 12}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hall.Capacity())
		})
	}
}

func TestToResponse(t *testing.T) {
	hall := TheatreHall{Name: "Main Stage", Rows: 10, SeatsInRow: 15}
	resp := hall.ToResponse()

	assert.Equal(t, "Main Stage", resp.Name)
	assert.Equal(t, 10, resp.Rows)
	assert.Equal(t, 15, resp.SeatsInRow)
	assert.Equal(t, 150, resp.Capacity)
}
