package plays

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDList(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	t.Run("empty input means no filter", func(t *testing.T) {
		ids, err := parseIDList("")
		require.NoError(t, err)
		assert.Nil(t, ids)

		ids, err = parseIDList("   ")
		require.NoError(t, err)
		assert.Nil(t, ids)
	})

	t.Run("single ID", func(t *testing.T) {
		ids, err := parseIDList(first.String())
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{first}, ids)
	})

	t.Run("comma separated list", func(t *testing.T) {
		ids, err := parseIDList(first.String() + "," + second.String())
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{first, second}, ids)
	})

	t.Run("tolerates whitespace and empty segments", func(t *testing.T) {
		ids, err := parseIDList(" " + first.String() + " ,, " + second.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{first, second}, ids)
	})

	t.Run("rejects malformed IDs", func(t *testing.T) {
		_, err := parseIDList("not-a-uuid")
		assert.ErrorIs(t, err, ErrInvalidIDFilter)

		_, err = parseIDList(first.String() + ",123")
		assert.ErrorIs(t, err, ErrInvalidIDFilter)
	})
}
