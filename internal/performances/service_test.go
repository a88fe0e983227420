package performances

import (
	"context"
	"testing"
	"time"

	"stagely/internal/halls"
	"stagely/internal/plays"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, performance *Performance) error {
	args := m.Called(ctx, performance)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Performance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Performance), args.Error(1)
}

func (m *MockRepository) GetAll(ctx context.Context, filter PerformanceFilter) ([]Performance, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Performance), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) CountTickets(ctx context.Context, performanceID uuid.UUID) (int64, error) {
	args := m.Called(ctx, performanceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountTicketsBatch(ctx context.Context, performanceIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, performanceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockRepository) GetTakenPlaces(ctx context.Context, performanceID uuid.UUID) ([]TakenPlace, error) {
	args := m.Called(ctx, performanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TakenPlace), args.Error(1)
}

func newServiceWithMock(repo *MockRepository) Service {
	return NewService(repo, plays.NewRepository(nil), halls.NewRepository(nil))
}

func newScheduledPerformance(id uuid.UUID, rows, seatsInRow int) *Performance {
	return &Performance{
		ID:            id,
		PlayID:        uuid.New(),
		Play:          plays.Play{Title: "Hamlet"},
		TheatreHallID: uuid.New(),
		TheatreHall:   halls.TheatreHall{Name: "Main Stage", Rows: rows, SeatsInRow: seatsInRow},
		ShowTime:      time.Date(2026, 10, 1, 19, 0, 0, 0, time.UTC),
	}
}

func TestAvailableSeats(t *testing.T) {
	t.Run("subtracts sold tickets from capacity", func(t *testing.T) {
		repo := new(MockRepository)
		service := newServiceWithMock(repo)

		performanceID := uuid.New()
		repo.On("GetByID", mock.Anything, performanceID).Return(newScheduledPerformance(performanceID, 5, 10), nil)
		repo.On("CountTickets", mock.Anything, performanceID).Return(int64(2), nil)

		available, err := service.AvailableSeats(context.Background(), performanceID)
		require.NoError(t, err)
		assert.Equal(t, 48, available)
	})

	t.Run("zero when sold out", func(t *testing.T) {
		repo := new(MockRepository)
		service := newServiceWithMock(repo)

		performanceID := uuid.New()
		repo.On("GetByID", mock.Anything, performanceID).Return(newScheduledPerformance(performanceID, 2, 3), nil)
		repo.On("CountTickets", mock.Anything, performanceID).Return(int64(6), nil)

		available, err := service.AvailableSeats(context.Background(), performanceID)
		require.NoError(t, err)
		assert.Equal(t, 0, available)
	})

	t.Run("negative availability is an internal error", func(t *testing.T) {
		repo := new(MockRepository)
		service := newServiceWithMock(repo)

		performanceID := uuid.New()
		repo.On("GetByID", mock.Anything, performanceID).Return(newScheduledPerformance(performanceID, 2, 3), nil)
		repo.On("CountTickets", mock.Anything, performanceID).Return(int64(7), nil)

		_, err := service.AvailableSeats(context.Background(), performanceID)
		assert.ErrorIs(t, err, ErrInconsistentAvailability)
	})
}

func TestGetPerformanceByID_TakenPlaces(t *testing.T) {
	repo := new(MockRepository)
	service := newServiceWithMock(repo)

	performanceID := uuid.New()
	repo.On("GetByID", mock.Anything, performanceID).Return(newScheduledPerformance(performanceID, 5, 10), nil)
	repo.On("GetTakenPlaces", mock.Anything, performanceID).Return([]TakenPlace{
		{Row: 1, Seat: 1},
		{Row: 3, Seat: 7},
	}, nil)

	detail, err := service.GetPerformanceByID(context.Background(), performanceID.String())
	require.NoError(t, err)

	assert.Equal(t, 5, detail.Rows)
	assert.Equal(t, 10, detail.SeatsInRow)
	assert.Equal(t, 50, detail.Capacity)
	assert.Equal(t, 48, detail.TicketsAvailable)
	assert.Equal(t, []TakenPlace{{Row: 1, Seat: 1}, {Row: 3, Seat: 7}}, detail.TakenPlaces)
}

func TestGetPerformances_DateFilter(t *testing.T) {
	repo := new(MockRepository)
	service := newServiceWithMock(repo)

	repo.On("GetAll", mock.Anything, mock.MatchedBy(func(filter PerformanceFilter) bool {
		return filter.Date != nil && filter.Date.Format("2006-01-02") == "2026-10-01"
	})).Return([]Performance{}, int64(0), nil)
	repo.On("CountTicketsBatch", mock.Anything, mock.Anything).Return(map[uuid.UUID]int64{}, nil)

	_, err := service.GetPerformances(context.Background(), PerformanceListQuery{Date: "2026-10-01"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetPerformances_RejectsBadDate(t *testing.T) {
	repo := new(MockRepository)
	service := newServiceWithMock(repo)

	_, err := service.GetPerformances(context.Background(), PerformanceListQuery{Date: "01-10-2026"})
	assert.ErrorIs(t, err, ErrInvalidDateFilter)
	repo.AssertNotCalled(t, "GetAll")
}

func TestGetPerformances_NegativeAvailabilityIsInternalError(t *testing.T) {
	repo := new(MockRepository)
	service := newServiceWithMock(repo)

	performance := newScheduledPerformance(uuid.New(), 2, 2)

	repo.On("GetAll", mock.Anything, mock.Anything).Return([]Performance{*performance}, int64(1), nil)
	repo.On("CountTicketsBatch", mock.Anything, mock.Anything).Return(map[uuid.UUID]int64{
		performance.ID: 9,
	}, nil)

	resp, err := service.GetPerformances(context.Background(), PerformanceListQuery{})
	assert.ErrorIs(t, err, ErrInconsistentAvailability)
	assert.Nil(t, resp)
}

func TestGetPerformances_AvailabilityPerRow(t *testing.T) {
	repo := new(MockRepository)
	service := newServiceWithMock(repo)

	first := newScheduledPerformance(uuid.New(), 5, 10)
	second := newScheduledPerformance(uuid.New(), 2, 2)

	repo.On("GetAll", mock.Anything, mock.Anything).Return([]Performance{*first, *second}, int64(2), nil)
	repo.On("CountTicketsBatch", mock.Anything, mock.Anything).Return(map[uuid.UUID]int64{
		first.ID:  3,
		second.ID: 4,
	}, nil)

	resp, err := service.GetPerformances(context.Background(), PerformanceListQuery{})
	require.NoError(t, err)
	require.Len(t, resp.Performances, 2)

	assert.Equal(t, 47, resp.Performances[0].TicketsAvailable)
	assert.Equal(t, 0, resp.Performances[1].TicketsAvailable)
	assert.Equal(t, 1, resp.TotalPages)
}
