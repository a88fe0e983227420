package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"stagely/internal/halls"
	"stagely/internal/performances"
	"stagely/internal/plays"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateWithTickets(ctx context.Context, reservation *Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reservation), args.Error(1)
}

func (m *MockRepository) GetByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]Reservation, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Reservation), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetTakenSeats(ctx context.Context, performanceIDs []uuid.UUID) (map[SeatKey]bool, error) {
	args := m.Called(ctx, performanceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[SeatKey]bool), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPerformanceRepository struct {
	mock.Mock
}

func (m *MockPerformanceRepository) Create(ctx context.Context, performance *performances.Performance) error {
	args := m.Called(ctx, performance)
	return args.Error(0)
}

func (m *MockPerformanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*performances.Performance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*performances.Performance), args.Error(1)
}

func (m *MockPerformanceRepository) GetAll(ctx context.Context, filter performances.PerformanceFilter) ([]performances.Performance, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]performances.Performance), args.Get(1).(int64), args.Error(2)
}

func (m *MockPerformanceRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockPerformanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPerformanceRepository) CountTickets(ctx context.Context, performanceID uuid.UUID) (int64, error) {
	args := m.Called(ctx, performanceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPerformanceRepository) CountTicketsBatch(ctx context.Context, performanceIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, performanceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockPerformanceRepository) GetTakenPlaces(ctx context.Context, performanceID uuid.UUID) ([]performances.TakenPlace, error) {
	args := m.Called(ctx, performanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]performances.TakenPlace), args.Error(1)
}

func newTestPerformance(id uuid.UUID, rows, seatsInRow int) *performances.Performance {
	return &performances.Performance{
		ID:          id,
		Play:        plays.Play{Title: "Hamlet"},
		TheatreHall: halls.TheatreHall{ID: uuid.New(), Name: "Main Stage", Rows: rows, SeatsInRow: seatsInRow},
		ShowTime:    time.Date(2026, 10, 1, 19, 0, 0, 0, time.UTC),
	}
}

func TestCreateReservation_EmptyBatch(t *testing.T) {
	repo := new(MockRepository)
	perfRepo := new(MockPerformanceRepository)
	service := NewService(repo, perfRepo)

	_, err := service.CreateReservation(context.Background(), uuid.NewString(), CreateReservationRequest{})

	assert.ErrorIs(t, err, ErrEmptyBatch)
	repo.AssertNotCalled(t, "CreateWithTickets")
}

func TestCreateReservation_UnknownPerformance(t *testing.T) {
	repo := new(MockRepository)
	perfRepo := new(MockPerformanceRepository)
	service := NewService(repo, perfRepo)

	performanceID := uuid.New()
	perfRepo.On("GetByID", mock.Anything, performanceID).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.CreateReservation(context.Background(), uuid.NewString(), CreateReservationRequest{
		Tickets: []TicketRequest{{PerformanceID: performanceID.String(), Row: 1, Seat: 1}},
	})

	assert.ErrorIs(t, err, ErrPerformanceNotFound)
	repo.AssertNotCalled(t, "CreateWithTickets")
}

func TestCreateReservation_SeatOutOfRangeAbortsBatch(t *testing.T) {
	repo := new(MockRepository)
	perfRepo := new(MockPerformanceRepository)
	service := NewService(repo, perfRepo)

	performanceID := uuid.New()
	perfRepo.On("GetByID", mock.Anything, performanceID).Return(newTestPerformance(performanceID, 5, 10), nil)

	// Second ticket is out of range; nothing may be persisted.
	_, err := service.CreateReservation(context.Background(), uuid.NewString(), CreateReservationRequest{
		Tickets: []TicketRequest{
			{PerformanceID: performanceID.String(), Row: 1, Seat: 1},
			{PerformanceID: performanceID.String(), Row: 6, Seat: 1},
		},
	})

	var outOfRange *SeatOutOfRangeError
	require.True(t, errors.As(err, &outOfRange))
	assert.Equal(t, 1, outOfRange.TicketIndex)
	assert.Equal(t, "row", outOfRange.Field)
	repo.AssertNotCalled(t, "GetTakenSeats")
	repo.AssertNotCalled(t, "CreateWithTickets")
}

func TestCreateReservation_DuplicateSeatWithinBatch(t *testing.T) {
	repo := new(MockRepository)
	perfRepo := new(MockPerformanceRepository)
	service := NewService(repo, perfRepo)

	performanceID := uuid.New()
	perfRepo.On("GetByID", mock.Anything, performanceID).Return(newTestPerformance(performanceID, 5, 10), nil)
	repo.On("GetTakenSeats", mock.Anything, mock.Anything).Return(map[SeatKey]bool{}, nil)

	_, err := service.CreateReservation(context.Background(), uuid.NewString(), CreateReservationRequest{
		Tickets: []TicketRequest{
			{PerformanceID: performanceID.String(), Row: 2, Seat: 3},
			{PerformanceID: performanceID.String(), Row: 2, Seat: 3},
		},
	})

	var seatTaken *SeatTakenError
	require.True(t, errors.As(err, &seatTaken))
	assert.Equal(t, 2, seatTaken.Row)
	assert.Equal(t, 3, seatTaken.Seat)
	repo.AssertNotCalled(t, "CreateWithTickets")
}

func TestCreateReservation_SeatAlreadySold(t *testing.T) {
	repo := new(MockRepository)
	perfRepo := new(MockPerformanceRepository)
	service := NewService(repo, perfRepo)

	performanceID := uuid.New()
	perfRepo.On("GetByID", mock.Anything, performanceID).Return(newTestPerformance(performanceID, 5, 10), nil)
	repo.On("GetTakenSeats", mock.Anything, mock.Anything).Return(map[SeatKey]bool{
		{PerformanceID: performanceID, Row: 4, Seat: 7}: true,
	}, nil)

	_, err := service.CreateReservation(context.Background(), uuid.NewString(), CreateReservationRequest{
		Tickets: []TicketRequest{
			{PerformanceID: performanceID.String(), Row: 1, Seat: 1},
			{PerformanceID: performanceID.String(), Row: 4, Seat: 7},
		},
	})

	var seatTaken *SeatTakenError
	require.True(t, errors.As(err, &seatTaken))
	assert.Equal(t, performanceID, seatTaken.PerformanceID)
	assert.Equal(t, 4, seatTaken.Row)
	assert.Equal(t, 7, seatTaken.Seat)
	repo.AssertNotCalled(t, "CreateWithTickets")
}

func TestCreateReservation_ConcurrentConflictSurfacesAsSeatTaken(t *testing.T) {
	repo := new(MockRepository)
	perfRepo := new(MockPerformanceRepository)
	service := NewService(repo, perfRepo)

	performanceID := uuid.New()
	perfRepo.On("GetByID", mock.Anything, performanceID).Return(newTestPerformance(performanceID, 5, 10), nil)
	repo.On("GetTakenSeats", mock.Anything, mock.Anything).Return(map[SeatKey]bool{}, nil)

	// The pre-check passed but a concurrent insert won at the unique
	// index; the repository reports the losing seat.
	repo.On("CreateWithTickets", mock.Anything, mock.Anything).Return(&SeatTakenError{
		PerformanceID: performanceID,
		Row:           1,
		Seat:          2,
	})

	_, err := service.CreateReservation(context.Background(), uuid.NewString(), CreateReservationRequest{
		Tickets: []TicketRequest{{PerformanceID: performanceID.String(), Row: 1, Seat: 2}},
	})

	var seatTaken *SeatTakenError
	require.True(t, errors.As(err, &seatTaken))
	assert.Equal(t, 1, seatTaken.Row)
	assert.Equal(t, 2, seatTaken.Seat)
}

func TestCreateReservation_Success(t *testing.T) {
	repo := new(MockRepository)
	perfRepo := new(MockPerformanceRepository)
	service := NewService(repo, perfRepo)

	userID := uuid.New()
	performanceID := uuid.New()
	otherPerformanceID := uuid.New()
	perfRepo.On("GetByID", mock.Anything, performanceID).Return(newTestPerformance(performanceID, 5, 10), nil)
	perfRepo.On("GetByID", mock.Anything, otherPerformanceID).Return(newTestPerformance(otherPerformanceID, 3, 4), nil)
	repo.On("GetTakenSeats", mock.Anything, mock.Anything).Return(map[SeatKey]bool{}, nil)
	repo.On("CreateWithTickets", mock.Anything, mock.Anything).Return(nil)

	resp, err := service.CreateReservation(context.Background(), userID.String(), CreateReservationRequest{
		Tickets: []TicketRequest{
			{PerformanceID: performanceID.String(), Row: 5, Seat: 10},
			{PerformanceID: otherPerformanceID.String(), Row: 1, Seat: 1},
			{PerformanceID: performanceID.String(), Row: 1, Seat: 2},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Tickets, 3)

	// Response order matches request order.
	assert.Equal(t, performanceID.String(), resp.Tickets[0].PerformanceID)
	assert.Equal(t, 5, resp.Tickets[0].Row)
	assert.Equal(t, 10, resp.Tickets[0].Seat)
	assert.Equal(t, otherPerformanceID.String(), resp.Tickets[1].PerformanceID)
	assert.Equal(t, performanceID.String(), resp.Tickets[2].PerformanceID)
	assert.Equal(t, userID.String(), resp.UserID)

	// Each distinct performance is loaded once.
	perfRepo.AssertNumberOfCalls(t, "GetByID", 2)
	repo.AssertExpectations(t)

	// Tickets nest the performance they were booked for.
	require.NotNil(t, resp.Tickets[0].Performance)
	assert.Equal(t, performanceID.String(), resp.Tickets[0].Performance.ID)
	assert.Equal(t, "Hamlet", resp.Tickets[0].Performance.PlayTitle)
	assert.Equal(t, "Main Stage", resp.Tickets[0].Performance.TheatreHallName)
	assert.Equal(t, otherPerformanceID.String(), resp.Tickets[1].Performance.ID)
}

func TestGetReservationByID_OwnershipEnforced(t *testing.T) {
	repo := new(MockRepository)
	perfRepo := new(MockPerformanceRepository)
	service := NewService(repo, perfRepo)

	owner := uuid.New()
	stranger := uuid.New()
	reservationID := uuid.New()

	repo.On("GetByID", mock.Anything, reservationID).Return(&Reservation{
		ID:     reservationID,
		UserID: owner,
	}, nil)

	_, err := service.GetReservationByID(context.Background(), stranger.String(), reservationID.String())
	assert.ErrorIs(t, err, ErrNotReservationOwner)

	resp, err := service.GetReservationByID(context.Background(), owner.String(), reservationID.String())
	require.NoError(t, err)
	assert.Equal(t, reservationID.String(), resp.ID)
}

func TestCancelReservation(t *testing.T) {
	repo := new(MockRepository)
	perfRepo := new(MockPerformanceRepository)
	service := NewService(repo, perfRepo)

	owner := uuid.New()
	reservationID := uuid.New()

	repo.On("GetByID", mock.Anything, reservationID).Return(&Reservation{
		ID:     reservationID,
		UserID: owner,
	}, nil)
	repo.On("Delete", mock.Anything, reservationID).Return(nil)

	err := service.CancelReservation(context.Background(), owner.String(), reservationID.String())
	require.NoError(t, err)
	repo.AssertCalled(t, "Delete", mock.Anything, reservationID)
}

func TestGetUserReservations_TicketsNestPerformanceSummaries(t *testing.T) {
	repo := new(MockRepository)
	perfRepo := new(MockPerformanceRepository)
	service := NewService(repo, perfRepo)

	userID := uuid.New()
	performance := newTestPerformance(uuid.New(), 5, 10)

	repo.On("GetByUser", mock.Anything, userID, 1, 10).Return([]Reservation{
		{
			ID:     uuid.New(),
			UserID: userID,
			Tickets: []Ticket{
				{ID: uuid.New(), PerformanceID: performance.ID, Performance: *performance, Row: 2, Seat: 4},
			},
		},
	}, int64(1), nil)

	resp, err := service.GetUserReservations(context.Background(), userID.String(), ReservationListQuery{})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	require.Len(t, resp.Reservations[0].Tickets, 1)

	ticket := resp.Reservations[0].Tickets[0]
	require.NotNil(t, ticket.Performance)
	assert.Equal(t, performance.ID.String(), ticket.Performance.ID)
	assert.Equal(t, "Hamlet", ticket.Performance.PlayTitle)
	assert.Equal(t, "Main Stage", ticket.Performance.TheatreHallName)
	assert.Equal(t, performance.ShowTime, ticket.Performance.ShowTime)
}

func TestGetUserReservations_Pagination(t *testing.T) {
	repo := new(MockRepository)
	perfRepo := new(MockPerformanceRepository)
	service := NewService(repo, perfRepo)

	userID := uuid.New()
	repo.On("GetByUser", mock.Anything, userID, 1, 10).Return([]Reservation{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}, int64(25), nil)

	resp, err := service.GetUserReservations(context.Background(), userID.String(), ReservationListQuery{})
	require.NoError(t, err)

	assert.Len(t, resp.Reservations, 2)
	assert.Equal(t, int64(25), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 3, resp.TotalPages)
}
