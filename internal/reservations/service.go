package reservations

import (
	"context"
	"errors"
	"fmt"

	"stagely/internal/performances"
	"stagely/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	CreateReservation(ctx context.Context, userID string, req CreateReservationRequest) (*ReservationResponse, error)
	GetUserReservations(ctx context.Context, userID string, query ReservationListQuery) (*PaginatedReservations, error)
	GetReservationByID(ctx context.Context, userID, id string) (*ReservationResponse, error)
	CancelReservation(ctx context.Context, userID, id string) error
}

type service struct {
	repo     Repository
	perfRepo performances.Repository
	log      *logger.Logger
}

func NewService(repo Repository, perfRepo performances.Repository) Service {
	return &service{
		repo:     repo,
		perfRepo: perfRepo,
		log:      logger.GetDefault(),
	}
}

// CreateReservation books a batch of seats atomically. Every ticket is
// validated against its hall grid and against already sold seats
// before anything is written; the batch either persists in full or
// not at all. Ticket order in the response matches the request.
func (s *service) CreateReservation(ctx context.Context, userID string, req CreateReservationRequest) (*ReservationResponse, error) {
	if len(req.Tickets) == 0 {
		return nil, ErrEmptyBatch
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	// Load each distinct performance once, hall included.
	perfByID := make(map[uuid.UUID]*performances.Performance)
	var perfIDs []uuid.UUID
	for _, tr := range req.Tickets {
		performanceID, err := uuid.Parse(tr.PerformanceID)
		if err != nil {
			return nil, fmt.Errorf("invalid performance ID %q: %w", tr.PerformanceID, err)
		}
		if _, seen := perfByID[performanceID]; seen {
			continue
		}
		performance, err := s.perfRepo.GetByID(ctx, performanceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrPerformanceNotFound, performanceID)
			}
			return nil, fmt.Errorf("failed to load performance: %w", err)
		}
		perfByID[performanceID] = performance
		perfIDs = append(perfIDs, performanceID)
	}

	// Bounds check every ticket before touching sold-seat state.
	tickets := make([]Ticket, len(req.Tickets))
	for i, tr := range req.Tickets {
		performanceID := uuid.MustParse(tr.PerformanceID)
		performance := perfByID[performanceID]
		if err := ValidateSeat(i, tr.Row, tr.Seat, &performance.TheatreHall); err != nil {
			return nil, err
		}
		tickets[i] = Ticket{
			ID:            uuid.New(),
			PerformanceID: performanceID,
			Row:           tr.Row,
			Seat:          tr.Seat,
		}
	}

	// Pre-check sold and intra-batch duplicate seats. A concurrent
	// sale can still slip past this read; the unique index catches it
	// at insert time.
	taken, err := s.repo.GetTakenSeats(ctx, perfIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check sold seats: %w", err)
	}
	for _, t := range tickets {
		key := SeatKey{PerformanceID: t.PerformanceID, Row: t.Row, Seat: t.Seat}
		if taken[key] {
			s.log.LogSeatConflict(ctx, t.PerformanceID.String(), t.Row, t.Seat)
			return nil, &SeatTakenError{PerformanceID: t.PerformanceID, Row: t.Row, Seat: t.Seat}
		}
		taken[key] = true
	}

	reservation := &Reservation{
		ID:      uuid.New(),
		UserID:  uid,
		Tickets: tickets,
	}

	if err := s.repo.CreateWithTickets(ctx, reservation); err != nil {
		var seatErr *SeatTakenError
		if errors.As(err, &seatErr) {
			s.log.LogSeatConflict(ctx, seatErr.PerformanceID.String(), seatErr.Row, seatErr.Seat)
			return nil, err
		}
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.log.LogReservationCreated(ctx, reservation.ID.String(), userID, len(tickets))

	// The performances were already loaded for validation, so the
	// response can nest them without another read.
	for i := range reservation.Tickets {
		reservation.Tickets[i].Performance = *perfByID[reservation.Tickets[i].PerformanceID]
	}

	response := toReservationResponse(reservation)
	return &response, nil
}

func (s *service) GetUserReservations(ctx context.Context, userID string, query ReservationListQuery) (*PaginatedReservations, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	reservations, total, err := s.repo.GetByUser(ctx, uid, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	responses := make([]ReservationResponse, len(reservations))
	for i := range reservations {
		responses[i] = toReservationResponse(&reservations[i])
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return &PaginatedReservations{
		Reservations: responses,
		Total:        total,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
	}, nil
}

func (s *service) GetReservationByID(ctx context.Context, userID, id string) (*ReservationResponse, error) {
	reservation, err := s.loadOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	response := toReservationResponse(reservation)
	return &response, nil
}

// CancelReservation deletes a reservation and its tickets, freeing the
// seats for resale. Only the owner may cancel.
func (s *service) CancelReservation(ctx context.Context, userID, id string) error {
	reservation, err := s.loadOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, reservation.ID); err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}
	return nil
}

func (s *service) loadOwned(ctx context.Context, userID, id string) (*Reservation, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}
	reservationID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID: %w", err)
	}

	reservation, err := s.repo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.UserID != uid {
		return nil, ErrNotReservationOwner
	}
	return reservation, nil
}
