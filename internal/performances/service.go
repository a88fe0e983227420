package performances

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stagely/internal/halls"
	"stagely/internal/plays"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPerformanceNotFound = errors.New("performance not found")
	ErrPlayNotFound        = errors.New("play not found")
	ErrHallNotFound        = errors.New("theatre hall not found")
	ErrInvalidDateFilter   = errors.New("date filter must be in YYYY-MM-DD format")

	// ErrInconsistentAvailability reports more sold tickets than hall
	// capacity. The unique seat index makes this unreachable unless the
	// hall grid was shrunk underneath existing tickets.
	ErrInconsistentAvailability = errors.New("sold tickets exceed hall capacity")
)

type Service interface {
	CreatePerformance(ctx context.Context, req CreatePerformanceRequest) (*PerformanceResponse, error)
	GetPerformanceByID(ctx context.Context, id string) (*PerformanceDetailResponse, error)
	GetPerformances(ctx context.Context, query PerformanceListQuery) (*PaginatedPerformances, error)
	UpdatePerformance(ctx context.Context, id string, req UpdatePerformanceRequest) (*PerformanceResponse, error)
	DeletePerformance(ctx context.Context, id string) error
	AvailableSeats(ctx context.Context, performanceID uuid.UUID) (int, error)
}

type service struct {
	repo     Repository
	playRepo plays.Repository
	hallRepo halls.Repository
}

func NewService(repo Repository, playRepo plays.Repository, hallRepo halls.Repository) Service {
	return &service{
		repo:     repo,
		playRepo: playRepo,
		hallRepo: hallRepo,
	}
}

// AvailableSeats computes hall capacity minus sold tickets at read
// time. Availability is never cached so a sold seat is reflected on
// the very next read.
func (s *service) AvailableSeats(ctx context.Context, performanceID uuid.UUID) (int, error) {
	performance, err := s.repo.GetByID(ctx, performanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPerformanceNotFound
		}
		return 0, fmt.Errorf("failed to get performance: %w", err)
	}

	sold, err := s.repo.CountTickets(ctx, performanceID)
	if err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	available := performance.TheatreHall.Capacity() - int(sold)
	if available < 0 {
		return 0, fmt.Errorf("%w: performance %s has %d tickets for capacity %d",
			ErrInconsistentAvailability, performanceID, sold, performance.TheatreHall.Capacity())
	}
	return available, nil
}

func (s *service) toResponse(performance *Performance, sold int64) PerformanceResponse {
	capacity := performance.TheatreHall.Capacity()
	available := capacity - int(sold)

	return PerformanceResponse{
		ID:               performance.ID.String(),
		PlayID:           performance.PlayID.String(),
		PlayTitle:        performance.Play.Title,
		TheatreHallID:    performance.TheatreHallID.String(),
		TheatreHallName:  performance.TheatreHall.Name,
		ShowTime:         performance.ShowTime,
		Capacity:         capacity,
		TicketsAvailable: available,
		CreatedAt:        performance.CreatedAt,
		UpdatedAt:        performance.UpdatedAt,
	}
}

func (s *service) CreatePerformance(ctx context.Context, req CreatePerformanceRequest) (*PerformanceResponse, error) {
	playID, err := uuid.Parse(req.PlayID)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID: %w", err)
	}
	hallID, err := uuid.Parse(req.TheatreHallID)
	if err != nil {
		return nil, fmt.Errorf("invalid theatre hall ID: %w", err)
	}

	if _, err := s.playRepo.GetByID(ctx, playID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayNotFound
		}
		return nil, fmt.Errorf("failed to check play: %w", err)
	}

	if _, err := s.hallRepo.GetByID(ctx, hallID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, fmt.Errorf("failed to check theatre hall: %w", err)
	}

	performance := &Performance{
		ID:            uuid.New(),
		PlayID:        playID,
		TheatreHallID: hallID,
		ShowTime:      req.ShowTime.UTC(),
	}

	if err := s.repo.Create(ctx, performance); err != nil {
		return nil, fmt.Errorf("failed to create performance: %w", err)
	}

	created, err := s.repo.GetByID(ctx, performance.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload performance: %w", err)
	}

	response := s.toResponse(created, 0)
	return &response, nil
}

func (s *service) GetPerformanceByID(ctx context.Context, id string) (*PerformanceDetailResponse, error) {
	performanceID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid performance ID: %w", err)
	}

	performance, err := s.repo.GetByID(ctx, performanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	takenPlaces, err := s.repo.GetTakenPlaces(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get taken places: %w", err)
	}
	if takenPlaces == nil {
		takenPlaces = []TakenPlace{}
	}

	sold := int64(len(takenPlaces))
	if performance.TheatreHall.Capacity() < int(sold) {
		return nil, fmt.Errorf("%w: performance %s has %d tickets for capacity %d",
			ErrInconsistentAvailability, performanceID, sold, performance.TheatreHall.Capacity())
	}

	return &PerformanceDetailResponse{
		PerformanceResponse: s.toResponse(performance, sold),
		Rows:                performance.TheatreHall.Rows,
		SeatsInRow:          performance.TheatreHall.SeatsInRow,
		TakenPlaces:         takenPlaces,
	}, nil
}

func (s *service) GetPerformances(ctx context.Context, query PerformanceListQuery) (*PaginatedPerformances, error) {
	filter := PerformanceFilter{
		Page:  query.Page,
		Limit: query.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	if query.Play != "" {
		playID, err := uuid.Parse(query.Play)
		if err != nil {
			return nil, fmt.Errorf("invalid play filter: %w", err)
		}
		filter.PlayID = &playID
	}

	if query.Date != "" {
		date, err := time.Parse("2006-01-02", query.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDateFilter, query.Date)
		}
		filter.Date = &date
	}

	performances, total, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list performances: %w", err)
	}

	ids := make([]uuid.UUID, len(performances))
	for i, performance := range performances {
		ids[i] = performance.ID
	}

	soldCounts, err := s.repo.CountTicketsBatch(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	responses := make([]PerformanceResponse, len(performances))
	for i, performance := range performances {
		sold := soldCounts[performance.ID]
		if performance.TheatreHall.Capacity() < int(sold) {
			return nil, fmt.Errorf("%w: performance %s has %d tickets for capacity %d",
				ErrInconsistentAvailability, performance.ID, sold, performance.TheatreHall.Capacity())
		}
		responses[i] = s.toResponse(&performance, sold)
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	return &PaginatedPerformances{
		Performances: responses,
		Total:        total,
		Page:         filter.Page,
		Limit:        filter.Limit,
		TotalPages:   totalPages,
	}, nil
}

func (s *service) UpdatePerformance(ctx context.Context, id string, req UpdatePerformanceRequest) (*PerformanceResponse, error) {
	performanceID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid performance ID: %w", err)
	}

	if _, err := s.repo.GetByID(ctx, performanceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	updates := make(map[string]interface{})

	if req.PlayID != nil {
		playID, err := uuid.Parse(*req.PlayID)
		if err != nil {
			return nil, fmt.Errorf("invalid play ID: %w", err)
		}
		if _, err := s.playRepo.GetByID(ctx, playID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPlayNotFound
			}
			return nil, fmt.Errorf("failed to check play: %w", err)
		}
		updates["play_id"] = playID
	}

	if req.TheatreHallID != nil {
		hallID, err := uuid.Parse(*req.TheatreHallID)
		if err != nil {
			return nil, fmt.Errorf("invalid theatre hall ID: %w", err)
		}
		if _, err := s.hallRepo.GetByID(ctx, hallID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrHallNotFound
			}
			return nil, fmt.Errorf("failed to check theatre hall: %w", err)
		}
		updates["theatre_hall_id"] = hallID
	}

	if req.ShowTime != nil {
		updates["show_time"] = req.ShowTime.UTC()
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, performanceID, updates); err != nil {
			return nil, fmt.Errorf("failed to update performance: %w", err)
		}
	}

	updated, err := s.repo.GetByID(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload performance: %w", err)
	}

	sold, err := s.repo.CountTickets(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}
	if updated.TheatreHall.Capacity() < int(sold) {
		return nil, fmt.Errorf("%w: performance %s has %d tickets for capacity %d",
			ErrInconsistentAvailability, performanceID, sold, updated.TheatreHall.Capacity())
	}

	response := s.toResponse(updated, sold)
	return &response, nil
}

func (s *service) DeletePerformance(ctx context.Context, id string) error {
	performanceID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid performance ID: %w", err)
	}

	if _, err := s.repo.GetByID(ctx, performanceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPerformanceNotFound
		}
		return fmt.Errorf("failed to get performance: %w", err)
	}

	if err := s.repo.Delete(ctx, performanceID); err != nil {
		return fmt.Errorf("failed to delete performance: %w", err)
	}

	return nil
}
