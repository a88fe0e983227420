package halls

import (
	"context"
	"errors"
	"fmt"
	"log"

	"stagely/internal/shared/constants"
	"stagely/pkg/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	ErrHallNotFound = errors.New("theatre hall not found")

	// ErrHallFrozen is returned when a layout change is attempted on a hall
	// that already sold tickets. Shrinking the grid under sold seats would
	// orphan tickets outside the hall bounds.
	ErrHallFrozen = errors.New("hall layout is frozen: performances in this hall have sold tickets")
)

type Service interface {
	CreateHall(ctx context.Context, req CreateHallRequest) (*HallResponse, error)
	GetHallByID(ctx context.Context, id string) (*HallResponse, error)
	GetHalls(ctx context.Context, query HallListQuery) (*PaginatedHalls, error)
	UpdateHall(ctx context.Context, id string, req UpdateHallRequest) (*HallResponse, error)
	DeleteHall(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	redisClient *redis.Client
}

func NewService(repo Repository) Service {
	return &service{
		repo:        repo,
		redisClient: cache.Client(),
	}
}

func (s *service) CreateHall(ctx context.Context, req CreateHallRequest) (*HallResponse, error) {
	hall := &TheatreHall{
		ID:         uuid.New(),
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	}

	if err := s.repo.Create(ctx, hall); err != nil {
		return nil, fmt.Errorf("failed to create hall: %w", err)
	}

	if err := cache.InvalidatePattern(ctx, s.redisClient, constants.PATTERN_INVALIDATE_HALLS_ALL); err != nil {
		log.Printf("Warning: failed to invalidate hall cache after creation: %v", err)
	}

	response := hall.ToResponse()
	return &response, nil
}

func (s *service) GetHallByID(ctx context.Context, id string) (*HallResponse, error) {
	hallID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid hall ID: %w", err)
	}

	cacheKey := constants.CACHE_KEY_HALL + id

	var cached HallResponse
	if err := cache.Get(ctx, s.redisClient, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	hall, err := s.repo.GetByID(ctx, hallID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, fmt.Errorf("failed to get hall: %w", err)
	}

	response := hall.ToResponse()
	if err := cache.Set(ctx, s.redisClient, cacheKey, response, constants.TTL_HALL); err != nil {
		log.Printf("Warning: failed to cache hall: %v", err)
	}

	return &response, nil
}

func (s *service) GetHalls(ctx context.Context, query HallListQuery) (*PaginatedHalls, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}

	halls, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list halls: %w", err)
	}

	responses := make([]HallResponse, len(halls))
	for i, hall := range halls {
		responses[i] = hall.ToResponse()
	}

	totalPages := int((totalCount + int64(query.Limit) - 1) / int64(query.Limit))

	return &PaginatedHalls{
		Halls:      responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *service) UpdateHall(ctx context.Context, id string, req UpdateHallRequest) (*HallResponse, error) {
	hallID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid hall ID: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, hallID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHallNotFound
		}
		return nil, fmt.Errorf("failed to get hall: %w", err)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	// The seat grid is frozen once any ticket has been sold in the hall.
	changesGrid := (req.Rows != nil && *req.Rows != existing.Rows) ||
		(req.SeatsInRow != nil && *req.SeatsInRow != existing.SeatsInRow)
	if changesGrid {
		sold, err := s.repo.CountSoldTickets(ctx, hallID)
		if err != nil {
			return nil, err
		}
		if sold > 0 {
			return nil, ErrHallFrozen
		}
		if req.Rows != nil {
			updates["rows"] = *req.Rows
		}
		if req.SeatsInRow != nil {
			updates["seats_in_row"] = *req.SeatsInRow
		}
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, hallID, updates); err != nil {
			return nil, fmt.Errorf("failed to update hall: %w", err)
		}

		if err := cache.InvalidatePattern(ctx, s.redisClient, constants.PATTERN_INVALIDATE_HALLS_ALL); err != nil {
			log.Printf("Warning: failed to invalidate hall cache after update: %v", err)
		}
	}

	updated, err := s.repo.GetByID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload hall: %w", err)
	}

	response := updated.ToResponse()
	return &response, nil
}

func (s *service) DeleteHall(ctx context.Context, id string) error {
	hallID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid hall ID: %w", err)
	}

	_, err = s.repo.GetByID(ctx, hallID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHallNotFound
		}
		return fmt.Errorf("failed to get hall: %w", err)
	}

	if err := s.repo.Delete(ctx, hallID); err != nil {
		return fmt.Errorf("failed to delete hall: %w", err)
	}

	if err := cache.InvalidatePattern(ctx, s.redisClient, constants.PATTERN_INVALIDATE_HALLS_ALL); err != nil {
		log.Printf("Warning: failed to invalidate hall cache after delete: %v", err)
	}

	return nil
}
