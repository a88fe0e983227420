package genres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"stagely/internal/shared/constants"
	"stagely/pkg/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	ErrGenreNotFound = errors.New("genre not found")
	ErrGenreExists   = errors.New("a genre with this name already exists")
)

type Service interface {
	CreateGenre(ctx context.Context, req CreateGenreRequest) (*GenreResponse, error)
	GetGenreByID(ctx context.Context, id string) (*GenreDetailResponse, error)
	GetGenres(ctx context.Context) ([]GenreResponse, error)
	UpdateGenre(ctx context.Context, id string, req UpdateGenreRequest) (*GenreResponse, error)
	DeleteGenre(ctx context.Context, id string) error
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

func (s *service) CreateGenre(ctx context.Context, req CreateGenreRequest) (*GenreResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("genre name cannot be empty")
	}

	existing, err := s.repo.GetByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing genre: %w", err)
	}
	if existing != nil {
		return nil, ErrGenreExists
	}

	genre := &Genre{
		ID:   uuid.New(),
		Name: name,
	}

	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	if err := cache.InvalidatePattern(ctx, s.redisClient, constants.PATTERN_INVALIDATE_GENRES_ALL); err != nil {
		log.Printf("Warning: failed to invalidate genre cache: %v", err)
	}

	response := genre.ToResponse()
	return &response, nil
}

func (s *service) GetGenreByID(ctx context.Context, id string) (*GenreDetailResponse, error) {
	genreID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid genre ID: %w", err)
	}

	genre, err := s.repo.GetByID(ctx, genreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}

	plays, err := s.repo.GetPlaysForGenre(ctx, genreID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plays for genre: %w", err)
	}
	if plays == nil {
		plays = []PlaySummary{}
	}

	return &GenreDetailResponse{
		ID:    genre.ID.String(),
		Name:  genre.Name,
		Plays: plays,
	}, nil
}

func (s *service) GetGenres(ctx context.Context) ([]GenreResponse, error) {
	var cached []GenreResponse
	if err := cache.Get(ctx, s.redisClient, constants.CACHE_KEY_GENRES, &cached); err == nil {
		return cached, nil
	}

	genres, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}

	responses := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		responses[i] = genre.ToResponse()
	}

	if err := cache.Set(ctx, s.redisClient, constants.CACHE_KEY_GENRES, responses, constants.TTL_GENRES); err != nil {
		log.Printf("Warning: failed to cache genres: %v", err)
	}

	return responses, nil
}

func (s *service) UpdateGenre(ctx context.Context, id string, req UpdateGenreRequest) (*GenreResponse, error) {
	genreID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid genre ID: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, genreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}

	updates := make(map[string]interface{})

	if req.Name != nil && *req.Name != existing.Name {
		nameExists, err := s.repo.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check genre name: %w", err)
		}
		if nameExists != nil {
			return nil, ErrGenreExists
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, genreID, updates); err != nil {
			return nil, fmt.Errorf("failed to update genre: %w", err)
		}

		if err := cache.InvalidatePattern(ctx, s.redisClient, constants.PATTERN_INVALIDATE_GENRES_ALL); err != nil {
			log.Printf("Warning: failed to invalidate genre cache: %v", err)
		}
	}

	updated, err := s.repo.GetByID(ctx, genreID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload genre: %w", err)
	}

	response := updated.ToResponse()
	return &response, nil
}

func (s *service) DeleteGenre(ctx context.Context, id string) error {
	genreID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid genre ID: %w", err)
	}

	_, err = s.repo.GetByID(ctx, genreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGenreNotFound
		}
		return fmt.Errorf("failed to get genre: %w", err)
	}

	if err := s.repo.Delete(ctx, genreID); err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}

	if err := cache.InvalidatePattern(ctx, s.redisClient, constants.PATTERN_INVALIDATE_GENRES_ALL); err != nil {
		log.Printf("Warning: failed to invalidate genre cache: %v", err)
	}

	return nil
}
