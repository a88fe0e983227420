package actors

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

var ErrActorNotFound = errors.New("actor not found")

type Service interface {
	CreateActor(ctx context.Context, req CreateActorRequest) (*ActorResponse, error)
	GetActorByID(ctx context.Context, id string) (*ActorResponse, error)
	GetActors(ctx context.Context) ([]ActorResponse, error)
	UpdateActor(ctx context.Context, id string, req UpdateActorRequest) (*ActorResponse, error)
	DeleteActor(ctx context.Context, id string) error
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

func (s *service) CreateActor(ctx context.Context, req CreateActorRequest) (*ActorResponse, error) {
	actor := &Actor{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.repo.Create(ctx, actor); err != nil {
		return nil, fmt.Errorf("failed to create actor: %w", err)
	}

	if err := cache.InvalidatePattern(ctx, s.redisClient, constants.PATTERN_INVALIDATE_ACTORS_ALL); err != nil {
		log.Printf("Warning: failed to invalidate actor cache: %v", err)
	}

	response := actor.ToResponse()
	return &response, nil
}

func (s *service) GetActorByID(ctx context.Context, id string) (*ActorResponse, error) {
	actorID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid actor ID: %w", err)
	}

	actor, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	response := actor.ToResponse()
	return &response, nil
}

func (s *service) GetActors(ctx context.Context) ([]ActorResponse, error) {
	var cached []ActorResponse
	if err := cache.Get(ctx, s.redisClient, constants.CACHE_KEY_ACTORS, &cached); err == nil {
		return cached, nil
	}

	actors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}

	responses := make([]ActorResponse, len(actors))
	for i, actor := range actors {
		responses[i] = actor.ToResponse()
	}

	if err := cache.Set(ctx, s.redisClient, constants.CACHE_KEY_ACTORS, responses, constants.TTL_ACTORS); err != nil {
		log.Printf("Warning: failed to cache actors: %v", err)
	}

	return responses, nil
}

func (s *service) UpdateActor(ctx context.Context, id string, req UpdateActorRequest) (*ActorResponse, error) {
	actorID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid actor ID: %w", err)
	}

	_, err = s.repo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, actorID, updates); err != nil {
			return nil, fmt.Errorf("failed to update actor: %w", err)
		}

		if err := cache.InvalidatePattern(ctx, s.redisClient, constants.PATTERN_INVALIDATE_ACTORS_ALL); err != nil {
			log.Printf("Warning: failed to invalidate actor cache: %v", err)
		}
	}

	updated, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload actor: %w", err)
	}

	response := updated.ToResponse()
	return &response, nil
}

func (s *service) DeleteActor(ctx context.Context, id string) error {
	actorID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid actor ID: %w", err)
	}

	_, err = s.repo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActorNotFound
		}
		return fmt.Errorf("failed to get actor: %w", err)
	}

	if err := s.repo.Delete(ctx, actorID); err != nil {
		return fmt.Errorf("failed to delete actor: %w", err)
	}

	if err := cache.InvalidatePattern(ctx, s.redisClient, constants.PATTERN_INVALIDATE_ACTORS_ALL); err != nil {
		log.Printf("Warning: failed to invalidate actor cache: %v", err)
	}

	return nil
}
