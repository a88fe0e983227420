package plays

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"stagely/internal/actors"
	"stagely/internal/genres"
	"stagely/internal/shared/constants"
	"stagely/pkg/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	ErrPlayNotFound    = errors.New("play not found")
	ErrUnknownGenreID  = errors.New("one or more genre IDs do not exist")
	ErrUnknownActorID  = errors.New("one or more actor IDs do not exist")
	ErrInvalidIDFilter = errors.New("filter values must be valid UUIDs")
)

type Service interface {
	CreatePlay(ctx context.Context, req CreatePlayRequest) (*PlayResponse, error)
	GetPlayByID(ctx context.Context, id string) (*PlayResponse, error)
	GetPlays(ctx context.Context, query PlayListQuery) (*PaginatedPlays, error)
	UpdatePlay(ctx context.Context, id string, req UpdatePlayRequest) (*PlayResponse, error)
	SetPlayImage(ctx context.Context, id string, imageURL string) (*UploadImageResponse, error)
	DeletePlay(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	genreRepo   genres.Repository
	actorRepo   actors.Repository
	redisClient *redis.Client
}

func NewService(repo Repository, genreRepo genres.Repository, actorRepo actors.Repository) Service {
	return &service{
		repo:        repo,
		genreRepo:   genreRepo,
		actorRepo:   actorRepo,
		redisClient: cache.Client(),
	}
}

// parseIDList splits a comma-separated list of UUIDs, ignoring empty
// segments. "a,,b" parses the same as "a,b".
func parseIDList(raw string) ([]uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIDFilter, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *service) resolveGenres(ctx context.Context, rawIDs []string) ([]genres.Genre, error) {
	if len(rawIDs) == 0 {
		return []genres.Genre{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid genre ID %q: %w", raw, err)
		}
		ids = append(ids, id)
	}

	found, err := s.genreRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve genres: %w", err)
	}
	if len(found) != len(ids) {
		return nil, ErrUnknownGenreID
	}
	return found, nil
}

func (s *service) resolveActors(ctx context.Context, rawIDs []string) ([]actors.Actor, error) {
	if len(rawIDs) == 0 {
		return []actors.Actor{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid actor ID %q: %w", raw, err)
		}
		ids = append(ids, id)
	}

	found, err := s.actorRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve actors: %w", err)
	}
	if len(found) != len(ids) {
		return nil, ErrUnknownActorID
	}
	return found, nil
}

func (s *service) CreatePlay(ctx context.Context, req CreatePlayRequest) (*PlayResponse, error) {
	playGenres, err := s.resolveGenres(ctx, req.GenreIDs)
	if err != nil {
		return nil, err
	}

	playActors, err := s.resolveActors(ctx, req.ActorIDs)
	if err != nil {
		return nil, err
	}

	play := &Play{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Genres:      playGenres,
		Actors:      playActors,
	}

	if err := s.repo.Create(ctx, play); err != nil {
		return nil, fmt.Errorf("failed to create play: %w", err)
	}

	if err := cache.InvalidatePattern(ctx, s.redisClient, constants.PATTERN_INVALIDATE_PLAYS_ALL); err != nil {
		log.Printf("Warning: failed to invalidate play cache: %v", err)
	}

	response := play.ToResponse()
	return &response, nil
}

func (s *service) GetPlayByID(ctx context.Context, id string) (*PlayResponse, error) {
	playID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID: %w", err)
	}

	cacheKey := constants.CACHE_KEY_PLAY + id
	var cached PlayResponse
	if err := cache.Get(ctx, s.redisClient, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	play, err := s.repo.GetByID(ctx, playID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayNotFound
		}
		return nil, fmt.Errorf("failed to get play: %w", err)
	}

	response := play.ToResponse()

	if err := cache.Set(ctx, s.redisClient, cacheKey, response, constants.TTL_PLAY); err != nil {
		log.Printf("Warning: failed to cache play: %v", err)
	}

	return &response, nil
}

func (s *service) GetPlays(ctx context.Context, query PlayListQuery) (*PaginatedPlays, error) {
	genreIDs, err := parseIDList(query.Genres)
	if err != nil {
		return nil, err
	}
	actorIDs, err := parseIDList(query.Actors)
	if err != nil {
		return nil, err
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 10
	}

	filter := PlayFilter{
		Title:    strings.TrimSpace(query.Title),
		GenreIDs: genreIDs,
		ActorIDs: actorIDs,
		Page:     query.Page,
		Limit:    query.Limit,
	}

	unfiltered := filter.Title == "" && len(genreIDs) == 0 && len(actorIDs) == 0
	cacheKey := fmt.Sprintf("%s:%d:%d", constants.CACHE_KEY_PLAYS_LIST, filter.Page, filter.Limit)

	if unfiltered {
		var cached PaginatedPlays
		if err := cache.Get(ctx, s.redisClient, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	plays, total, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list plays: %w", err)
	}

	responses := make([]PlayResponse, len(plays))
	for i, play := range plays {
		responses[i] = play.ToResponse()
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	result := &PaginatedPlays{
		Plays:      responses,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}

	if unfiltered {
		if err := cache.Set(ctx, s.redisClient, cacheKey, result, constants.TTL_PLAYS_LIST); err != nil {
			log.Printf("Warning: failed to cache play list: %v", err)
		}
	}

	return result, nil
}

func (s *service) UpdatePlay(ctx context.Context, id string, req UpdatePlayRequest) (*PlayResponse, error) {
	playID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID: %w", err)
	}

	play, err := s.repo.GetByID(ctx, playID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayNotFound
		}
		return nil, fmt.Errorf("failed to get play: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, play, updates); err != nil {
			return nil, fmt.Errorf("failed to update play: %w", err)
		}
	}

	if req.GenreIDs != nil {
		newGenres, err := s.resolveGenres(ctx, *req.GenreIDs)
		if err != nil {
			return nil, err
		}
		genreIDs := make([]uuid.UUID, len(newGenres))
		for i, g := range newGenres {
			genreIDs[i] = g.ID
		}
		if err := s.repo.ReplaceGenres(ctx, play, genreIDs); err != nil {
			return nil, fmt.Errorf("failed to update play genres: %w", err)
		}
	}

	if req.ActorIDs != nil {
		newActors, err := s.resolveActors(ctx, *req.ActorIDs)
		if err != nil {
			return nil, err
		}
		actorIDs := make([]uuid.UUID, len(newActors))
		for i, a := range newActors {
			actorIDs[i] = a.ID
		}
		if err := s.repo.ReplaceActors(ctx, play, actorIDs); err != nil {
			return nil, fmt.Errorf("failed to update play actors: %w", err)
		}
	}

	if err := cache.InvalidatePattern(ctx, s.redisClient, constants.PATTERN_INVALIDATE_PLAYS_ALL); err != nil {
		log.Printf("Warning: failed to invalidate play cache: %v", err)
	}

	updated, err := s.repo.GetByID(ctx, playID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload play: %w", err)
	}

	response := updated.ToResponse()
	return &response, nil
}

func (s *service) SetPlayImage(ctx context.Context, id string, imageURL string) (*UploadImageResponse, error) {
	playID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid play ID: %w", err)
	}

	play, err := s.repo.GetByID(ctx, playID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayNotFound
		}
		return nil, fmt.Errorf("failed to get play: %w", err)
	}

	if err := s.repo.Update(ctx, play, map[string]interface{}{"image_url": imageURL}); err != nil {
		return nil, fmt.Errorf("failed to save play image: %w", err)
	}

	if err := cache.InvalidatePattern(ctx, s.redisClient, constants.PATTERN_INVALIDATE_PLAYS_ALL); err != nil {
		log.Printf("Warning: failed to invalidate play cache: %v", err)
	}

	return &UploadImageResponse{PlayID: id, ImageURL: imageURL}, nil
}

func (s *service) DeletePlay(ctx context.Context, id string) error {
	playID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid play ID: %w", err)
	}

	_, err = s.repo.GetByID(ctx, playID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlayNotFound
		}
		return fmt.Errorf("failed to get play: %w", err)
	}

	if err := s.repo.Delete(ctx, playID); err != nil {
		return fmt.Errorf("failed to delete play: %w", err)
	}

	if err := cache.InvalidatePattern(ctx, s.redisClient, constants.PATTERN_INVALIDATE_PLAYS_ALL); err != nil {
		log.Printf("Warning: failed to invalidate play cache: %v", err)
	}

	return nil
}
