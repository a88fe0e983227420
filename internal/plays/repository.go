package plays

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayFilter holds the parsed list criteria. Zero values mean no
// filtering on that dimension.
type PlayFilter struct {
	Title    string
	GenreIDs []uuid.UUID
	ActorIDs []uuid.UUID
	Page     int
	Limit    int
}

type Repository interface {
	Create(ctx context.Context, play *Play) error
	GetByID(ctx context.Context, id uuid.UUID) (*Play, error)
	GetAll(ctx context.Context, filter PlayFilter) ([]Play, int64, error)
	Update(ctx context.Context, play *Play, updates map[string]interface{}) error
	ReplaceGenres(ctx context.Context, play *Play, genreIDs []uuid.UUID) error
	ReplaceActors(ctx context.Context, play *Play, actorIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, play *Play) error {
	return r.db.WithContext(ctx).Create(play).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Play, error) {
	var play Play
	err := r.db.WithContext(ctx).
		Preload("Genres").
		Preload("Actors").
		Where("id = ?", id).
		First(&play).Error
	if err != nil {
		return nil, err
	}
	return &play, nil
}

func (r *repository) GetAll(ctx context.Context, filter PlayFilter) ([]Play, int64, error) {
	query := r.db.WithContext(ctx).Model(&Play{})

	if filter.Title != "" {
		query = query.Where("plays.title ILIKE ?", "%"+filter.Title+"%")
	}

	if len(filter.GenreIDs) > 0 {
		query = query.Where(
			"plays.id IN (?)",
			r.db.Table("play_genres").Select("play_id").Where("genre_id IN ?", filter.GenreIDs),
		)
	}

	if len(filter.ActorIDs) > 0 {
		query = query.Where(
			"plays.id IN (?)",
			r.db.Table("play_actors").Select("play_id").Where("actor_id IN ?", filter.ActorIDs),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var plays []Play
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Preload("Genres").
		Preload("Actors").
		Order("plays.title ASC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&plays).Error
	if err != nil {
		return nil, 0, err
	}

	return plays, total, nil
}

func (r *repository) Update(ctx context.Context, play *Play, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(play).Updates(updates).Error
}

func (r *repository) ReplaceGenres(ctx context.Context, play *Play, genreIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM play_genres WHERE play_id = ?", play.ID).Error; err != nil {
			return err
		}
		for _, genreID := range genreIDs {
			if err := tx.Exec(
				"INSERT INTO play_genres (play_id, genre_id) VALUES (?, ?)",
				play.ID, genreID,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) ReplaceActors(ctx context.Context, play *Play, actorIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM play_actors WHERE play_id = ?", play.ID).Error; err != nil {
			return err
		}
		for _, actorID := range actorIDs {
			if err := tx.Exec(
				"INSERT INTO play_actors (play_id, actor_id) VALUES (?, ?)",
				play.ID, actorID,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM play_genres WHERE play_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM play_actors WHERE play_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Play{}).Error
	})
}
