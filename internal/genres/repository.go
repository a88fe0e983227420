package genres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, genre *Genre) error
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)
	GetByName(ctx context.Context, name string) (*Genre, error)
	GetAll(ctx context.Context) ([]Genre, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Genre, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	// GetPlaysForGenre returns the plays carrying the genre, for the detail view.
	GetPlaysForGenre(ctx context.Context, genreID uuid.UUID) ([]PlaySummary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, genre *Genre) error {
	return r.db.WithContext(ctx).Create(genre).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Genre, error) {
	var genre Genre
	err := r.db.WithContext(ctx).First(&genre, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Genre, error) {
	var genre Genre
	err := r.db.WithContext(ctx).First(&genre, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Genre, error) {
	var genres []Genre
	err := r.db.WithContext(ctx).Order("name ASC").Find(&genres).Error
	return genres, err
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Genre, error) {
	var genres []Genre
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&genres).Error
	return genres, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Genre{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Remove play associations first, then the genre itself
		if err := tx.Exec("DELETE FROM play_genres WHERE genre_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Genre{}).Error
	})
}

func (r *repository) GetPlaysForGenre(ctx context.Context, genreID uuid.UUID) ([]PlaySummary, error) {
	var plays []PlaySummary
	err := r.db.WithContext(ctx).
		Table("play_genres").
		Joins("JOIN plays ON plays.id = play_genres.play_id").
		Where("play_genres.genre_id = ?", genreID).
		Order("plays.title ASC").
		Select("plays.id, plays.title").
		Find(&plays).Error
	return plays, err
}
