package actors

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, actor *Actor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Actor, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Actor, error)
	GetAll(ctx context.Context) ([]Actor, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, actor *Actor) error {
	return r.db.WithContext(ctx).Create(actor).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Actor, error) {
	var actor Actor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&actor).Error
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Actor, error) {
	var actors []Actor
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&actors).Error
	return actors, err
}

func (r *repository) GetAll(ctx context.Context) ([]Actor, error) {
	var actors []Actor
	err := r.db.WithContext(ctx).Order("last_name ASC, first_name ASC").Find(&actors).Error
	return actors, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Actor{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM play_actors WHERE actor_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Actor{}).Error
	})
}
