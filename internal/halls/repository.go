package halls

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for theatre hall operations
type Repository interface {
	Create(ctx context.Context, hall *TheatreHall) error
	GetByID(ctx context.Context, id uuid.UUID) (*TheatreHall, error)
	GetAll(ctx context.Context, query HallListQuery) ([]TheatreHall, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountSoldTickets reports how many tickets exist across all performances
	// scheduled in the hall. A non-zero count freezes the seat grid.
	CountSoldTickets(ctx context.Context, hallID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new hall repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, hall *TheatreHall) error {
	return r.db.WithContext(ctx).Create(hall).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*TheatreHall, error) {
	var hall TheatreHall
	err := r.db.WithContext(ctx).First(&hall, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hall, nil
}

func (r *repository) GetAll(ctx context.Context, query HallListQuery) ([]TheatreHall, int64, error) {
	var halls []TheatreHall
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&TheatreHall{})

	if query.Search != "" {
		searchTerm := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(name) LIKE ?", searchTerm)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	// Set defaults for pagination
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	offset := (query.Page - 1) * query.Limit

	err := db.Order("name ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&halls).Error

	return halls, totalCount, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&TheatreHall{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&TheatreHall{}, "id = ?", id).Error
}

func (r *repository) CountSoldTickets(ctx context.Context, hallID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("tickets").
		Joins("JOIN performances ON performances.id = tickets.performance_id").
		Where("performances.theatre_hall_id = ?", hallID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count sold tickets: %w", err)
	}
	return count, nil
}
