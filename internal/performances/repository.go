package performances

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PerformanceFilter struct {
	PlayID *uuid.UUID
	Date   *time.Time
	Page   int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, performance *Performance) error
	GetByID(ctx context.Context, id uuid.UUID) (*Performance, error)
	GetAll(ctx context.Context, filter PerformanceFilter) ([]Performance, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountTickets(ctx context.Context, performanceID uuid.UUID) (int64, error)
	CountTicketsBatch(ctx context.Context, performanceIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	GetTakenPlaces(ctx context.Context, performanceID uuid.UUID) ([]TakenPlace, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, performance *Performance) error {
	return r.db.WithContext(ctx).Create(performance).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Performance, error) {
	var performance Performance
	err := r.db.WithContext(ctx).
		Preload("Play").
		Preload("TheatreHall").
		Where("id = ?", id).
		First(&performance).Error
	if err != nil {
		return nil, err
	}
	return &performance, nil
}

func (r *repository) GetAll(ctx context.Context, filter PerformanceFilter) ([]Performance, int64, error) {
	query := r.db.WithContext(ctx).Model(&Performance{})

	if filter.PlayID != nil {
		query = query.Where("play_id = ?", *filter.PlayID)
	}

	if filter.Date != nil {
		dayStart := time.Date(
			filter.Date.Year(), filter.Date.Month(), filter.Date.Day(),
			0, 0, 0, 0, time.UTC,
		)
		dayEnd := dayStart.Add(24 * time.Hour)
		query = query.Where("show_time >= ? AND show_time < ?", dayStart, dayEnd)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var performances []Performance
	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Preload("Play").
		Preload("TheatreHall").
		Order("show_time ASC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&performances).Error
	if err != nil {
		return nil, 0, err
	}

	return performances, total, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Performance{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Performance{}).Error
}

func (r *repository) CountTickets(ctx context.Context, performanceID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("tickets").
		Where("performance_id = ?", performanceID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountTicketsBatch(ctx context.Context, performanceIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(performanceIDs))
	if len(performanceIDs) == 0 {
		return counts, nil
	}

	type row struct {
		PerformanceID uuid.UUID
		Count         int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Table("tickets").
		Select("performance_id, COUNT(*) as count").
		Where("performance_id IN ?", performanceIDs).
		Group("performance_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rec := range rows {
		counts[rec.PerformanceID] = rec.Count
	}
	return counts, nil
}

func (r *repository) GetTakenPlaces(ctx context.Context, performanceID uuid.UUID) ([]TakenPlace, error) {
	var places []TakenPlace
	err := r.db.WithContext(ctx).
		Table("tickets").
		Select("row, seat").
		Where("performance_id = ?", performanceID).
		Order("row ASC, seat ASC").
		Scan(&places).Error
	return places, err
}
