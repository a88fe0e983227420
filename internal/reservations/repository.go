package reservations

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// SeatKey identifies one seat of one performance.
type SeatKey struct {
	PerformanceID uuid.UUID
	Row           int
	Seat          int
}

type Repository interface {
	CreateWithTickets(ctx context.Context, reservation *Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error)
	GetByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]Reservation, int64, error)
	GetTakenSeats(ctx context.Context, performanceIDs []uuid.UUID) (map[SeatKey]bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithTickets persists a reservation and all its tickets in one
// transaction. Tickets are inserted one by one so a unique violation
// can be pinned to the exact seat; the database rolls the whole batch
// back, leaving nothing partially booked.
func (r *repository) CreateWithTickets(ctx context.Context, reservation *Reservation) error {
	tickets := reservation.Tickets
	reservation.Tickets = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reservation).Error; err != nil {
			return err
		}

		for i := range tickets {
			tickets[i].ReservationID = reservation.ID
			if err := tx.Omit("Performance").Create(&tickets[i]).Error; err != nil {
				return translateTicketInsertError(err, &tickets[i])
			}
		}
		return nil
	})

	reservation.Tickets = tickets
	return err
}

// translateTicketInsertError maps a violation of the composite seat
// index to a SeatTakenError carrying the losing ticket's coordinates.
// Any other insert error passes through unchanged.
func translateTicketInsertError(err error, ticket *Ticket) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &SeatTakenError{
			PerformanceID: ticket.PerformanceID,
			Row:           ticket.Row,
			Seat:          ticket.Seat,
		}
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Preload("Tickets.Performance.Play").
		Preload("Tickets.Performance.TheatreHall").
		Where("id = ?", id).
		First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]Reservation, int64, error) {
	query := r.db.WithContext(ctx).Model(&Reservation{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reservations []Reservation
	offset := (page - 1) * limit
	err := query.
		Preload("Tickets").
		Preload("Tickets.Performance.Play").
		Preload("Tickets.Performance.TheatreHall").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, 0, err
	}

	return reservations, total, nil
}

func (r *repository) GetTakenSeats(ctx context.Context, performanceIDs []uuid.UUID) (map[SeatKey]bool, error) {
	taken := make(map[SeatKey]bool)
	if len(performanceIDs) == 0 {
		return taken, nil
	}

	var tickets []Ticket
	err := r.db.WithContext(ctx).
		Where("performance_id IN ?", performanceIDs).
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}

	for _, t := range tickets {
		taken[SeatKey{PerformanceID: t.PerformanceID, Row: t.Row, Seat: t.Seat}] = true
	}
	return taken, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reservation_id = ?", id).Delete(&Ticket{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Reservation{}).Error
	})
}
