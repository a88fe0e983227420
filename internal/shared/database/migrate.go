package database

import (
	"stagely/internal/actors"
	"stagely/internal/genres"
	"stagely/internal/halls"
	"stagely/internal/performances"
	"stagely/internal/plays"
	"stagely/internal/reservations"
	"stagely/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&halls.TheatreHall{},
		&genres.Genre{},
		&actors.Actor{},
		&plays.Play{},
		&performances.Performance{},
		&reservations.Reservation{},
		&reservations.Ticket{},
	)
}
