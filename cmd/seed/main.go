package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"stagely/internal/actors"
	"stagely/internal/genres"
	"stagely/internal/halls"
	"stagely/internal/performances"
	"stagely/internal/plays"
	"stagely/internal/shared/config"
	"stagely/internal/shared/database"
	"stagely/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Stagely Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"tickets",
		"reservations",
		"performances",
		"play_genres",
		"play_actors",
		"plays",
		"genres",
		"actors",
		"theatre_halls",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data in dependency order.
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	hallIDs, err := s.SeedHalls()
	if err != nil {
		return fmt.Errorf("failed to seed halls: %w", err)
	}

	genreIDs, err := s.SeedGenres()
	if err != nil {
		return fmt.Errorf("failed to seed genres: %w", err)
	}

	actorIDs, err := s.SeedActors()
	if err != nil {
		return fmt.Errorf("failed to seed actors: %w", err)
	}

	playIDs, err := s.SeedPlays(genreIDs, actorIDs)
	if err != nil {
		return fmt.Errorf("failed to seed plays: %w", err)
	}

	if err := s.SeedPerformances(playIDs, hallIDs); err != nil {
		return fmt.Errorf("failed to seed performances: %w", err)
	}

	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates one admin and two regular users.
func (s *Seeder) SeedUsers() error {
	fmt.Println("  👤 Seeding users...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"Admin", "User", "admin@stagely.local", users.RoleAdmin},
		{"Olivia", "Bennett", "olivia@stagely.local", users.RoleUser},
		{"Marcus", "Reed", "marcus@stagely.local", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return nil
}

// SeedHalls creates theatre halls of varying sizes.
func (s *Seeder) SeedHalls() ([]uuid.UUID, error) {
	fmt.Println("  🏛️ Seeding theatre halls...")

	var hallIDs []uuid.UUID

	hallsData := []struct {
		name       string
		rows       int
		seatsInRow int
	}{
		{"Main Stage", 20, 30},
		{"Studio Hall", 8, 12},
		{"Chamber Stage", 5, 10},
	}

	for _, hallData := range hallsData {
		hall := halls.TheatreHall{
			ID:         uuid.New(),
			Name:       hallData.name,
			Rows:       hallData.rows,
			SeatsInRow: hallData.seatsInRow,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&hall).Error; err != nil {
			return nil, fmt.Errorf("failed to create hall %s: %w", hall.Name, err)
		}

		hallIDs = append(hallIDs, hall.ID)
		fmt.Printf("    ✅ Created hall: %s (%d seats)\n", hall.Name, hall.Capacity())
	}

	return hallIDs, nil
}

// SeedGenres creates the base genre catalog.
func (s *Seeder) SeedGenres() ([]uuid.UUID, error) {
	fmt.Println("  🎭 Seeding genres...")

	var genreIDs []uuid.UUID

	for _, name := range []string{"Drama", "Comedy", "Tragedy", "Musical", "Opera"} {
		genre := genres.Genre{
			ID:        uuid.New(),
			Name:      name,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&genre).Error; err != nil {
			return nil, fmt.Errorf("failed to create genre %s: %w", genre.Name, err)
		}

		genreIDs = append(genreIDs, genre.ID)
		fmt.Printf("    ✅ Created genre: %s\n", genre.Name)
	}

	return genreIDs, nil
}

// SeedActors creates the troupe.
func (s *Seeder) SeedActors() ([]uuid.UUID, error) {
	fmt.Println("  🎬 Seeding actors...")

	var actorIDs []uuid.UUID

	actorsData := []struct {
		firstName string
		lastName  string
	}{
		{"Helen", "Armitage"},
		{"James", "Calloway"},
		{"Sofia", "Moretti"},
		{"Daniel", "Okafor"},
		{"Clara", "Lindqvist"},
		{"Victor", "Duval"},
	}

	for _, actorData := range actorsData {
		actor := actors.Actor{
			ID:        uuid.New(),
			FirstName: actorData.firstName,
			LastName:  actorData.lastName,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&actor).Error; err != nil {
			return nil, fmt.Errorf("failed to create actor %s: %w", actor.FullName(), err)
		}

		actorIDs = append(actorIDs, actor.ID)
		fmt.Printf("    ✅ Created actor: %s\n", actor.FullName())
	}

	return actorIDs, nil
}

// SeedPlays creates the repertoire, linking genres and actors.
func (s *Seeder) SeedPlays(genreIDs, actorIDs []uuid.UUID) ([]uuid.UUID, error) {
	fmt.Println("  📜 Seeding plays...")

	var playIDs []uuid.UUID

	playsData := []struct {
		title       string
		description string
		genreIdx    []int
		actorIdx    []int
	}{
		{
			"Hamlet",
			"The Prince of Denmark confronts betrayal, madness and revenge.",
			[]int{0, 2}, []int{0, 1, 3},
		},
		{
			"The Importance of Being Earnest",
			"A trivial comedy for serious people.",
			[]int{1}, []int{2, 4},
		},
		{
			"The Phantom of the Opera",
			"A disfigured musical genius haunts the Paris Opera House.",
			[]int{3, 4}, []int{1, 2, 5},
		},
		{
			"Uncle Vanya",
			"Scenes from country life in four acts.",
			[]int{0}, []int{0, 4, 5},
		},
	}

	for _, playData := range playsData {
		play := plays.Play{
			ID:          uuid.New(),
			Title:       playData.title,
			Description: playData.description,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		for _, idx := range playData.genreIdx {
			play.Genres = append(play.Genres, genres.Genre{ID: genreIDs[idx]})
		}
		for _, idx := range playData.actorIdx {
			play.Actors = append(play.Actors, actors.Actor{ID: actorIDs[idx]})
		}

		if err := s.db.PostgreSQL.Create(&play).Error; err != nil {
			return nil, fmt.Errorf("failed to create play %s: %w", play.Title, err)
		}

		playIDs = append(playIDs, play.ID)
		fmt.Printf("    ✅ Created play: %s\n", play.Title)
	}

	return playIDs, nil
}

// SeedPerformances schedules each play across the halls over the next
// two weeks.
func (s *Seeder) SeedPerformances(playIDs, hallIDs []uuid.UUID) error {
	fmt.Println("  🗓️ Seeding performances...")

	base := time.Now().UTC().Truncate(24 * time.Hour).Add(19 * time.Hour)

	for i, playID := range playIDs {
		for week := 0; week < 2; week++ {
			performance := performances.Performance{
				ID:            uuid.New(),
				PlayID:        playID,
				TheatreHallID: hallIDs[i%len(hallIDs)],
				ShowTime:      base.AddDate(0, 0, i+week*7),
				CreatedAt:     time.Now(),
				UpdatedAt:     time.Now(),
			}

			if err := s.db.PostgreSQL.Create(&performance).Error; err != nil {
				return fmt.Errorf("failed to create performance: %w", err)
			}
		}
		fmt.Printf("    ✅ Scheduled performances for play %s\n", playID)
	}

	return nil
}
