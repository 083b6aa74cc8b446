package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/crownbraids/salon-scheduler/internal/config"
	dbpkg "github.com/crownbraids/salon-scheduler/internal/db"
	infraRepo "github.com/crownbraids/salon-scheduler/internal/infra/repository"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

type seedAccount struct {
	Name      string
	Email     string
	Phone     string
	Role      string
	Location  string
	BraiderID string
	Password  string
}

// Seed accounts are re-applied on every run; existing accounts are updated
// by email, so running the tool twice is safe.
func seedAccounts() []seedAccount {
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	staffPassword := os.Getenv("SEED_STAFF_PASSWORD")
	if adminPassword == "" {
		adminPassword = "change-me-now-1"
	}
	if staffPassword == "" {
		staffPassword = "change-me-now-1"
	}

	return []seedAccount{
		{Name: "Salon Admin", Email: "admin@crownbraids.com", Role: models.RoleAdmin, Location: "A", Password: adminPassword},
		{Name: "Amina Diallo", Email: "amina@crownbraids.com", Role: models.RoleEmployee, Location: "A", BraiderID: "1", Password: staffPassword},
		{Name: "Fatou Keita", Email: "fatou@crownbraids.com", Role: models.RoleEmployee, Location: "B", BraiderID: "2", Password: staffPassword},
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	users := infraRepo.NewUserGormRepository(db)

	ctx := context.Background()

	for _, acc := range seedAccounts() {
		hashed, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password for %s: %v", acc.Email, err)
		}

		email := acc.Email
		user := &models.User{
			Name:     acc.Name,
			Email:    &email,
			Phone:    acc.Phone,
			Role:     acc.Role,
			Location: acc.Location,

			PasswordHash:        string(hashed),
			ForcePasswordChange: true,
			IsActive:            true,
			BraiderID:           acc.BraiderID,
		}

		if err := users.UpsertByEmail(ctx, user); err != nil {
			log.Fatalf("seed %s: %v", acc.Email, err)
		}
		log.Printf("seeded %s (%s)", acc.Email, acc.Role)
	}
}
