package identity

import (
	"context"

	"github.com/crownbraids/salon-scheduler/internal/models"
)

type Repository interface {
	// FindByIdentifier resolves a user by email or username.
	FindByIdentifier(ctx context.Context, identifier string) (*models.User, error)

	FindByID(ctx context.Context, id uint) (*models.User, error)

	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error

	// UpsertByEmail creates the user or refreshes the mutable fields of an
	// existing one, keyed by email. Seeding relies on this being idempotent.
	UpsertByEmail(ctx context.Context, u *models.User) error
}
