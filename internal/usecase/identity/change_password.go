package identity

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/crownbraids/salon-scheduler/internal/domain/identity"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/validators"
)

type ChangePassword struct {
	repo domain.Repository
}

func NewChangePassword(repo domain.Repository) *ChangePassword {
	return &ChangePassword{repo: repo}
}

// Execute swaps the stored hash. The current password is required unless
// the account is mid reset (force_password_change), which the change clears.
func (uc *ChangePassword) Execute(
	ctx context.Context,
	userID uint,
	currentPassword string,
	newPassword string,
) error {

	user, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.ForcePasswordChange {
		if currentPassword == "" || user.PasswordHash == "" {
			return httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
		if err := bcrypt.CompareHashAndPassword(
			[]byte(user.PasswordHash),
			[]byte(currentPassword),
		); err != nil {
			return httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
	}

	if !validators.PasswordIsStrong(newPassword) {
		return httperr.ErrBusiness(httperr.CodeWeakPassword)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashed)
	user.ForcePasswordChange = false

	return uc.repo.Update(ctx, user)
}
