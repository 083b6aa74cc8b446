package identity

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/crownbraids/salon-scheduler/internal/domain/identity"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

type Authenticate struct {
	repo domain.Repository
}

func NewAuthenticate(repo domain.Repository) *Authenticate {
	return &Authenticate{repo: repo}
}

// Execute resolves an identity by email or username and verifies the
// credential. Every failure path reports the same invalid_credentials code
// so callers cannot probe which accounts exist.
//
// Clients may authenticate without a password. This mirrors the guest-first
// signup flow where accounts are created passwordless at the desk; see the
// rewrite notes before carrying it anywhere else.
func (uc *Authenticate) Execute(
	ctx context.Context,
	identifier string,
	password string,
) (*models.User, error) {

	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if identifier == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	user, err := uc.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	if !user.IsActive {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	if user.Role == models.RoleClient {
		// Passwordless path: no supplied password, or no stored hash to
		// check against.
		if password == "" || user.PasswordHash == "" {
			return user, nil
		}
	} else {
		if password == "" || user.PasswordHash == "" {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	return user, nil
}
