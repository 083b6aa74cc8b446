package identity

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/crownbraids/salon-scheduler/internal/domain/identity"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
	"github.com/crownbraids/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Name     string
	Email    string
	Username string
	Phone    string
	Password string
	Role     string
	Location string

	ForcePasswordChange bool
	BraiderID           string
}

// InvalidInputError carries the field-level messages for a 400 response.
type InvalidInputError struct {
	Fields []validators.FieldError
}

func (e InvalidInputError) Error() string {
	return "invalid_input"
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo domain.Repository
}

func NewRegister(repo domain.Repository) *Register {
	return &Register{repo: repo}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	if in.Role == "" {
		in.Role = models.RoleClient
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, InvalidInputError{Fields: []validators.FieldError{
			{Field: "name", Message: "required"},
		}}
	}

	if errs := validators.ValidateIdentity(in.Role, in.Location, in.Password, in.Password != ""); len(errs) > 0 {
		return nil, InvalidInputError{Fields: errs}
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" {
		if !validators.EmailLooksValid(email) {
			return nil, InvalidInputError{Fields: []validators.FieldError{
				{Field: "email", Message: "not a valid address"},
			}}
		}
		exists, err := uc.repo.EmailExists(ctx, email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
		}
	}

	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username != "" {
		exists, err := uc.repo.UsernameExists(ctx, username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, httperr.ErrBusiness(httperr.CodeUsernameTaken)
		}
	}

	user := &models.User{
		Name:     name,
		Phone:    in.Phone,
		Role:     in.Role,
		Location: in.Location,

		ForcePasswordChange: in.ForcePasswordChange,
		IsActive:            true,
		BraiderID:           in.BraiderID,
	}
	if email != "" {
		user.Email = &email
	}
	if username != "" {
		user.Username = &username
	}

	// Plaintext never reaches storage; clients may have no credential at
	// all.
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}

	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
