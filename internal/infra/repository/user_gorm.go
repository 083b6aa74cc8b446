package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/crownbraids/salon-scheduler/internal/domain/identity"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByIdentifier(
	ctx context.Context,
	identifier string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", identifier, identifier).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *UserGormRepository) UsernameExists(
	ctx context.Context,
	username string,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeEmailTaken)
	}
	return err
}

func (r *UserGormRepository) Update(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserGormRepository) UpsertByEmail(ctx context.Context, u *models.User) error {
	if u.Email == nil {
		return httperr.ErrBusiness("email_required")
	}

	var existing models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", *u.Email).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(u).Error
	}
	if err != nil {
		return err
	}

	existing.Name = u.Name
	existing.Phone = u.Phone
	existing.Role = u.Role
	existing.Location = u.Location
	existing.BraiderID = u.BraiderID
	existing.IsActive = u.IsActive
	if u.PasswordHash != "" {
		existing.PasswordHash = u.PasswordHash
		existing.ForcePasswordChange = u.ForcePasswordChange
	}

	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}

	u.ID = existing.ID
	return nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
