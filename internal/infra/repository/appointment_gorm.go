package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/crownbraids/salon-scheduler/internal/domain/appointment"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Create / slot conflict
// --------------------------------------------------

// activeSlotQuery narrows to the active holders of a slot claim.
func (r *AppointmentGormRepository) activeSlotQuery(
	tx *gorm.DB,
	braiderID string,
	date string,
	slot string,
) *gorm.DB {
	return tx.
		Model(&models.Appointment{}).
		Where(
			"braider_id = ? AND date = ? AND time_slot = ? AND status IN ?",
			braiderID, date, slot, domain.ActiveStatuses(),
		)
}

func (r *AppointmentGormRepository) SlotIsFree(
	ctx context.Context,
	braiderID string,
	date string,
	slot string,
) (bool, error) {

	var count int64
	if err := r.activeSlotQuery(r.db.WithContext(ctx), braiderID, date, slot).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count == 0, nil
}

func (r *AppointmentGormRepository) CreateIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Postgres rejects FOR UPDATE on an aggregate, so the re-check
		// locks the holding rows themselves and counts them here.
		var ids []uint
		if err := r.activeSlotQuery(tx, ap.BraiderID, ap.Date, ap.TimeSlot).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Pluck("id", &ids).Error; err != nil {
			return err
		}

		if len(ids) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		return tx.Create(ap).Error
	})

	// A racing insert that slipped past the lock hits the partial unique
	// index instead. Same caller-visible outcome.
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	return err
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &ap, nil
}

func applyFilter(q *gorm.DB, f domain.ListFilter) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}
	if f.BraiderID != "" {
		q = q.Where("braider_id = ?", f.BraiderID)
	}

	if f.ScopeClientID != nil {
		q = q.Where("client_id = ?", *f.ScopeClientID)
	}
	if f.ScopeEmployeeID != nil {
		if f.ScopeBraiderID != "" {
			q = q.Where("employee_id = ? OR braider_id = ?", *f.ScopeEmployeeID, f.ScopeBraiderID)
		} else {
			q = q.Where("employee_id = ?", *f.ScopeEmployeeID)
		}
	}

	return q
}

func (r *AppointmentGormRepository) ListHistory(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	q := applyFilter(r.db.WithContext(ctx).Model(&models.Appointment{}), f)

	if err := q.Order("start_time DESC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListForDay(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	q := applyFilter(r.db.WithContext(ctx).Model(&models.Appointment{}), f)

	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) BookedSlots(
	ctx context.Context,
	braiderID string,
	date string,
) ([]string, error) {

	var slots []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"braider_id = ? AND date = ? AND status IN ?",
			braiderID, date, domain.ActiveStatuses(),
		).
		Order("start_time ASC").
		Pluck("time_slot", &slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
