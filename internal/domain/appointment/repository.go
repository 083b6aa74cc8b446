package appointment

import (
	"context"

	"github.com/crownbraids/salon-scheduler/internal/models"
)

// ListFilter narrows List queries. Zero values mean "no filter"; Scope*
// fields apply the caller's visibility.
type ListFilter struct {
	Status    string
	Date      string
	BraiderID string

	// Visibility scoping, set by the usecase from the caller's role.
	ScopeClientID   *uint
	ScopeEmployeeID *uint
	ScopeBraiderID  string
}

type Repository interface {
	// -------- Appointment (create / conflict) --------

	// CreateIfSlotFree re-checks the (braider, date, slot) claim under a row
	// lock and inserts in the same transaction. Returns slot_taken when an
	// active booking already holds the slot.
	CreateIfSlotFree(ctx context.Context, ap *models.Appointment) error

	// SlotIsFree is the advisory pre-check outside the transaction.
	SlotIsFree(ctx context.Context, braiderID, date, slot string) (bool, error)

	// -------- Appointment (read) --------
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	// ListHistory orders by start_time descending.
	ListHistory(ctx context.Context, f ListFilter) ([]models.Appointment, error)

	// ListForDay orders by start_time ascending (calendar use).
	ListForDay(ctx context.Context, f ListFilter) ([]models.Appointment, error)

	// BookedSlots returns the slot labels held by active bookings for a
	// braider on a day.
	BookedSlots(ctx context.Context, braiderID, date string) ([]string, error)

	// -------- Appointment (state change) --------
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
}
