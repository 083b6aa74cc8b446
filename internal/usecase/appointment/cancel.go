package appointment

import (
	"context"
	"time"

	"github.com/crownbraids/salon-scheduler/internal/audit"
	"github.com/crownbraids/salon-scheduler/internal/cache"
	domain "github.com/crownbraids/salon-scheduler/internal/domain/appointment"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	avail *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	avail *cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		avail: avail,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !actor.canAccess(ap) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	changed, err := domain.Cancel(ap, actor.Role, time.Now())
	if err != nil {
		return nil, err
	}

	// Cancelling an already-cancelled booking is a success with no further
	// side effect: no update, no cache drop, no audit event.
	if !changed {
		return ap, nil
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.avail.Invalidate(ctx, ap.BraiderID, ap.Date)

	actorID := actor.ID
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"cancelled_by": actor.Role},
	})

	return ap, nil
}
