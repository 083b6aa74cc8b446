package appointment

import (
	"context"
	"log"
	"time"

	"github.com/crownbraids/salon-scheduler/internal/audit"
	"github.com/crownbraids/salon-scheduler/internal/cache"
	domain "github.com/crownbraids/salon-scheduler/internal/domain/appointment"
	rewardsdomain "github.com/crownbraids/salon-scheduler/internal/domain/rewards"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

type UpdateStatus struct {
	repo    domain.Repository
	rewards rewardsdomain.Repository
	avail   *cache.AvailabilityCache
	audit   *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	rewards rewardsdomain.Repository,
	avail *cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:    repo,
		rewards: rewards,
		avail:   avail,
		audit:   audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
	newStatus string,
) (*models.Appointment, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	// Employees may only move their own bookings; admins any.
	if actor.IsEmployee() && !actor.canAccess(ap) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	enteredCompleted, err := domain.Transition(
		ap,
		domain.Status(newStatus),
		actor.Role,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Award fires only on the transition into completed, never on a
	// re-assertion, and only for bookings tied to a client identity.
	if enteredCompleted {
		points := domain.PointsForCompletion(ap)
		if points > 0 && ap.ClientID != nil {
			if _, err := uc.rewards.Earn(
				ctx,
				*ap.ClientID,
				points,
				"appointment completed",
			); err != nil {
				// Status change already committed; losing the award is the
				// lesser failure, but it has to be visible in the log.
				log.Printf("rewards award failed: appointment=%d client=%d: %v", ap.ID, *ap.ClientID, err)
			}
		}
	}

	uc.avail.Invalidate(ctx, ap.BraiderID, ap.Date)

	actorID := actor.ID
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_status_" + ap.Status,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
