package appointment

import (
	"time"

	"github.com/crownbraids/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves the record to a new status, stamping the bookkeeping
// fields for the transitions that carry them. The caller decides side
// effects (points award) from the returned flag.
//
// enteredCompleted is true only when the record moved into completed from a
// different state; re-asserting completed never re-fires the award.
func Transition(ap *models.Appointment, to Status, actorRole string, now time.Time) (enteredCompleted bool, err error) {
	from := Status(ap.Status)

	if err := CanTransition(from, to); err != nil {
		return false, err
	}

	if from == to {
		return false, nil
	}

	ap.Status = string(to)

	switch to {
	case StatusCompleted:
		ap.CompletedAt = &now
		return true, nil
	case StatusCancelled:
		ap.CancelledAt = &now
		ap.CancelledBy = actorRole
	}

	return false, nil
}

// Cancel is the idempotent convenience form: an already-cancelled record is
// left untouched and reported as a no-op.
func Cancel(ap *models.Appointment, actorRole string, now time.Time) (changed bool, err error) {
	if Status(ap.Status) == StatusCancelled {
		return false, nil
	}

	if _, err := Transition(ap, StatusCancelled, actorRole, now); err != nil {
		return false, err
	}
	return true, nil
}

// PointsForCompletion is the award computed on a completed appointment:
// one point per currency unit of the service price.
func PointsForCompletion(ap *models.Appointment) int {
	if ap.ServicePrice <= 0 {
		return 0
	}
	return ap.ServicePrice
}
