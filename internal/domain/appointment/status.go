package appointment

import "github.com/crownbraids/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

func InitialStatus() Status {
	return StatusConfirmed
}

// ActiveStatuses are the states that hold a slot.
func ActiveStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

func IsTerminal(s Status) bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// CanTransition validates the one-directional lifecycle:
// pending -> confirmed -> completed, any active state -> cancelled,
// confirmed -> no-show. Re-asserting the current status is a no-op, never an
// error.
func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}

	if from == to {
		return nil
	}

	if IsTerminal(from) {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	switch to {
	case StatusConfirmed:
		if from == StatusPending {
			return nil
		}
	case StatusCompleted:
		if from == StatusPending || from == StatusConfirmed {
			return nil
		}
	case StatusCancelled:
		if from == StatusPending || from == StatusConfirmed {
			return nil
		}
	case StatusNoShow:
		if from == StatusConfirmed {
			return nil
		}
	}

	return httperr.ErrBusiness(httperr.CodeInvalidTransition)
}
