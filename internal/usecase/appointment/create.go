package appointment

import (
	"context"
	"strings"

	"github.com/crownbraids/salon-scheduler/internal/audit"
	"github.com/crownbraids/salon-scheduler/internal/cache"
	domain "github.com/crownbraids/salon-scheduler/internal/domain/appointment"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
	"github.com/crownbraids/salon-scheduler/internal/timeslot"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BraiderID   string
	BraiderName string

	Date     string
	TimeSlot string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ServiceName  string
	ServicePrice int
	Notes        string

	Actor Actor
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	avail *cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	avail *cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		avail: avail,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if strings.TrimSpace(in.BraiderID) == "" ||
		strings.TrimSpace(in.CustomerName) == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	if in.ServicePrice < 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	// Derived timestamp pins the slot label to a real instant; it is used
	// for ordering only.
	start, err := timeslot.Combine(in.Date, in.TimeSlot)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	// Advisory pre-check: gives the common case a clean slot_taken without
	// opening a transaction. The locked re-check inside CreateIfSlotFree is
	// what actually holds the guarantee.
	free, err := uc.repo.SlotIsFree(ctx, in.BraiderID, in.Date, in.TimeSlot)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	ap := &models.Appointment{
		BraiderID:   in.BraiderID,
		BraiderName: in.BraiderName,

		Date:      in.Date,
		TimeSlot:  in.TimeSlot,
		StartTime: start,

		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,

		ServiceName:  in.ServiceName,
		ServicePrice: in.ServicePrice,
		Notes:        in.Notes,

		Status: string(domain.InitialStatus()),
	}

	// Guest bookings carry no identity reference, only the snapshot.
	if in.Actor.IsClient() {
		clientID := in.Actor.ID
		ap.ClientID = &clientID
	}
	if in.Actor.IsEmployee() {
		employeeID := in.Actor.ID
		ap.EmployeeID = &employeeID
	}

	if err := uc.repo.CreateIfSlotFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.avail.Invalidate(ctx, ap.BraiderID, ap.Date)

	var actorID *uint
	if in.Actor.Authenticated {
		id := in.Actor.ID
		actorID = &id
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"braider_id": ap.BraiderID,
			"date":       ap.Date,
			"time_slot":  ap.TimeSlot,
		},
	})

	return ap, nil
}
