package appointment

import (
	"context"

	domain "github.com/crownbraids/salon-scheduler/internal/domain/appointment"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

type ListFilters struct {
	Status    string
	Date      string
	BraiderID string
}

// scoped applies the caller's visibility to a repository filter: clients
// see their own bookings, employees theirs (by assignment or braider
// profile), admins everything.
func scoped(actor Actor, f ListFilters) (domain.ListFilter, error) {
	out := domain.ListFilter{
		Status:    f.Status,
		Date:      f.Date,
		BraiderID: f.BraiderID,
	}

	switch {
	case actor.IsAdmin():
	case actor.IsClient():
		clientID := actor.ID
		out.ScopeClientID = &clientID
	case actor.IsEmployee():
		employeeID := actor.ID
		out.ScopeEmployeeID = &employeeID
		out.ScopeBraiderID = actor.BraiderID
	default:
		return domain.ListFilter{}, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	return out, nil
}

// ======================================================
// HISTORY (newest first)
// ======================================================

type ListHistory struct {
	repo domain.Repository
}

func NewListHistory(repo domain.Repository) *ListHistory {
	return &ListHistory{repo: repo}
}

func (uc *ListHistory) Execute(
	ctx context.Context,
	actor Actor,
	f ListFilters,
) ([]models.Appointment, error) {

	filter, err := scoped(actor, f)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListHistory(ctx, filter)
}

// ======================================================
// CALENDAR DAY (chronological)
// ======================================================

type ListDay struct {
	repo domain.Repository
}

func NewListDay(repo domain.Repository) *ListDay {
	return &ListDay{repo: repo}
}

func (uc *ListDay) Execute(
	ctx context.Context,
	actor Actor,
	f ListFilters,
) ([]models.Appointment, error) {

	if f.Date == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	filter, err := scoped(actor, f)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListForDay(ctx, filter)
}
