package appointment

import (
	"context"

	"github.com/crownbraids/salon-scheduler/internal/cache"
	domain "github.com/crownbraids/salon-scheduler/internal/domain/appointment"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/timeslot"
)

type GetAvailability struct {
	repo  domain.Repository
	avail *cache.AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	avail *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{repo: repo, avail: avail}
}

// Execute returns the free slot labels for a braider on a day: the canonical
// grid minus slots held by pending/confirmed bookings.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	braiderID string,
	date string,
) ([]string, error) {

	if braiderID == "" || !timeslot.ValidDate(date) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	if slots, ok := uc.avail.Get(ctx, braiderID, date); ok {
		return slots, nil
	}

	booked, err := uc.repo.BookedSlots(ctx, braiderID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(booked))
	for _, s := range booked {
		taken[s] = true
	}

	free := make([]string, 0, len(timeslot.DaySlots()))
	for _, s := range timeslot.DaySlots() {
		if !taken[s] {
			free = append(free, s)
		}
	}

	uc.avail.Set(ctx, braiderID, date, free)
	return free, nil
}
