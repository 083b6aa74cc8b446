package appointment

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/crownbraids/salon-scheduler/internal/domain/appointment"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

// ======================================================
// FAKES
// ======================================================

// fakeRepo keeps appointments in memory with the same slot-conflict and
// scoping behavior as the database repository.
type fakeRepo struct {
	nextID uint
	items  map[uint]*models.Appointment
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[uint]*models.Appointment)}
}

func isActive(status string) bool {
	for _, s := range domain.ActiveStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

func (r *fakeRepo) SlotIsFree(_ context.Context, braiderID, date, slot string) (bool, error) {
	for _, ap := range r.items {
		if ap.BraiderID == braiderID && ap.Date == date && ap.TimeSlot == slot && isActive(ap.Status) {
			return false, nil
		}
	}
	return true, nil
}

func (r *fakeRepo) CreateIfSlotFree(ctx context.Context, ap *models.Appointment) error {
	free, _ := r.SlotIsFree(ctx, ap.BraiderID, ap.Date, ap.TimeSlot)
	if !free {
		return httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	r.nextID++
	ap.ID = r.nextID
	stored := *ap
	r.items[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.items[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	out := *ap
	return &out, nil
}

func (r *fakeRepo) matches(ap *models.Appointment, f domain.ListFilter) bool {
	if f.Status != "" && ap.Status != f.Status {
		return false
	}
	if f.Date != "" && ap.Date != f.Date {
		return false
	}
	if f.BraiderID != "" && ap.BraiderID != f.BraiderID {
		return false
	}
	if f.ScopeClientID != nil {
		if ap.ClientID == nil || *ap.ClientID != *f.ScopeClientID {
			return false
		}
	}
	if f.ScopeEmployeeID != nil {
		assigned := ap.EmployeeID != nil && *ap.EmployeeID == *f.ScopeEmployeeID
		ownProfile := f.ScopeBraiderID != "" && ap.BraiderID == f.ScopeBraiderID
		if !assigned && !ownProfile {
			return false
		}
	}
	return true
}

func (r *fakeRepo) list(f domain.ListFilter, desc bool) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.items {
		if r.matches(ap, f) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return out[i].StartTime.After(out[j].StartTime)
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *fakeRepo) ListHistory(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	return r.list(f, true)
}

func (r *fakeRepo) ListForDay(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	return r.list(f, false)
}

func (r *fakeRepo) BookedSlots(_ context.Context, braiderID, date string) ([]string, error) {
	var out []string
	for _, ap := range r.items {
		if ap.BraiderID == braiderID && ap.Date == date && isActive(ap.Status) {
			out = append(out, ap.TimeSlot)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.items[ap.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	stored := *ap
	r.items[ap.ID] = &stored
	return nil
}

// fakeRewards records awards so tests can assert the completion side effect.
type fakeRewards struct {
	earned map[uint]int
	calls  int
}

func newFakeRewards() *fakeRewards {
	return &fakeRewards{earned: make(map[uint]int)}
}

func (r *fakeRewards) GetOrCreate(_ context.Context, clientID uint) (*models.RewardLedgerEntry, error) {
	return &models.RewardLedgerEntry{ClientID: clientID, TotalPoints: r.earned[clientID]}, nil
}

func (r *fakeRewards) Earn(_ context.Context, clientID uint, points int, _ string) (*models.RewardLedgerEntry, error) {
	r.calls++
	r.earned[clientID] += points
	return &models.RewardLedgerEntry{ClientID: clientID, TotalPoints: r.earned[clientID]}, nil
}

func (r *fakeRewards) Redeem(_ context.Context, clientID uint, points int, _ string) (*models.RewardLedgerEntry, error) {
	if points > r.earned[clientID] {
		return nil, httperr.ErrBusiness(httperr.CodeInsufficientPoints)
	}
	r.earned[clientID] -= points
	return &models.RewardLedgerEntry{ClientID: clientID, TotalPoints: r.earned[clientID]}, nil
}

func (r *fakeRewards) Adjust(_ context.Context, clientID uint, delta int, _ string) (*models.RewardLedgerEntry, error) {
	if delta < 0 && -delta > r.earned[clientID] {
		return nil, httperr.ErrBusiness(httperr.CodeInsufficientPoints)
	}
	r.earned[clientID] += delta
	return &models.RewardLedgerEntry{ClientID: clientID, TotalPoints: r.earned[clientID]}, nil
}

func (r *fakeRewards) ListTransactions(_ context.Context, _ uint) ([]models.RewardTransaction, error) {
	return nil, nil
}

// ======================================================
// HELPERS
// ======================================================

var (
	guest    = Actor{}
	client7  = Actor{ID: 7, Role: models.RoleClient, Authenticated: true}
	client8  = Actor{ID: 8, Role: models.RoleClient, Authenticated: true}
	braider3 = Actor{ID: 3, Role: models.RoleEmployee, BraiderID: "b-3", Authenticated: true}
	admin    = Actor{ID: 1, Role: models.RoleAdmin, Authenticated: true}
)

func validInput(actor Actor) CreateAppointmentInput {
	return CreateAppointmentInput{
		BraiderID:    "b-3",
		BraiderName:  "Amina",
		Date:         "2026-06-01",
		TimeSlot:     "2:00 PM",
		CustomerName: "Joy Okafor",
		ServiceName:  "Box braids",
		ServicePrice: 150,
		Actor:        actor,
	}
}

func book(t *testing.T, repo *fakeRepo, actor Actor, in CreateAppointmentInput) *models.Appointment {
	t.Helper()
	in.Actor = actor
	ap, err := NewCreateAppointment(repo, nil, nil).Execute(context.Background(), in)
	require.NoError(t, err)
	return ap
}

// ======================================================
// CREATE
// ======================================================

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("guest booking carries the snapshot only", func(t *testing.T) {
		repo := newFakeRepo()

		ap, err := NewCreateAppointment(repo, nil, nil).Execute(ctx, validInput(guest))
		require.NoError(t, err)

		assert.Equal(t, string(domain.InitialStatus()), ap.Status)
		assert.Nil(t, ap.ClientID)
		assert.Nil(t, ap.EmployeeID)
		assert.Equal(t, "Joy Okafor", ap.CustomerName)
		assert.NotZero(t, ap.ID)
		assert.False(t, ap.StartTime.IsZero())
	})

	t.Run("client booking links the identity", func(t *testing.T) {
		repo := newFakeRepo()

		ap, err := NewCreateAppointment(repo, nil, nil).Execute(ctx, validInput(client7))
		require.NoError(t, err)

		require.NotNil(t, ap.ClientID)
		assert.Equal(t, uint(7), *ap.ClientID)
	})

	t.Run("second booking for the same slot is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewCreateAppointment(repo, nil, nil)

		_, err := uc.Execute(ctx, validInput(client7))
		require.NoError(t, err)

		in := validInput(client8)
		in.CustomerName = "Second Caller"
		_, err = uc.Execute(ctx, in)
		assert.Equal(t, httperr.CodeSlotTaken, httperr.BusinessCode(err))
	})

	t.Run("cancelled slot can be rebooked", func(t *testing.T) {
		repo := newFakeRepo()

		ap := book(t, repo, client7, validInput(client7))
		_, err := NewCancelAppointment(repo, nil, nil).Execute(ctx, client7, ap.ID)
		require.NoError(t, err)

		_, err = NewCreateAppointment(repo, nil, nil).Execute(ctx, validInput(client8))
		assert.NoError(t, err)
	})

	t.Run("other slots and braiders do not conflict", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewCreateAppointment(repo, nil, nil)

		_, err := uc.Execute(ctx, validInput(guest))
		require.NoError(t, err)

		in := validInput(guest)
		in.TimeSlot = "3:00 PM"
		_, err = uc.Execute(ctx, in)
		assert.NoError(t, err)

		in = validInput(guest)
		in.BraiderID = "b-9"
		_, err = uc.Execute(ctx, in)
		assert.NoError(t, err)
	})

	t.Run("input validation", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewCreateAppointment(repo, nil, nil)

		in := validInput(guest)
		in.CustomerName = " "
		_, err := uc.Execute(ctx, in)
		assert.Equal(t, "missing_required_fields", httperr.BusinessCode(err))

		in = validInput(guest)
		in.ServicePrice = -5
		_, err = uc.Execute(ctx, in)
		assert.Equal(t, "invalid_price", httperr.BusinessCode(err))

		in = validInput(guest)
		in.TimeSlot = "14:00"
		_, err = uc.Execute(ctx, in)
		assert.Equal(t, httperr.CodeInvalidDateOrTime, httperr.BusinessCode(err))
	})
}

// ======================================================
// STATUS CHANGES
// ======================================================

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("clients may not change status", func(t *testing.T) {
		repo := newFakeRepo()
		ap := book(t, repo, client7, validInput(client7))

		_, err := NewUpdateStatus(repo, newFakeRewards(), nil, nil).
			Execute(ctx, client7, ap.ID, string(domain.StatusCompleted))
		assert.Equal(t, httperr.CodeForbidden, httperr.BusinessCode(err))
	})

	t.Run("employees may only touch their own bookings", func(t *testing.T) {
		repo := newFakeRepo()
		in := validInput(guest)
		in.BraiderID = "b-9"
		ap := book(t, repo, guest, in)

		_, err := NewUpdateStatus(repo, newFakeRewards(), nil, nil).
			Execute(ctx, braider3, ap.ID, string(domain.StatusCompleted))
		assert.Equal(t, httperr.CodeForbidden, httperr.BusinessCode(err))
	})

	t.Run("completing a client booking awards points once", func(t *testing.T) {
		repo := newFakeRepo()
		rewards := newFakeRewards()
		ap := book(t, repo, client7, validInput(client7))

		uc := NewUpdateStatus(repo, rewards, nil, nil)

		got, err := uc.Execute(ctx, braider3, ap.ID, string(domain.StatusCompleted))
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), got.Status)
		assert.NotNil(t, got.CompletedAt)
		assert.Equal(t, 150, rewards.earned[7])
		assert.Equal(t, 1, rewards.calls)

		// Re-asserting completed is a no-op and never double-awards.
		_, err = uc.Execute(ctx, braider3, ap.ID, string(domain.StatusCompleted))
		require.NoError(t, err)
		assert.Equal(t, 150, rewards.earned[7])
		assert.Equal(t, 1, rewards.calls)
	})

	t.Run("completing a guest booking awards nothing", func(t *testing.T) {
		repo := newFakeRepo()
		rewards := newFakeRewards()
		ap := book(t, repo, guest, validInput(guest))

		_, err := NewUpdateStatus(repo, rewards, nil, nil).
			Execute(ctx, admin, ap.ID, string(domain.StatusCompleted))
		require.NoError(t, err)
		assert.Zero(t, rewards.calls)
	})

	t.Run("confirmed bookings can be marked no-show", func(t *testing.T) {
		repo := newFakeRepo()
		rewards := newFakeRewards()
		ap := book(t, repo, client7, validInput(client7))

		got, err := NewUpdateStatus(repo, rewards, nil, nil).
			Execute(ctx, braider3, ap.ID, string(domain.StatusNoShow))
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusNoShow), got.Status)
		assert.Zero(t, rewards.calls)
	})

	t.Run("terminal states reject moves", func(t *testing.T) {
		repo := newFakeRepo()
		ap := book(t, repo, client7, validInput(client7))
		uc := NewUpdateStatus(repo, newFakeRewards(), nil, nil)

		_, err := uc.Execute(ctx, admin, ap.ID, string(domain.StatusCancelled))
		require.NoError(t, err)

		_, err = uc.Execute(ctx, admin, ap.ID, string(domain.StatusConfirmed))
		assert.Equal(t, httperr.CodeInvalidTransition, httperr.BusinessCode(err))
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo := newFakeRepo()

		_, err := NewUpdateStatus(repo, newFakeRewards(), nil, nil).
			Execute(ctx, admin, 404, string(domain.StatusCompleted))
		assert.Equal(t, httperr.CodeNotFound, httperr.BusinessCode(err))
	})
}

// ======================================================
// CANCEL
// ======================================================

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("client cancels their own booking", func(t *testing.T) {
		repo := newFakeRepo()
		ap := book(t, repo, client7, validInput(client7))

		got, err := NewCancelAppointment(repo, nil, nil).Execute(ctx, client7, ap.ID)
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCancelled), got.Status)
		assert.Equal(t, models.RoleClient, got.CancelledBy)
		require.NotNil(t, got.CancelledAt)
	})

	t.Run("cancelling twice keeps the original stamp", func(t *testing.T) {
		repo := newFakeRepo()
		ap := book(t, repo, client7, validInput(client7))
		uc := NewCancelAppointment(repo, nil, nil)

		first, err := uc.Execute(ctx, client7, ap.ID)
		require.NoError(t, err)

		second, err := uc.Execute(ctx, client7, ap.ID)
		require.NoError(t, err)

		assert.Equal(t, *first.CancelledAt, *second.CancelledAt)
		assert.Equal(t, first.CancelledBy, second.CancelledBy)
	})

	t.Run("clients cannot cancel other bookings", func(t *testing.T) {
		repo := newFakeRepo()
		ap := book(t, repo, client7, validInput(client7))

		_, err := NewCancelAppointment(repo, nil, nil).Execute(ctx, client8, ap.ID)
		assert.Equal(t, httperr.CodeForbidden, httperr.BusinessCode(err))
	})

	t.Run("guests cannot cancel", func(t *testing.T) {
		repo := newFakeRepo()
		ap := book(t, repo, guest, validInput(guest))

		_, err := NewCancelAppointment(repo, nil, nil).Execute(ctx, guest, ap.ID)
		assert.Equal(t, httperr.CodeForbidden, httperr.BusinessCode(err))
	})

	t.Run("completed bookings cannot be cancelled", func(t *testing.T) {
		repo := newFakeRepo()
		ap := book(t, repo, client7, validInput(client7))

		_, err := NewUpdateStatus(repo, newFakeRewards(), nil, nil).
			Execute(ctx, admin, ap.ID, string(domain.StatusCompleted))
		require.NoError(t, err)

		_, err = NewCancelAppointment(repo, nil, nil).Execute(ctx, admin, ap.ID)
		assert.Equal(t, httperr.CodeInvalidTransition, httperr.BusinessCode(err))
	})
}

// ======================================================
// READS
// ======================================================

func seedListData(t *testing.T, repo *fakeRepo) {
	t.Helper()

	book(t, repo, client7, validInput(client7))

	in := validInput(client8)
	in.TimeSlot = "3:00 PM"
	book(t, repo, client8, in)

	in = validInput(guest)
	in.BraiderID = "b-9"
	in.BraiderName = "Fatou"
	book(t, repo, guest, in)
}

func TestListHistory(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo()
	seedListData(t, repo)
	uc := NewListHistory(repo)

	t.Run("admin sees everything", func(t *testing.T) {
		got, err := uc.Execute(ctx, admin, ListFilters{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("clients see only their own", func(t *testing.T) {
		got, err := uc.Execute(ctx, client7, ListFilters{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint(7), *got[0].ClientID)
	})

	t.Run("employees see their braider profile's bookings", func(t *testing.T) {
		got, err := uc.Execute(ctx, braider3, ListFilters{})
		require.NoError(t, err)
		assert.Len(t, got, 2)
		for _, ap := range got {
			assert.Equal(t, "b-3", ap.BraiderID)
		}
	})

	t.Run("guests are refused", func(t *testing.T) {
		_, err := uc.Execute(ctx, guest, ListFilters{})
		assert.Equal(t, httperr.CodeForbidden, httperr.BusinessCode(err))
	})

	t.Run("status filter applies on top of scoping", func(t *testing.T) {
		got, err := uc.Execute(ctx, admin, ListFilters{Status: string(domain.StatusCancelled)})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("newest first", func(t *testing.T) {
		got, err := uc.Execute(ctx, braider3, ListFilters{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, got[0].StartTime.After(got[1].StartTime))
	})
}

func TestListDay(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo()
	seedListData(t, repo)
	uc := NewListDay(repo)

	t.Run("date is required", func(t *testing.T) {
		_, err := uc.Execute(ctx, admin, ListFilters{})
		assert.Equal(t, "missing_date", httperr.BusinessCode(err))
	})

	t.Run("chronological order", func(t *testing.T) {
		got, err := uc.Execute(ctx, admin, ListFilters{Date: "2026-06-01"})
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i := 1; i < len(got); i++ {
			assert.False(t, got[i].StartTime.Before(got[i-1].StartTime))
		}
	})
}

func TestGetAppointment(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo()
	ap := book(t, repo, client7, validInput(client7))
	uc := NewGetAppointment(repo)

	t.Run("owner reads their booking", func(t *testing.T) {
		got, err := uc.Execute(ctx, client7, ap.ID)
		require.NoError(t, err)
		assert.Equal(t, ap.ID, got.ID)
	})

	t.Run("other clients are refused", func(t *testing.T) {
		_, err := uc.Execute(ctx, client8, ap.ID)
		assert.Equal(t, httperr.CodeForbidden, httperr.BusinessCode(err))
	})

	t.Run("assigned braider reads it", func(t *testing.T) {
		_, err := uc.Execute(ctx, braider3, ap.ID)
		assert.NoError(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := uc.Execute(ctx, admin, 404)
		assert.Equal(t, httperr.CodeNotFound, httperr.BusinessCode(err))
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("grid minus booked slots", func(t *testing.T) {
		repo := newFakeRepo()
		book(t, repo, guest, validInput(guest))

		got, err := NewGetAvailability(repo, nil).Execute(ctx, "b-3", "2026-06-01")
		require.NoError(t, err)

		assert.NotContains(t, got, "2:00 PM")
		assert.Contains(t, got, "9:00 AM")
		assert.Len(t, got, 9)
	})

	t.Run("cancelled bookings free the slot", func(t *testing.T) {
		repo := newFakeRepo()
		ap := book(t, repo, client7, validInput(client7))
		_, err := NewCancelAppointment(repo, nil, nil).Execute(ctx, client7, ap.ID)
		require.NoError(t, err)

		got, err := NewGetAvailability(repo, nil).Execute(ctx, "b-3", "2026-06-01")
		require.NoError(t, err)
		assert.Contains(t, got, "2:00 PM")
	})

	t.Run("input validation", func(t *testing.T) {
		uc := NewGetAvailability(newFakeRepo(), nil)

		_, err := uc.Execute(ctx, "", "2026-06-01")
		assert.Equal(t, httperr.CodeInvalidDateOrTime, httperr.BusinessCode(err))

		_, err = uc.Execute(ctx, "b-3", "junk")
		assert.Equal(t, httperr.CodeInvalidDateOrTime, httperr.BusinessCode(err))
	})
}
