package rewards

import (
	"context"

	"github.com/crownbraids/salon-scheduler/internal/audit"
	domain "github.com/crownbraids/salon-scheduler/internal/domain/rewards"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

// AdjustPoints is the staff-only correction: a positive delta behaves as an
// award, a negative one as a redemption of its absolute value.
type AdjustPoints struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdjustPoints(repo domain.Repository, audit *audit.Dispatcher) *AdjustPoints {
	return &AdjustPoints{repo: repo, audit: audit}
}

func (uc *AdjustPoints) Execute(
	ctx context.Context,
	staffID uint,
	clientID uint,
	delta int,
	reason string,
) (*models.RewardLedgerEntry, error) {

	if delta == 0 {
		return nil, httperr.ErrBusiness("invalid_points")
	}

	entry, err := uc.repo.Adjust(ctx, clientID, delta, reason)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "points_adjusted",
		Entity:   "reward_ledger",
		EntityID: &entry.ID,
		Metadata: map[string]any{
			"client_id": clientID,
			"delta":     delta,
			"reason":    reason,
		},
	})

	return entry, nil
}
