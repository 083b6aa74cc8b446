package rewards

import (
	"context"

	"github.com/crownbraids/salon-scheduler/internal/audit"
	domain "github.com/crownbraids/salon-scheduler/internal/domain/rewards"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

type RedeemPoints struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRedeemPoints(repo domain.Repository, audit *audit.Dispatcher) *RedeemPoints {
	return &RedeemPoints{repo: repo, audit: audit}
}

func (uc *RedeemPoints) Execute(
	ctx context.Context,
	clientID uint,
	points int,
	reason string,
) (*models.RewardLedgerEntry, error) {

	if points <= 0 {
		return nil, httperr.ErrBusiness("invalid_points")
	}

	entry, err := uc.repo.Redeem(ctx, clientID, points, reason)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "points_redeemed",
		Entity:   "reward_ledger",
		EntityID: &entry.ID,
		Metadata: map[string]any{"points": points},
	})

	return entry, nil
}
