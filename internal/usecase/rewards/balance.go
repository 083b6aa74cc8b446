package rewards

import (
	"context"

	domain "github.com/crownbraids/salon-scheduler/internal/domain/rewards"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

// BalanceView is the ledger entry plus the derived next-reward info clients
// see on their rewards page.
type BalanceView struct {
	Ledger     *models.RewardLedgerEntry  `json:"ledger"`
	NextReward domain.NextRewardInfo      `json:"next_reward"`
	Thresholds []domain.RewardThreshold   `json:"thresholds"`
	History    []models.RewardTransaction `json:"history,omitempty"`
}

type GetBalance struct {
	repo domain.Repository
}

func NewGetBalance(repo domain.Repository) *GetBalance {
	return &GetBalance{repo: repo}
}

func (uc *GetBalance) Execute(
	ctx context.Context,
	clientID uint,
	withHistory bool,
) (*BalanceView, error) {

	entry, err := uc.repo.GetOrCreate(ctx, clientID)
	if err != nil {
		return nil, err
	}

	view := &BalanceView{
		Ledger:     entry,
		NextReward: domain.NextReward(entry.TotalPoints),
		Thresholds: domain.Thresholds(),
	}

	if withHistory {
		history, err := uc.repo.ListTransactions(ctx, clientID)
		if err != nil {
			return nil, err
		}
		view.History = history
	}

	return view, nil
}
