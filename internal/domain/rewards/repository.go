package rewards

import (
	"context"

	"github.com/crownbraids/salon-scheduler/internal/models"
)

type Repository interface {
	// GetOrCreate returns the client's ledger entry, creating a zeroed one
	// on first access.
	GetOrCreate(ctx context.Context, clientID uint) (*models.RewardLedgerEntry, error)

	// Earn adds points to both counters and recomputes the tier, serialized
	// per client. Records an "earn" transaction with the given reason.
	Earn(ctx context.Context, clientID uint, points int, reason string) (*models.RewardLedgerEntry, error)

	// Redeem spends points from the balance. Fails with insufficient_points
	// without touching the ledger when the balance is too low.
	Redeem(ctx context.Context, clientID uint, points int, reason string) (*models.RewardLedgerEntry, error)

	// Adjust applies a signed staff correction: positive deltas behave like
	// an award, negative like a redemption with the same insufficient_points
	// guard. The history records a single "adjust" transaction either way.
	Adjust(ctx context.Context, clientID uint, delta int, reason string) (*models.RewardLedgerEntry, error)

	// ListTransactions returns the client's points history, newest first.
	ListTransactions(ctx context.Context, clientID uint) ([]models.RewardTransaction, error)
}
