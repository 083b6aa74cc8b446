package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/crownbraids/salon-scheduler/internal/domain/rewards"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

type RewardsGormRepository struct {
	db *gorm.DB
}

func NewRewardsGormRepository(db *gorm.DB) *RewardsGormRepository {
	return &RewardsGormRepository{db: db}
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *RewardsGormRepository) GetOrCreate(
	ctx context.Context,
	clientID uint,
) (*models.RewardLedgerEntry, error) {

	var entry models.RewardLedgerEntry
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		First(&entry).Error

	if err == nil {
		return &entry, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry = models.RewardLedgerEntry{
		ClientID: clientID,
		Tier:     string(domain.TierBronze),
	}

	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		// Lost a create race: another request inserted the row first.
		if httperr.IsUniqueViolation(err) {
			if err2 := r.db.WithContext(ctx).
				Where("client_id = ?", clientID).
				First(&entry).Error; err2 == nil {
				return &entry, nil
			}
		}
		return nil, err
	}

	return &entry, nil
}

// lockedEntry fetches the ledger row FOR UPDATE inside tx, creating it if
// missing. Concurrent mutations for the same client serialize on the lock.
func (r *RewardsGormRepository) lockedEntry(
	tx *gorm.DB,
	clientID uint,
) (*models.RewardLedgerEntry, error) {

	var entry models.RewardLedgerEntry
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("client_id = ?", clientID).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = models.RewardLedgerEntry{
			ClientID: clientID,
			Tier:     string(domain.TierBronze),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return nil, err
		}
		return &entry, nil
	}
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *RewardsGormRepository) Earn(
	ctx context.Context,
	clientID uint,
	points int,
	reason string,
) (*models.RewardLedgerEntry, error) {

	var out *models.RewardLedgerEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := r.lockedEntry(tx, clientID)
		if err != nil {
			return err
		}

		entry.TotalPoints += points
		entry.LifetimePoints += points
		entry.Tier = string(domain.TierFor(entry.LifetimePoints))

		if err := tx.Save(entry).Error; err != nil {
			return err
		}

		txn := models.RewardTransaction{
			ClientID: clientID,
			Type:     "earn",
			Points:   points,
			Reason:   reason,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		out = entry
		return nil
	})

	return out, err
}

func (r *RewardsGormRepository) Redeem(
	ctx context.Context,
	clientID uint,
	points int,
	reason string,
) (*models.RewardLedgerEntry, error) {

	var out *models.RewardLedgerEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := r.lockedEntry(tx, clientID)
		if err != nil {
			return err
		}

		if points > entry.TotalPoints {
			return httperr.ErrBusiness(httperr.CodeInsufficientPoints)
		}

		entry.TotalPoints -= points
		entry.PointsRedeemed += points

		if err := tx.Save(entry).Error; err != nil {
			return err
		}

		txn := models.RewardTransaction{
			ClientID: clientID,
			Type:     "redeem",
			Points:   points,
			Reason:   reason,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		out = entry
		return nil
	})

	return out, err
}

func (r *RewardsGormRepository) Adjust(
	ctx context.Context,
	clientID uint,
	delta int,
	reason string,
) (*models.RewardLedgerEntry, error) {

	var out *models.RewardLedgerEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := r.lockedEntry(tx, clientID)
		if err != nil {
			return err
		}

		if delta >= 0 {
			entry.TotalPoints += delta
			entry.LifetimePoints += delta
			entry.Tier = string(domain.TierFor(entry.LifetimePoints))
		} else {
			if -delta > entry.TotalPoints {
				return httperr.ErrBusiness(httperr.CodeInsufficientPoints)
			}
			entry.TotalPoints += delta
			entry.PointsRedeemed += -delta
		}

		if err := tx.Save(entry).Error; err != nil {
			return err
		}

		txn := models.RewardTransaction{
			ClientID: clientID,
			Type:     "adjust",
			Points:   delta,
			Reason:   reason,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		out = entry
		return nil
	})

	return out, err
}

func (r *RewardsGormRepository) ListTransactions(
	ctx context.Context,
	clientID uint,
) ([]models.RewardTransaction, error) {

	var txns []models.RewardTransaction
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// Compile-time check
var _ domain.Repository = (*RewardsGormRepository)(nil)
