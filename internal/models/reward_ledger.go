package models

import "time"

// RewardLedgerEntry is the single rewards record per client. Created lazily
// on first award or first balance lookup.
type RewardLedgerEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"uniqueIndex;not null" json:"client_id"`

	TotalPoints    int `gorm:"default:0" json:"total_points"`
	LifetimePoints int `gorm:"default:0" json:"lifetime_points"`
	PointsRedeemed int `gorm:"default:0" json:"points_redeemed"`

	Tier string `gorm:"size:20;default:'bronze'" json:"tier"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RewardTransaction records a single points state change behind the ledger.
type RewardTransaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Type     string `gorm:"size:20;not null" json:"type"` // earn, redeem, adjust
	Points   int    `json:"points"`
	Reason   string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
