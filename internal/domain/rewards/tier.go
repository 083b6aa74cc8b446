package rewards

// ===============================
// Tiers
// ===============================

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// TierFor derives the tier from lifetime points. Pure function, evaluated
// highest threshold first.
func TierFor(lifetimePoints int) Tier {
	switch {
	case lifetimePoints >= 1000:
		return TierPlatinum
	case lifetimePoints >= 500:
		return TierGold
	case lifetimePoints >= 200:
		return TierSilver
	default:
		return TierBronze
	}
}

// ===============================
// Redeemable rewards
// ===============================

type RewardThreshold struct {
	Points   int    `json:"points"`
	Discount string `json:"discount"`
}

var rewardThresholds = []RewardThreshold{
	{Points: 50, Discount: "$5 off"},
	{Points: 100, Discount: "$12 off"},
	{Points: 200, Discount: "$30 off"},
	{Points: 500, Discount: "$80 off"},
	{Points: 1000, Discount: "free appointment"},
}

type NextRewardInfo struct {
	// Nil once the top threshold is reached.
	Next         *RewardThreshold `json:"next"`
	PointsNeeded int              `json:"points_needed"`
	MaxReached   bool             `json:"max_reached"`
}

// NextReward maps a spendable balance to the next reward threshold and the
// gap to it.
func NextReward(totalPoints int) NextRewardInfo {
	for i := range rewardThresholds {
		t := rewardThresholds[i]
		if totalPoints < t.Points {
			return NextRewardInfo{
				Next:         &t,
				PointsNeeded: t.Points - totalPoints,
			}
		}
	}
	return NextRewardInfo{MaxReached: true}
}

// Thresholds exposes the full reward table for client display.
func Thresholds() []RewardThreshold {
	out := make([]RewardThreshold, len(rewardThresholds))
	copy(out, rewardThresholds)
	return out
}
