package types

import (
	"cosmossdk.io/math"
)

// StakePosition is one owner's lock at one duration tier opened at one start
// time. RewardWeightEntry snapshots the cumulative tier weight at creation or
// at the last settlement, so an amount never earns weight accrued before it
// was staked. AccruedRewards buffers settled-but-unclaimed rewards across
// top-ups.
type StakePosition struct {
	Amount            math.Int       `json:"amount"`
	Duration          uint64         `json:"duration"`
	StartTime         uint64         `json:"start_time"`
	RewardWeightEntry math.LegacyDec `json:"reward_weight_entry"`
	AccruedRewards    math.Int       `json:"accrued_rewards"`
}

// NewStakePosition creates a fresh position stamped with the current tier
// weight.
func NewStakePosition(amount math.Int, duration, startTime uint64, rewardWeight math.LegacyDec) StakePosition {
	return StakePosition{
		Amount:            amount,
		Duration:          duration,
		StartTime:         startTime,
		RewardWeightEntry: rewardWeight,
		AccruedRewards:    math.ZeroInt(),
	}
}

// EndTime returns the maturity timestamp of the lock.
func (p StakePosition) EndTime() uint64 {
	return p.StartTime + p.Duration
}

// Matured reports whether the lock can be withdrawn without penalty at now.
func (p StakePosition) Matured(now uint64) bool {
	return now >= p.EndTime()
}

// Validate performs basic stake position validation.
func (p StakePosition) Validate() error {
	if p.Amount.IsNil() || p.Amount.IsNegative() {
		return ErrEmptyStakeAmount.Wrapf("invalid amount %v", p.Amount)
	}

	if p.RewardWeightEntry.IsNil() || p.RewardWeightEntry.IsNegative() {
		return ErrRewardWeightRegression.Wrapf("invalid entry weight %v", p.RewardWeightEntry)
	}

	if p.AccruedRewards.IsNil() || p.AccruedRewards.IsNegative() {
		return ErrEmptyStakeAmount.Wrapf("invalid accrued rewards %v", p.AccruedRewards)
	}

	return nil
}

// PoolSnapshot is a point-in-time view of the external staking pool backing
// the derivative token. It is fetched per call and never persisted.
type PoolSnapshot struct {
	TotalShares  math.Int `json:"total_shares"`
	TotalDeposit math.Int `json:"total_deposit"`
}

// StakingWithDuration pairs a tier with its aggregate staked amount.
type StakingWithDuration struct {
	Duration uint64   `json:"duration"`
	Amount   math.Int `json:"amount"`
}

// UserPosition is a query view of one open position.
type UserPosition struct {
	Duration  uint64   `json:"duration"`
	StartTime uint64   `json:"start_time"`
	Amount    math.Int `json:"amount"`
}

// PositionRewards is a query view of the rewards claimable on one position.
type PositionRewards struct {
	Duration  uint64   `json:"duration"`
	StartTime uint64   `json:"start_time"`
	Rewards   math.Int `json:"rewards"`
}
