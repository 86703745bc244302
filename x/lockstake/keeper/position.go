package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	"github.com/initia-labs/lockstake/x/lockstake/types"
)

func positionKey(owner []byte, duration, startTime uint64) collections.Triple[[]byte, uint64, uint64] {
	return collections.Join3(owner, duration, startTime)
}

// GetPosition returns the stake position at the exact (owner, duration,
// start time) key.
func (k Keeper) GetPosition(ctx context.Context, owner []byte, duration, startTime uint64) (types.StakePosition, error) {
	position, err := k.Positions.Get(ctx, positionKey(owner, duration, startTime))
	if errors.Is(err, collections.ErrNotFound) {
		return types.StakePosition{}, types.ErrPositionNotFound.Wrapf("duration %d, start time %d", duration, startTime)
	} else if err != nil {
		return types.StakePosition{}, err
	}

	return position, nil
}

// settlePosition folds the weight accrued since the position's entry stamp
// into its reward buffer and restamps the entry weight. Must run before any
// amount change so re-staked funds never earn weight retroactively.
func (k Keeper) settlePosition(ctx context.Context, position *types.StakePosition) error {
	currentWeight, err := k.GetRewardWeight(ctx, position.Duration)
	if err != nil {
		return err
	}

	accrued, err := types.ClaimableRewards(position.Amount, position.RewardWeightEntry, currentWeight)
	if err != nil {
		return err
	}

	position.AccruedRewards = position.AccruedRewards.Add(accrued)
	position.RewardWeightEntry = currentWeight
	return nil
}

// OpenOrIncrease creates a stake position at (owner, duration, startTime) or
// tops up the existing one, keeping the running totals in sync.
func (k Keeper) OpenOrIncrease(ctx context.Context, owner []byte, duration, startTime uint64, amount math.Int) error {
	if _, err := k.GetTier(ctx, duration); err != nil {
		return err
	}

	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrEmptyStakeAmount
	}

	key := positionKey(owner, duration, startTime)
	position, err := k.Positions.Get(ctx, key)
	if errors.Is(err, collections.ErrNotFound) {
		currentWeight, err := k.GetRewardWeight(ctx, duration)
		if err != nil {
			return err
		}

		position = types.NewStakePosition(amount, duration, startTime, currentWeight)
	} else if err != nil {
		return err
	} else {
		if err := k.settlePosition(ctx, &position); err != nil {
			return err
		}

		position.Amount = position.Amount.Add(amount)
	}

	if err := k.Positions.Set(ctx, key, position); err != nil {
		return err
	}

	return k.addToTotals(ctx, duration, amount)
}

// Withdraw removes amount from a position. Before maturity the tier penalty
// applies: the user receives floor(amount * (10000 - penaltyBps) / 10000) and
// the remainder accrues to the penalty pool. The position record is deleted
// once both its amount and reward buffer reach zero.
func (k Keeper) Withdraw(ctx context.Context, owner []byte, duration, startTime uint64, amount math.Int) (returned, penalty math.Int, err error) {
	tier, err := k.GetTier(ctx, duration)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrEmptyStakeAmount
	}

	position, err := k.GetPosition(ctx, owner, duration, startTime)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if amount.GT(position.Amount) {
		return math.Int{}, math.Int{}, types.ErrExceedingUnstakeAmount.Wrapf("requested %s, staked %s", amount, position.Amount)
	}

	if err := k.settlePosition(ctx, &position); err != nil {
		return math.Int{}, math.Int{}, err
	}

	now := k.blockTime(ctx)
	if position.Matured(now) {
		returned, penalty = amount, math.ZeroInt()
	} else {
		returned, penalty = types.PenaltySplit(amount, tier.EarlyUnlockPenaltyBps)

		pool, err := k.GetPenaltyPool(ctx)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}

		if err := k.PenaltyPool.Set(ctx, pool.Add(penalty)); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	position.Amount = position.Amount.Sub(amount)

	key := positionKey(owner, duration, startTime)
	if position.Amount.IsZero() && position.AccruedRewards.IsZero() {
		if err := k.Positions.Remove(ctx, key); err != nil {
			return math.Int{}, math.Int{}, err
		}
	} else {
		if err := k.Positions.Set(ctx, key, position); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	if err := k.subFromTotals(ctx, duration, amount); err != nil {
		return math.Int{}, math.Int{}, err
	}

	return returned, penalty, nil
}

// Relock moves a matured position into an equal-or-longer tier restarting at
// the current block time, optionally adding addAmount of fresh funds. The move
// is penalty-free; early exits must go through Withdraw.
func (k Keeper) Relock(ctx context.Context, owner []byte, fromDuration, startTime, toDuration uint64, addAmount math.Int) (newStartTime uint64, err error) {
	if _, err := k.GetTier(ctx, toDuration); err != nil {
		return 0, err
	}

	if toDuration < fromDuration {
		return 0, types.ErrShorterDuration.Wrapf("from %d to %d", fromDuration, toDuration)
	}

	if addAmount.IsNil() || addAmount.IsNegative() {
		return 0, types.ErrEmptyStakeAmount.Wrap("add amount must not be negative")
	}

	position, err := k.GetPosition(ctx, owner, fromDuration, startTime)
	if err != nil {
		return 0, err
	}

	now := k.blockTime(ctx)
	if !position.Matured(now) {
		return 0, types.ErrLockNotMatured.Wrapf("matures at %d, now %d", position.EndTime(), now)
	}

	if err := k.settlePosition(ctx, &position); err != nil {
		return 0, err
	}

	if err := k.Positions.Remove(ctx, positionKey(owner, fromDuration, startTime)); err != nil {
		return 0, err
	}

	moved := position.Amount
	newKey := positionKey(owner, toDuration, now)
	relocked, err := k.Positions.Get(ctx, newKey)
	if errors.Is(err, collections.ErrNotFound) {
		currentWeight, err := k.GetRewardWeight(ctx, toDuration)
		if err != nil {
			return 0, err
		}

		relocked = types.NewStakePosition(moved.Add(addAmount), toDuration, now, currentWeight)
	} else if err != nil {
		return 0, err
	} else {
		if err := k.settlePosition(ctx, &relocked); err != nil {
			return 0, err
		}

		relocked.Amount = relocked.Amount.Add(moved).Add(addAmount)
	}

	// reward buffer follows the funds to the new key
	relocked.AccruedRewards = relocked.AccruedRewards.Add(position.AccruedRewards)
	if err := k.Positions.Set(ctx, newKey, relocked); err != nil {
		return 0, err
	}

	if err := k.subFromTotals(ctx, fromDuration, moved); err != nil {
		return 0, err
	}

	return now, k.addToTotals(ctx, toDuration, moved.Add(addAmount))
}

// IteratePositions iterates over every open position.
func (k Keeper) IteratePositions(ctx context.Context, cb func(owner []byte, position types.StakePosition) (stop bool, err error)) error {
	return k.Positions.Walk(ctx, nil, func(key collections.Triple[[]byte, uint64, uint64], position types.StakePosition) (stop bool, err error) {
		return cb(key.K1(), position)
	})
}

// IteratePositionsByOwner iterates over one owner's open positions.
func (k Keeper) IteratePositionsByOwner(ctx context.Context, owner []byte, cb func(position types.StakePosition) (stop bool, err error)) error {
	return k.Positions.Walk(ctx, collections.NewPrefixedTripleRange[[]byte, uint64, uint64](owner), func(key collections.Triple[[]byte, uint64, uint64], position types.StakePosition) (stop bool, err error) {
		return cb(position)
	})
}

// addToTotals bumps the aggregate and per-tier staking counters together, so
// the conservation invariant is restored within the same mutation.
func (k Keeper) addToTotals(ctx context.Context, duration uint64, amount math.Int) error {
	total, err := k.GetTotalStaking(ctx)
	if err != nil {
		return err
	}

	if err := k.TotalStaking.Set(ctx, total.Add(amount)); err != nil {
		return err
	}

	byDuration, err := k.GetTotalStakingByDuration(ctx, duration)
	if err != nil {
		return err
	}

	return k.TotalStakingByDuration.Set(ctx, duration, byDuration.Add(amount))
}

func (k Keeper) subFromTotals(ctx context.Context, duration uint64, amount math.Int) error {
	total, err := k.GetTotalStaking(ctx)
	if err != nil {
		return err
	}

	total = total.Sub(amount)
	if total.IsNegative() {
		return types.ErrInvalidStakingTotal.Wrapf("aggregate total short by %s", total.Neg())
	}

	if err := k.TotalStaking.Set(ctx, total); err != nil {
		return err
	}

	byDuration, err := k.GetTotalStakingByDuration(ctx, duration)
	if err != nil {
		return err
	}

	byDuration = byDuration.Sub(amount)
	if byDuration.IsNegative() {
		return types.ErrInvalidStakingTotal.Wrapf("tier %d total short by %s", duration, byDuration.Neg())
	}

	return k.TotalStakingByDuration.Set(ctx, duration, byDuration)
}
