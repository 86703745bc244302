package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/lockstake/x/lockstake/types"
)

// periodIndex identifies the distribution period containing ts.
func periodIndex(ts, period uint64) uint64 {
	return ts / period
}

// AddPendingRewards queues derivative-denominated rewards under the current
// period index. Queued amounts fold into the reward weights at the next
// distribution.
func (k Keeper) AddPendingRewards(ctx context.Context, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrEmptyStakeAmount.Wrap("reward amount must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	idx := periodIndex(k.blockTime(ctx), params.DistributionPeriod)
	pending, err := k.PendingRewards.Get(ctx, idx)
	if errors.Is(err, collections.ErrNotFound) {
		pending = math.ZeroInt()
	} else if err != nil {
		return err
	}

	return k.PendingRewards.Set(ctx, idx, pending.Add(amount))
}

// MaybeDistribute folds the queued rewards into the cumulative reward weights
// if a distribution period has elapsed since the last fold. The tolerance
// window lets calls landing slightly before the exact boundary still trigger
// the fold, absorbing block-time jitter. Pending rewards are converted from
// derivative to base units at the pool rate before the multiplier-weighted
// split; whatever the floored split cannot pay out is re-queued for the next
// period.
func (k Keeper) MaybeDistribute(ctx context.Context) (bool, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return false, err
	}

	now := k.blockTime(ctx)
	last, err := k.GetLastDistributionTime(ctx)
	if err != nil {
		return false, err
	}

	if now+params.DistributionTolerance < last+params.DistributionPeriod {
		return false, nil
	}

	pending := math.ZeroInt()
	var consumed []uint64
	err = k.PendingRewards.Walk(ctx, nil, func(idx uint64, amount math.Int) (stop bool, err error) {
		pending = pending.Add(amount)
		consumed = append(consumed, idx)
		return false, nil
	})
	if err != nil {
		return false, err
	}

	if err := k.LastDistributionTime.Set(ctx, now); err != nil {
		return false, err
	}

	if pending.IsZero() {
		return true, nil
	}

	snapshot, err := k.poolKeeper.PoolSnapshot(ctx)
	if err != nil {
		return false, err
	}

	reward, err := types.ConvertTokens(pending, snapshot.TotalShares, snapshot.TotalDeposit)
	if err != nil {
		return false, err
	}

	staked := make(map[uint64]math.Int, len(params.Tiers))
	for _, tier := range params.Tiers {
		amount, err := k.GetTotalStakingByDuration(ctx, tier.Duration)
		if err != nil {
			return false, err
		}

		staked[tier.Duration] = amount
	}

	deltas, distributed, err := types.ComputeWeightDeltas(reward, params.Tiers, func(duration uint64) math.Int {
		if amount, ok := staked[duration]; ok {
			return amount
		}
		return math.ZeroInt()
	})
	if err != nil {
		return false, err
	}

	for _, tier := range params.Tiers {
		delta, ok := deltas[tier.Duration]
		if !ok {
			continue
		}

		weight, err := k.GetRewardWeight(ctx, tier.Duration)
		if err != nil {
			return false, err
		}

		if err := k.RewardWeights.Set(ctx, tier.Duration, weight.Add(delta)); err != nil {
			return false, err
		}
	}

	for _, idx := range consumed {
		if err := k.PendingRewards.Remove(ctx, idx); err != nil {
			return false, err
		}
	}

	// roll the undistributed remainder forward in derivative units
	residual := math.ZeroInt()
	if remainder := reward.Sub(distributed); remainder.IsPositive() {
		residual, err = types.ConvertTokens(remainder, snapshot.TotalDeposit, snapshot.TotalShares)
		if err != nil {
			return false, err
		}

		if residual.IsPositive() {
			if err := k.PendingRewards.Set(ctx, periodIndex(now, params.DistributionPeriod), residual); err != nil {
				return false, err
			}
		}
	}

	k.Logger(ctx).Info("distributed rewards",
		"pending", pending.String(),
		"distributed", distributed.String(),
		"residual", residual.String(),
	)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeDistribute,
			sdk.NewAttribute(sdk.AttributeKeyAmount, distributed.String()),
			sdk.NewAttribute(types.AttributeKeyResidual, residual.String()),
		),
	})

	return true, nil
}

// ClaimRewards settles one position and drains its reward buffer, returning
// the claimable amount.
func (k Keeper) ClaimRewards(ctx context.Context, owner []byte, duration, startTime uint64) (math.Int, error) {
	position, err := k.GetPosition(ctx, owner, duration, startTime)
	if err != nil {
		return math.Int{}, err
	}

	if err := k.settlePosition(ctx, &position); err != nil {
		return math.Int{}, err
	}

	rewards := position.AccruedRewards
	position.AccruedRewards = math.ZeroInt()

	key := positionKey(owner, duration, startTime)
	if position.Amount.IsZero() {
		if err := k.Positions.Remove(ctx, key); err != nil {
			return math.Int{}, err
		}
	} else if err := k.Positions.Set(ctx, key, position); err != nil {
		return math.Int{}, err
	}

	return rewards, nil
}

// ClaimAllRewards settles every open position of owner and drains their reward
// buffers, returning the combined claimable amount.
func (k Keeper) ClaimAllRewards(ctx context.Context, owner []byte) (math.Int, error) {
	var positions []types.StakePosition
	err := k.IteratePositionsByOwner(ctx, owner, func(position types.StakePosition) (stop bool, err error) {
		positions = append(positions, position)
		return false, nil
	})
	if err != nil {
		return math.Int{}, err
	}

	rewards := math.ZeroInt()
	for _, position := range positions {
		claimed, err := k.ClaimRewards(ctx, owner, position.Duration, position.StartTime)
		if err != nil {
			return math.Int{}, err
		}

		rewards = rewards.Add(claimed)
	}

	return rewards, nil
}

// PositionRewards values the rewards currently claimable on each of owner's
// positions without mutating them.
func (k Keeper) PositionRewards(ctx context.Context, owner []byte) ([]types.PositionRewards, error) {
	var rewards []types.PositionRewards
	err := k.IteratePositionsByOwner(ctx, owner, func(position types.StakePosition) (stop bool, err error) {
		currentWeight, err := k.GetRewardWeight(ctx, position.Duration)
		if err != nil {
			return true, err
		}

		accrued, err := types.ClaimableRewards(position.Amount, position.RewardWeightEntry, currentWeight)
		if err != nil {
			return true, err
		}

		rewards = append(rewards, types.PositionRewards{
			Duration:  position.Duration,
			StartTime: position.StartTime,
			Rewards:   position.AccruedRewards.Add(accrued),
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return rewards, nil
}
