package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/initia-labs/lockstake/x/lockstake/types"
)

// Querier is the read-only query surface of the lockstake module. Wire-level
// query registration belongs to the surrounding app.
type Querier struct {
	*Keeper
}

func NewQuerier(k *Keeper) Querier {
	return Querier{Keeper: k}
}

// TotalStakingByDuration returns the staked amount of every configured tier.
func (q Querier) TotalStakingByDuration(ctx context.Context) ([]types.StakingWithDuration, error) {
	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	totals := make([]types.StakingWithDuration, 0, len(params.Tiers))
	for _, tier := range params.Tiers {
		amount, err := q.GetTotalStakingByDuration(ctx, tier.Duration)
		if err != nil {
			return nil, err
		}

		totals = append(totals, types.StakingWithDuration{Duration: tier.Duration, Amount: amount})
	}

	return totals, nil
}

// Positions returns every open position of owner.
func (q Querier) Positions(ctx context.Context, owner string) ([]types.UserPosition, error) {
	ownerAddr, err := q.ac.StringToBytes(owner)
	if err != nil {
		return nil, err
	}

	var positions []types.UserPosition
	err = q.IteratePositionsByOwner(ctx, ownerAddr, func(position types.StakePosition) (stop bool, err error) {
		positions = append(positions, types.UserPosition{
			Duration:  position.Duration,
			StartTime: position.StartTime,
			Amount:    position.Amount,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return positions, nil
}

// Rewards returns the rewards currently claimable on each of owner's
// positions.
func (q Querier) Rewards(ctx context.Context, owner string) ([]types.PositionRewards, error) {
	ownerAddr, err := q.ac.StringToBytes(owner)
	if err != nil {
		return nil, err
	}

	return q.PositionRewards(ctx, ownerAddr)
}

// CalculatePenalty previews the forfeited amount of withdrawing amount from
// the given position at the current block time.
func (q Querier) CalculatePenalty(ctx context.Context, amount math.Int, duration, startTime uint64) (math.Int, error) {
	tier, err := q.GetTier(ctx, duration)
	if err != nil {
		return math.Int{}, err
	}

	if startTime+duration <= q.blockTime(ctx) {
		return math.ZeroInt(), nil
	}

	_, forfeited := types.PenaltySplit(amount, tier.EarlyUnlockPenaltyBps)
	return forfeited, nil
}

// PoolClaimable values the rewards backing a derivative holding against the
// current pool snapshot, net of what was already claimed.
func (q Querier) PoolClaimable(ctx context.Context, derivativeAmount, baseAmount, claimed math.Int) (math.Int, error) {
	snapshot, err := q.poolKeeper.PoolSnapshot(ctx)
	if err != nil {
		return math.Int{}, err
	}

	return types.Claimable(derivativeAmount, baseAmount, snapshot.TotalShares, snapshot.TotalDeposit, claimed)
}
