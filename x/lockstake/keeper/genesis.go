package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/initia-labs/lockstake/x/lockstake/types"
)

// InitGenesis sets the lockstake module state from a genesis state. Staking
// totals are recomputed from the imported positions so the conservation
// invariant holds by construction.
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := types.ValidateGenesis(*data); err != nil {
		return err
	}

	if err := k.SetParams(ctx, data.Params); err != nil {
		return err
	}

	if err := k.LastDistributionTime.Set(ctx, data.LastDistributionTime); err != nil {
		return err
	}

	penaltyPool := data.PenaltyPool
	if penaltyPool.IsNil() {
		penaltyPool = math.ZeroInt()
	}
	if err := k.PenaltyPool.Set(ctx, penaltyPool); err != nil {
		return err
	}

	for _, record := range data.RewardWeights {
		if err := k.RewardWeights.Set(ctx, record.Duration, record.RewardWeight); err != nil {
			return err
		}
	}

	for _, record := range data.PendingRewards {
		if err := k.PendingRewards.Set(ctx, record.PeriodIndex, record.Amount); err != nil {
			return err
		}
	}

	if err := k.TotalStaking.Set(ctx, math.ZeroInt()); err != nil {
		return err
	}

	for _, record := range data.Positions {
		owner, err := k.ac.StringToBytes(record.Owner)
		if err != nil {
			return err
		}

		position := record.Position
		key := positionKey(owner, position.Duration, position.StartTime)
		if err := k.Positions.Set(ctx, key, position); err != nil {
			return err
		}

		if err := k.addToTotals(ctx, position.Duration, position.Amount); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns a GenesisState for the lockstake module.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	var positions []types.PositionRecord
	err = k.IteratePositions(ctx, func(owner []byte, position types.StakePosition) (stop bool, err error) {
		ownerStr, err := k.ac.BytesToString(owner)
		if err != nil {
			return true, err
		}

		positions = append(positions, types.PositionRecord{Owner: ownerStr, Position: position})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	var rewardWeights []types.RewardWeightRecord
	err = k.RewardWeights.Walk(ctx, nil, func(duration uint64, weight math.LegacyDec) (stop bool, err error) {
		rewardWeights = append(rewardWeights, types.RewardWeightRecord{Duration: duration, RewardWeight: weight})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	var pendingRewards []types.PendingRewardRecord
	err = k.PendingRewards.Walk(ctx, nil, func(idx uint64, amount math.Int) (stop bool, err error) {
		pendingRewards = append(pendingRewards, types.PendingRewardRecord{PeriodIndex: idx, Amount: amount})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	penaltyPool, err := k.GetPenaltyPool(ctx)
	if err != nil {
		return nil, err
	}

	lastDistributionTime, err := k.GetLastDistributionTime(ctx)
	if err != nil {
		return nil, err
	}

	return types.NewGenesisState(params, positions, rewardWeights, pendingRewards, penaltyPool, lastDistributionTime), nil
}
