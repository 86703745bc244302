package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/initia-labs/lockstake/x/lockstake/types"
)

func Test_SetGetParams(t *testing.T) {
	input := createTestInput(t)

	params, err := input.Keeper.GetParams(input.Ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), params)

	params.DistributionPeriod = 10 * types.OneDay
	params.DistributionTolerance = types.OneDay
	require.NoError(t, input.Keeper.SetParams(input.Ctx, params))

	params, err = input.Keeper.GetParams(input.Ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(10*types.OneDay), params.DistributionPeriod)

	// missing zero-duration tier
	params.Tiers = params.Tiers[1:]
	require.Error(t, input.Keeper.SetParams(input.Ctx, params))
}

func Test_GetTier(t *testing.T) {
	input := createTestInput(t)

	tier, err := input.Keeper.GetTier(input.Ctx, 30*types.OneDay)
	require.NoError(t, err)
	require.Equal(t, uint64(2), tier.RewardMultiplier)
	require.Equal(t, uint64(5000), tier.EarlyUnlockPenaltyBps)

	_, err = input.Keeper.GetTier(input.Ctx, 31*types.OneDay)
	require.ErrorIs(t, err, types.ErrInvalidDuration)
}

func Test_DefaultingGetters(t *testing.T) {
	input := createTestInput(t)

	total, err := input.Keeper.GetTotalStaking(input.Ctx)
	require.NoError(t, err)
	require.True(t, total.IsZero())

	byDuration, err := input.Keeper.GetTotalStakingByDuration(input.Ctx, 30*types.OneDay)
	require.NoError(t, err)
	require.True(t, byDuration.IsZero())

	pool, err := input.Keeper.GetPenaltyPool(input.Ctx)
	require.NoError(t, err)
	require.True(t, pool.IsZero())

	weight, err := input.Keeper.GetRewardWeight(input.Ctx, 30*types.OneDay)
	require.NoError(t, err)
	require.True(t, weight.IsZero())
}
