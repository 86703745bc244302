package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/math"

	"github.com/initia-labs/lockstake/x/lockstake/types"
)

func stakedFunc(staked map[uint64]int64) func(duration uint64) math.Int {
	return func(duration uint64) math.Int {
		if amount, ok := staked[duration]; ok {
			return math.NewInt(amount)
		}
		return math.ZeroInt()
	}
}

func Test_ComputeWeightDeltas(t *testing.T) {
	tiers := types.DefaultTiers()

	// 1000 at multiplier 1 and 500 at multiplier 2 split the reward evenly
	deltas, distributed, err := types.ComputeWeightDeltas(math.NewInt(800), tiers, stakedFunc(map[uint64]int64{
		0:                1000,
		30 * types.OneDay: 500,
	}))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(800), distributed)
	require.Len(t, deltas, 2)
	require.Equal(t, math.LegacyNewDecWithPrec(4, 1), deltas[0])
	require.Equal(t, math.LegacyNewDecWithPrec(8, 1), deltas[30*types.OneDay])
}

func Test_ComputeWeightDeltas_NoStake(t *testing.T) {
	deltas, distributed, err := types.ComputeWeightDeltas(math.NewInt(800), types.DefaultTiers(), stakedFunc(nil))
	require.NoError(t, err)
	require.True(t, distributed.IsZero())
	require.Empty(t, deltas)
}

func Test_ComputeWeightDeltas_Flooring(t *testing.T) {
	tiers := types.DefaultTiers()

	// weighted total 3: shares floor to 3 and 6, one unit stays undistributed
	deltas, distributed, err := types.ComputeWeightDeltas(math.NewInt(10), tiers, stakedFunc(map[uint64]int64{
		0:                1,
		30 * types.OneDay: 1,
	}))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9), distributed)
	require.Equal(t, math.LegacyNewDec(3), deltas[0])
	require.Equal(t, math.LegacyNewDec(6), deltas[30*types.OneDay])
}

func Test_ClaimableRewards(t *testing.T) {
	rewards, err := types.ClaimableRewards(math.NewInt(1000), math.LegacyZeroDec(), math.LegacyNewDecWithPrec(4, 1))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(400), rewards)

	// no weight accrued since entry
	rewards, err = types.ClaimableRewards(math.NewInt(1000), math.LegacyOneDec(), math.LegacyOneDec())
	require.NoError(t, err)
	require.True(t, rewards.IsZero())

	// fractional products floor to token units
	rewards, err = types.ClaimableRewards(math.NewInt(3), math.LegacyZeroDec(), math.LegacyNewDecWithPrec(5, 1))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1), rewards)

	_, err = types.ClaimableRewards(math.NewInt(1000), math.LegacyOneDec(), math.LegacyZeroDec())
	require.ErrorIs(t, err, types.ErrRewardWeightRegression)
}
