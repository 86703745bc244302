package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/initia-labs/lockstake/x/lockstake/types"
)

func Test_DefaultParams(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())
	require.NotEmpty(t, params.String())
}

func Test_FindTier(t *testing.T) {
	params := types.DefaultParams()

	tier, found := params.FindTier(90 * types.OneDay)
	require.True(t, found)
	require.Equal(t, uint64(3), tier.RewardMultiplier)

	_, found = params.FindTier(91 * types.OneDay)
	require.False(t, found)
}

func Test_ValidateTiers(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(params *types.Params)
		wantErr bool
	}{
		{
			"default", func(params *types.Params) {}, false,
		},
		{
			"no tiers", func(params *types.Params) {
				params.Tiers = nil
			}, true,
		},
		{
			"missing zero tier", func(params *types.Params) {
				params.Tiers = params.Tiers[1:]
			}, true,
		},
		{
			"zero tier with penalty", func(params *types.Params) {
				params.Tiers[0].EarlyUnlockPenaltyBps = 100
			}, true,
		},
		{
			"zero tier multiplier", func(params *types.Params) {
				params.Tiers[0].RewardMultiplier = 2
			}, true,
		},
		{
			"zero multiplier", func(params *types.Params) {
				params.Tiers[2].RewardMultiplier = 0
			}, true,
		},
		{
			"penalty above denominator", func(params *types.Params) {
				params.Tiers[1].EarlyUnlockPenaltyBps = types.BpsDenominator + 1
			}, true,
		},
		{
			"duplicate duration", func(params *types.Params) {
				params.Tiers[2].Duration = params.Tiers[1].Duration
			}, true,
		},
		{
			"decreasing multiplier", func(params *types.Params) {
				params.Tiers[2].RewardMultiplier = 1
			}, true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := types.DefaultParams()
			tc.mutate(&params)

			err := params.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_ValidateDistribution(t *testing.T) {
	params := types.DefaultParams()
	params.DistributionPeriod = 0
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.DistributionTolerance = params.DistributionPeriod
	require.Error(t, params.Validate())
}
