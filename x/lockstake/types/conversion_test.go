package types_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/math"

	"github.com/initia-labs/lockstake/x/lockstake/types"
)

func Test_ConvertTokens(t *testing.T) {
	// 1:2 pooled rate
	converted, err := types.ConvertTokens(math.NewInt(100), math.NewInt(1000), math.NewInt(2000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(200), converted)

	// the quotient floors
	converted, err = types.ConvertTokens(math.NewInt(7), math.NewInt(3), math.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4), converted)

	_, err = types.ConvertTokens(math.NewInt(100), math.ZeroInt(), math.NewInt(2000))
	require.ErrorIs(t, err, types.ErrUndefinedRate)
}

func Test_ConvertTokens_RoundTrip(t *testing.T) {
	totalA := math.NewInt(7919)
	totalB := math.NewInt(104729)

	for _, amount := range []int64{1, 3, 997, 65536, 1_000_000} {
		converted, err := types.ConvertTokens(math.NewInt(amount), totalA, totalB)
		require.NoError(t, err)

		back, err := types.ConvertTokens(converted, totalB, totalA)
		require.NoError(t, err)
		require.True(t, back.LTE(math.NewInt(amount)), "round trip gained value: %d -> %s", amount, back)
	}
}

func Test_ConvertTokens_Overflow(t *testing.T) {
	huge := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 200))

	_, err := types.ConvertTokens(huge, math.OneInt(), huge)
	require.ErrorIs(t, err, types.ErrNumericOverflow)
}

func Test_Claimable(t *testing.T) {
	totalDerivative := math.NewInt(1000)
	totalBase := math.NewInt(2000)

	// 100 shares withdraw to 200 base; surplus 100 backs 50 shares
	claimable, err := types.Claimable(math.NewInt(100), math.NewInt(100), totalDerivative, totalBase, math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50), claimable)

	claimable, err = types.Claimable(math.NewInt(100), math.NewInt(100), totalDerivative, totalBase, math.NewInt(20))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(30), claimable)

	// no growth over principal
	claimable, err = types.Claimable(math.NewInt(100), math.NewInt(100), math.NewInt(1000), math.NewInt(1000), math.ZeroInt())
	require.NoError(t, err)
	require.True(t, claimable.IsZero())

	// value below principal saturates at zero instead of going negative
	claimable, err = types.Claimable(math.NewInt(100), math.NewInt(300), totalDerivative, totalBase, math.ZeroInt())
	require.NoError(t, err)
	require.True(t, claimable.IsZero())

	_, err = types.Claimable(math.NewInt(100), math.NewInt(100), totalDerivative, totalBase, math.NewInt(51))
	require.ErrorIs(t, err, types.ErrExcessiveClaimed)
}

func Test_PenaltySplit(t *testing.T) {
	testCases := []struct {
		name      string
		amount    int64
		bps       uint64
		returned  int64
		forfeited int64
	}{
		{"half", 1000, 5000, 500, 500},
		{"half odd amount", 999, 5000, 499, 500},
		{"no penalty", 1000, 0, 1000, 0},
		{"full penalty", 1000, 10000, 0, 1000},
		{"flooring", 1000, 333, 966, 34},
		{"single unit", 1, 5000, 0, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			returned, forfeited := types.PenaltySplit(math.NewInt(tc.amount), tc.bps)
			require.True(t, math.NewInt(tc.returned).Equal(returned), "returned: expected %d, got %s", tc.returned, returned)
			require.True(t, math.NewInt(tc.forfeited).Equal(forfeited), "forfeited: expected %d, got %s", tc.forfeited, forfeited)
			require.Equal(t, math.NewInt(tc.amount), returned.Add(forfeited))
		})
	}
}
