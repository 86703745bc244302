package keeper

import (
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/lockstake/x/lockstake/types"
)

// RegisterInvariants registers all lockstake invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "total-staking",
		TotalStakingInvariant(k))
}

// AllInvariants runs all invariants of the lockstake module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		return TotalStakingInvariant(k)(ctx)
	}
}

// TotalStakingInvariant checks that the aggregate and per-tier staking
// counters equal the sums over all open positions.
func TotalStakingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		positionSum := math.ZeroInt()
		positionSumByDuration := make(map[uint64]math.Int)
		err := k.IteratePositions(ctx, func(_ []byte, position types.StakePosition) (stop bool, err error) {
			positionSum = positionSum.Add(position.Amount)

			sum, ok := positionSumByDuration[position.Duration]
			if !ok {
				sum = math.ZeroInt()
			}
			positionSumByDuration[position.Duration] = sum.Add(position.Amount)
			return false, nil
		})
		if err != nil {
			panic(err)
		}

		total, err := k.GetTotalStaking(ctx)
		if err != nil {
			panic(err)
		}

		broken := !total.Equal(positionSum)
		msg := ""
		if broken {
			msg = sdk.FormatInvariant(types.ModuleName, "total-staking",
				"total staking "+total.String()+" does not equal position sum "+positionSum.String()+"\n")
			return msg, broken
		}

		byDurationSum := math.ZeroInt()
		err = k.TotalStakingByDuration.Walk(ctx, nil, func(duration uint64, amount math.Int) (stop bool, err error) {
			byDurationSum = byDurationSum.Add(amount)

			sum, ok := positionSumByDuration[duration]
			if !ok {
				sum = math.ZeroInt()
			}

			if !amount.Equal(sum) {
				broken = true
				msg = sdk.FormatInvariant(types.ModuleName, "total-staking",
					"tier total does not equal the sum of its positions\n")
				return true, nil
			}
			return false, nil
		})
		if err != nil {
			panic(err)
		}

		if !broken && !byDurationSum.Equal(total) {
			broken = true
			msg = sdk.FormatInvariant(types.ModuleName, "total-staking",
				"tier totals "+byDurationSum.String()+" do not sum to total staking "+total.String()+"\n")
		}

		return msg, broken
	}
}
