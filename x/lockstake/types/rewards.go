package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// rewardScale is the fixed-point factor of the cumulative reward weights,
// 10^LegacyPrecision.
var rewardScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(math.LegacyPrecision), nil)

// ComputeWeightDeltas splits reward across duration tiers in proportion to
// multiplier-weighted stake and converts each tier's share into a per-unit
// weight delta. Both divisions floor, so the distributed total can never
// exceed reward; the caller decides what happens to the remainder. Tiers with
// no stake receive no delta and their would-be share stays with the caller.
func ComputeWeightDeltas(reward math.Int, tiers []DurationTier, stakedByDuration func(duration uint64) math.Int) (deltas map[uint64]math.LegacyDec, distributed math.Int, err error) {
	weightedTotal := new(big.Int)
	for _, tier := range tiers {
		staked := stakedByDuration(tier.Duration)
		weighted := new(big.Int).Mul(staked.BigInt(), new(big.Int).SetUint64(tier.RewardMultiplier))
		weightedTotal.Add(weightedTotal, weighted)
	}

	deltas = make(map[uint64]math.LegacyDec, len(tiers))
	distributed = math.ZeroInt()
	if weightedTotal.Sign() == 0 {
		return deltas, distributed, nil
	}

	for _, tier := range tiers {
		staked := stakedByDuration(tier.Duration)
		if !staked.IsPositive() {
			continue
		}

		// tier share in token units
		share := new(big.Int).Mul(reward.BigInt(), staked.BigInt())
		share.Mul(share, new(big.Int).SetUint64(tier.RewardMultiplier))
		share.Quo(share, weightedTotal)
		if share.BitLen() > math.MaxBitLen {
			return nil, math.Int{}, ErrNumericOverflow.Wrapf("tier %d share of reward %s", tier.Duration, reward)
		}

		// per-unit-stake weight delta at reward weight precision
		delta := new(big.Int).Mul(share, rewardScale)
		delta.Quo(delta, staked.BigInt())
		if delta.BitLen() > math.MaxBitLen {
			return nil, math.Int{}, ErrNumericOverflow.Wrapf("tier %d weight delta", tier.Duration)
		}

		deltas[tier.Duration] = math.LegacyNewDecFromBigIntWithPrec(delta, math.LegacyPrecision)
		distributed = distributed.Add(math.NewIntFromBigInt(share))
	}

	return deltas, distributed, nil
}

// ClaimableRewards values the weight a position of size amount accrued between
// its entry stamp and the current cumulative weight, floored to token units.
func ClaimableRewards(amount math.Int, entryWeight, currentWeight math.LegacyDec) (math.Int, error) {
	if currentWeight.LT(entryWeight) {
		return math.Int{}, ErrRewardWeightRegression.Wrapf("current %s below entry %s", currentWeight, entryWeight)
	}

	rewards := new(big.Int).Mul(amount.BigInt(), currentWeight.Sub(entryWeight).BigInt())
	rewards.Quo(rewards, rewardScale)
	if rewards.BitLen() > math.MaxBitLen {
		return math.Int{}, ErrNumericOverflow.Wrapf("valuing weight accrued by %s staked", amount)
	}

	return math.NewIntFromBigInt(rewards), nil
}
