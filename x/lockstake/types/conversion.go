package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// ConvertTokens converts amount denominated in token A into token B units at
// the pooled rate totalB/totalA, flooring the division. The product is taken
// at arbitrary precision, so the only overflow possible is the narrowing of
// the quotient back to math.Int.
func ConvertTokens(amount, totalA, totalB math.Int) (math.Int, error) {
	if !totalA.IsPositive() {
		return math.Int{}, ErrUndefinedRate.Wrapf("total supply is %s", totalA)
	}

	converted := new(big.Int).Mul(amount.BigInt(), totalB.BigInt())
	converted.Quo(converted, totalA.BigInt())
	if converted.BitLen() > math.MaxBitLen {
		return math.Int{}, ErrNumericOverflow.Wrapf("converting %s at rate %s/%s", amount, totalB, totalA)
	}

	return math.NewIntFromBigInt(converted), nil
}

// Claimable returns the derivative-denominated rewards currently backing
// derivativeAmount: the pooled base value it withdraws to, less the base
// principal, converted back to derivative units and reduced by what was
// already claimed. A claimed total larger than the computed backing is an
// accounting inconsistency and fails hard instead of clamping to zero.
func Claimable(derivativeAmount, baseAmount, totalDerivative, totalBase, claimed math.Int) (math.Int, error) {
	value, err := ConvertTokens(derivativeAmount, totalDerivative, totalBase)
	if err != nil {
		return math.Int{}, err
	}

	// no growth over principal means nothing to claim
	surplus := value.Sub(baseAmount)
	if !surplus.IsPositive() {
		surplus = math.ZeroInt()
	}

	backing, err := ConvertTokens(surplus, totalBase, totalDerivative)
	if err != nil {
		return math.Int{}, err
	}

	if claimed.GT(backing) {
		return math.Int{}, ErrExcessiveClaimed.Wrapf("claimed %s exceeds backing %s", claimed, backing)
	}

	return backing.Sub(claimed), nil
}

// PenaltySplit splits an early-unlocked amount into the part returned to the
// user, floor(amount * (10000 - penaltyBps) / 10000), and the forfeited
// remainder.
func PenaltySplit(amount math.Int, penaltyBps uint64) (returned, forfeited math.Int) {
	kept := new(big.Int).Mul(amount.BigInt(), big.NewInt(int64(BpsDenominator-penaltyBps)))
	kept.Quo(kept, big.NewInt(BpsDenominator))

	returned = math.NewIntFromBigInt(kept)
	forfeited = amount.Sub(returned)
	return returned, forfeited
}
