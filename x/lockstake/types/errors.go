package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/lockstake module sentinel errors
var (
	ErrInvalidDuration        = errorsmod.Register(ModuleName, 2, "no duration tier is configured for the requested duration")
	ErrEmptyStakeAmount       = errorsmod.Register(ModuleName, 3, "stake amount must be positive")
	ErrPositionNotFound       = errorsmod.Register(ModuleName, 4, "no stake position for (owner, duration, start time) tuple")
	ErrExceedingUnstakeAmount = errorsmod.Register(ModuleName, 5, "unstake amount exceeds staked amount")
	ErrLockNotMatured         = errorsmod.Register(ModuleName, 6, "lock has not matured")
	ErrShorterDuration        = errorsmod.Register(ModuleName, 7, "relock duration cannot be shorter than the current one")
	ErrUndefinedRate          = errorsmod.Register(ModuleName, 8, "conversion rate is undefined for zero pool total")
	ErrExcessiveClaimed       = errorsmod.Register(ModuleName, 9, "claimed amount exceeds computed backing value")
	ErrNumericOverflow        = errorsmod.Register(ModuleName, 10, "arithmetic overflow")
	ErrRewardWeightRegression = errorsmod.Register(ModuleName, 11, "cumulative reward weight decreased")
	ErrInvalidStakingTotal    = errorsmod.Register(ModuleName, 12, "staking total would become negative")
)
