package keeper

import (
	"context"

	"github.com/initia-labs/lockstake/x/lockstake/types"
)

// SetParams sets the x/lockstake module parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	return k.Params.Set(ctx, params)
}

// GetParams returns the x/lockstake module parameters.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	return k.Params.Get(ctx)
}

// GetTier returns the tier configured for duration, or ErrInvalidDuration.
func (k Keeper) GetTier(ctx context.Context, duration uint64) (types.DurationTier, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.DurationTier{}, err
	}

	tier, found := params.FindTier(duration)
	if !found {
		return types.DurationTier{}, types.ErrInvalidDuration.Wrapf("duration %d", duration)
	}

	return tier, nil
}
