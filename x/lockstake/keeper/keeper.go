package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/initia-labs/lockstake/x/lockstake/types"
)

// Keeper of the lockstake store
type Keeper struct {
	storeService corestoretypes.KVStoreService

	poolKeeper types.StakingPoolKeeper

	// the address capable of executing a MsgUpdateParams message. Typically, this
	// should be the x/gov module account.
	authority string

	ac address.Codec

	Schema collections.Schema

	Params    collections.Item[types.Params]
	Positions collections.Map[collections.Triple[[]byte, uint64, uint64], types.StakePosition] // owner, duration, startTime

	TotalStaking           collections.Item[math.Int]
	TotalStakingByDuration collections.Map[uint64, math.Int]
	PenaltyPool            collections.Item[math.Int]

	RewardWeights        collections.Map[uint64, math.LegacyDec]
	PendingRewards       collections.Map[uint64, math.Int]
	LastDistributionTime collections.Item[uint64]
}

// NewKeeper creates a new lockstake Keeper instance
func NewKeeper(
	storeService corestoretypes.KVStoreService,
	poolKeeper types.StakingPoolKeeper,
	ac address.Codec,
	authority string,
) *Keeper {
	// ensure that authority is a valid acc address
	if _, err := ac.StringToBytes(authority); err != nil {
		panic("authority is not a valid acc address")
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := &Keeper{
		storeService: storeService,
		poolKeeper:   poolKeeper,
		authority:    authority,
		ac:           ac,

		Params:    collections.NewItem(sb, types.ParamsKey, "params", types.ParamsValue),
		Positions: collections.NewMap(sb, types.PositionsPrefix, "positions", collections.TripleKeyCodec(collections.BytesKey, collections.Uint64Key, collections.Uint64Key), types.StakePositionValue),

		TotalStaking:           collections.NewItem(sb, types.TotalStakingKey, "total_staking", sdk.IntValue),
		TotalStakingByDuration: collections.NewMap(sb, types.TotalStakingByDurationPrefix, "total_staking_by_duration", collections.Uint64Key, sdk.IntValue),
		PenaltyPool:            collections.NewItem(sb, types.PenaltyPoolKey, "penalty_pool", sdk.IntValue),

		RewardWeights:        collections.NewMap(sb, types.RewardWeightsPrefix, "reward_weights", collections.Uint64Key, sdk.LegacyDecValue),
		PendingRewards:       collections.NewMap(sb, types.PendingRewardsPrefix, "pending_rewards", collections.Uint64Key, sdk.IntValue),
		LastDistributionTime: collections.NewItem(sb, types.LastDistributionTimeKey, "last_distribution_time", collections.Uint64Value),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the x/lockstake module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// blockTime returns the injected clock of the current call in unix seconds.
func (k Keeper) blockTime(ctx context.Context) uint64 {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return uint64(sdkCtx.BlockTime().Unix())
}

// GetTotalStaking returns the aggregate staked amount across all positions.
func (k Keeper) GetTotalStaking(ctx context.Context) (math.Int, error) {
	total, err := k.TotalStaking.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	} else if err != nil {
		return math.Int{}, err
	}

	return total, nil
}

// GetTotalStakingByDuration returns the staked amount at one duration tier.
func (k Keeper) GetTotalStakingByDuration(ctx context.Context, duration uint64) (math.Int, error) {
	total, err := k.TotalStakingByDuration.Get(ctx, duration)
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	} else if err != nil {
		return math.Int{}, err
	}

	return total, nil
}

// GetPenaltyPool returns the accumulated early-unlock forfeits.
func (k Keeper) GetPenaltyPool(ctx context.Context) (math.Int, error) {
	pool, err := k.PenaltyPool.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	} else if err != nil {
		return math.Int{}, err
	}

	return pool, nil
}

// GetRewardWeight returns the cumulative reward weight of one duration tier.
func (k Keeper) GetRewardWeight(ctx context.Context, duration uint64) (math.LegacyDec, error) {
	weight, err := k.RewardWeights.Get(ctx, duration)
	if errors.Is(err, collections.ErrNotFound) {
		return math.LegacyZeroDec(), nil
	} else if err != nil {
		return math.LegacyDec{}, err
	}

	return weight, nil
}

// GetLastDistributionTime returns the last processed period boundary.
func (k Keeper) GetLastDistributionTime(ctx context.Context) (uint64, error) {
	last, err := k.LastDistributionTime.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}

	return last, nil
}
