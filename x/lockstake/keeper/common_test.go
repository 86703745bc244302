package keeper_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/core/address"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	codecaddress "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/initia-labs/lockstake/x/lockstake/keeper"
	"github.com/initia-labs/lockstake/x/lockstake/types"
)

var genesisTime = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

var addrs = []sdk.AccAddress{
	sdk.AccAddress(bytes.Repeat([]byte{1}, 20)),
	sdk.AccAddress(bytes.Repeat([]byte{2}, 20)),
	sdk.AccAddress(bytes.Repeat([]byte{3}, 20)),
}

// fakePoolKeeper serves a mutable pool snapshot, defaulting to a 1:1 rate.
type fakePoolKeeper struct {
	snapshot types.PoolSnapshot
}

func (f *fakePoolKeeper) PoolSnapshot(_ context.Context) (types.PoolSnapshot, error) {
	return f.snapshot, nil
}

type testInput struct {
	Ctx          sdk.Context
	Keeper       *keeper.Keeper
	PoolKeeper   *fakePoolKeeper
	AddressCodec address.Codec
	Authority    string
}

func createTestInput(t *testing.T) testInput {
	t.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	ctx := testutil.DefaultContextWithKeys(
		map[string]*storetypes.KVStoreKey{
			types.StoreKey: storeKey,
		},
		map[string]*storetypes.TransientStoreKey{},
		map[string]*storetypes.MemoryStoreKey{},
	).WithBlockTime(genesisTime)

	ac := codecaddress.NewBech32Codec("init")
	authority, err := ac.BytesToString(authtypes.NewModuleAddress(govtypes.ModuleName))
	require.NoError(t, err)

	poolKeeper := &fakePoolKeeper{
		snapshot: types.PoolSnapshot{
			TotalShares:  math.NewInt(1_000_000),
			TotalDeposit: math.NewInt(1_000_000),
		},
	}

	k := keeper.NewKeeper(runtime.NewKVStoreService(storeKey), poolKeeper, ac, authority)

	genesis := types.DefaultGenesisState()
	genesis.LastDistributionTime = uint64(genesisTime.Unix())
	require.NoError(t, k.InitGenesis(ctx, genesis))

	return testInput{
		Ctx:          ctx,
		Keeper:       k,
		PoolKeeper:   poolKeeper,
		AddressCodec: ac,
		Authority:    authority,
	}
}

func advanceTime(ctx sdk.Context, secs uint64) sdk.Context {
	return ctx.WithBlockTime(ctx.BlockTime().Add(time.Duration(secs) * time.Second))
}

func mustAddrStr(t *testing.T, ac address.Codec, addr sdk.AccAddress) string {
	t.Helper()

	str, err := ac.BytesToString(addr)
	require.NoError(t, err)
	return str
}

func requireInvariants(t *testing.T, ctx sdk.Context, k *keeper.Keeper) {
	t.Helper()

	msg, broken := keeper.AllInvariants(*k)(ctx)
	require.False(t, broken, msg)
}
