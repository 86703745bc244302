package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/initia-labs/lockstake/x/lockstake/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the lockstake MsgServer
// interface for the provided Keeper.
func NewMsgServerImpl(k *Keeper) types.MsgServer {
	return &msgServer{Keeper: k}
}

var _ types.MsgServer = msgServer{}

// Stake opens a lock at the requested duration tier starting at the current
// block time, or tops up the position the sender opened at the same tier in
// the same block.
func (ms msgServer) Stake(ctx context.Context, msg *types.MsgStake) (*types.MsgStakeResponse, error) {
	if err := msg.Validate(ms.ac); err != nil {
		return nil, err
	}

	owner, err := ms.ac.StringToBytes(msg.Sender)
	if err != nil {
		return nil, sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if _, err := ms.MaybeDistribute(ctx); err != nil {
		return nil, err
	}

	startTime := ms.blockTime(ctx)
	if err := ms.OpenOrIncrease(ctx, owner, msg.Duration, startTime, msg.Amount); err != nil {
		return nil, err
	}

	telemetry.IncrCounter(1, types.ModuleName, "stake")

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeStake,
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyDuration, strconv.FormatUint(msg.Duration, 10)),
			sdk.NewAttribute(types.AttributeKeyStartTime, strconv.FormatUint(startTime, 10)),
			sdk.NewAttribute(sdk.AttributeKeyAmount, msg.Amount.String()),
		),
	})

	return &types.MsgStakeResponse{StartTime: startTime}, nil
}

// Unstake settles a position's rewards and withdraws part or all of its
// amount, applying the tier's early-unlock penalty before maturity.
func (ms msgServer) Unstake(ctx context.Context, msg *types.MsgUnstake) (*types.MsgUnstakeResponse, error) {
	if err := msg.Validate(ms.ac); err != nil {
		return nil, err
	}

	owner, err := ms.ac.StringToBytes(msg.Sender)
	if err != nil {
		return nil, sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if _, err := ms.MaybeDistribute(ctx); err != nil {
		return nil, err
	}

	rewards, err := ms.ClaimRewards(ctx, owner, msg.Duration, msg.StartTime)
	if err != nil {
		return nil, err
	}

	returned, penalty, err := ms.Withdraw(ctx, owner, msg.Duration, msg.StartTime, msg.Amount)
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounter(1, types.ModuleName, "unstake")

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUnstake,
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyDuration, strconv.FormatUint(msg.Duration, 10)),
			sdk.NewAttribute(types.AttributeKeyStartTime, strconv.FormatUint(msg.StartTime, 10)),
			sdk.NewAttribute(sdk.AttributeKeyAmount, msg.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyReturned, returned.String()),
			sdk.NewAttribute(types.AttributeKeyPenalty, penalty.String()),
			sdk.NewAttribute(types.AttributeKeyRewards, rewards.String()),
		),
	})

	return &types.MsgUnstakeResponse{Returned: returned, Penalty: penalty, Rewards: rewards}, nil
}

// Relock extends a matured position into an equal-or-longer tier restarting at
// the current block time, settling its rewards first.
func (ms msgServer) Relock(ctx context.Context, msg *types.MsgRelock) (*types.MsgRelockResponse, error) {
	if err := msg.Validate(ms.ac); err != nil {
		return nil, err
	}

	owner, err := ms.ac.StringToBytes(msg.Sender)
	if err != nil {
		return nil, sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if _, err := ms.MaybeDistribute(ctx); err != nil {
		return nil, err
	}

	rewards, err := ms.ClaimRewards(ctx, owner, msg.FromDuration, msg.StartTime)
	if err != nil {
		return nil, err
	}

	newStartTime, err := ms.Keeper.Relock(ctx, owner, msg.FromDuration, msg.StartTime, msg.ToDuration, msg.AddAmount)
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounter(1, types.ModuleName, "relock")

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeRelock,
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyFromDuration, strconv.FormatUint(msg.FromDuration, 10)),
			sdk.NewAttribute(types.AttributeKeyToDuration, strconv.FormatUint(msg.ToDuration, 10)),
			sdk.NewAttribute(types.AttributeKeyStartTime, strconv.FormatUint(newStartTime, 10)),
			sdk.NewAttribute(sdk.AttributeKeyAmount, msg.AddAmount.String()),
			sdk.NewAttribute(types.AttributeKeyRewards, rewards.String()),
		),
	})

	return &types.MsgRelockResponse{NewStartTime: newStartTime, Rewards: rewards}, nil
}

// Claim settles and pays out the rewards accrued by one position.
func (ms msgServer) Claim(ctx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	if err := msg.Validate(ms.ac); err != nil {
		return nil, err
	}

	owner, err := ms.ac.StringToBytes(msg.Sender)
	if err != nil {
		return nil, sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if _, err := ms.MaybeDistribute(ctx); err != nil {
		return nil, err
	}

	rewards, err := ms.ClaimRewards(ctx, owner, msg.Duration, msg.StartTime)
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounter(1, types.ModuleName, "claim")

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeClaim,
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyDuration, strconv.FormatUint(msg.Duration, 10)),
			sdk.NewAttribute(types.AttributeKeyStartTime, strconv.FormatUint(msg.StartTime, 10)),
			sdk.NewAttribute(types.AttributeKeyRewards, rewards.String()),
		),
	})

	return &types.MsgClaimResponse{Rewards: rewards}, nil
}

// ClaimAll settles and pays out the rewards accrued by every open position of
// the sender.
func (ms msgServer) ClaimAll(ctx context.Context, msg *types.MsgClaimAll) (*types.MsgClaimAllResponse, error) {
	if err := msg.Validate(ms.ac); err != nil {
		return nil, err
	}

	owner, err := ms.ac.StringToBytes(msg.Sender)
	if err != nil {
		return nil, sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if _, err := ms.MaybeDistribute(ctx); err != nil {
		return nil, err
	}

	rewards, err := ms.ClaimAllRewards(ctx, owner)
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounter(1, types.ModuleName, "claim_all")

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeClaim,
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyRewards, rewards.String()),
		),
	})

	return &types.MsgClaimAllResponse{Rewards: rewards}, nil
}

// ProvideRewards queues derivative-denominated rewards for the next
// distribution.
func (ms msgServer) ProvideRewards(ctx context.Context, msg *types.MsgProvideRewards) (*types.MsgProvideRewardsResponse, error) {
	if err := msg.Validate(ms.ac); err != nil {
		return nil, err
	}

	if _, err := ms.MaybeDistribute(ctx); err != nil {
		return nil, err
	}

	if err := ms.AddPendingRewards(ctx, msg.Amount); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeProvideRewards,
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Depositor),
			sdk.NewAttribute(sdk.AttributeKeyAmount, msg.Amount.String()),
		),
	})

	return &types.MsgProvideRewardsResponse{}, nil
}

// UpdateParams implements the authority-gated parameter update.
func (ms msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.Validate(ms.ac); err != nil {
		return nil, err
	}

	if ms.authority != msg.Authority {
		return nil, errorsmod.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.authority, msg.Authority)
	}

	if err := ms.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
