package types

import (
	context "context"

	"cosmossdk.io/core/address"
	"cosmossdk.io/math"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgServer is the server API for the lockstake Msg service.
type MsgServer interface {
	Stake(ctx context.Context, msg *MsgStake) (*MsgStakeResponse, error)
	Unstake(ctx context.Context, msg *MsgUnstake) (*MsgUnstakeResponse, error)
	Relock(ctx context.Context, msg *MsgRelock) (*MsgRelockResponse, error)
	Claim(ctx context.Context, msg *MsgClaim) (*MsgClaimResponse, error)
	ClaimAll(ctx context.Context, msg *MsgClaimAll) (*MsgClaimAllResponse, error)
	ProvideRewards(ctx context.Context, msg *MsgProvideRewards) (*MsgProvideRewardsResponse, error)
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgStake opens a lock at the given duration tier, or tops up the position
// opened by the same owner at the same tier in the same block.
type MsgStake struct {
	Sender   string   `json:"sender"`
	Amount   math.Int `json:"amount"`
	Duration uint64   `json:"duration"`
}

type MsgStakeResponse struct {
	StartTime uint64 `json:"start_time"`
}

// Validate performs basic MsgStake message validation.
func (msg MsgStake) Validate(ac address.Codec) error {
	if _, err := ac.StringToBytes(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrEmptyStakeAmount
	}

	return nil
}

// MsgUnstake withdraws part or all of a position. Before maturity the
// withdrawal is an early unlock and the tier penalty applies.
type MsgUnstake struct {
	Sender    string   `json:"sender"`
	Duration  uint64   `json:"duration"`
	StartTime uint64   `json:"start_time"`
	Amount    math.Int `json:"amount"`
}

type MsgUnstakeResponse struct {
	Returned math.Int `json:"returned"`
	Penalty  math.Int `json:"penalty"`
	Rewards  math.Int `json:"rewards"`
}

// Validate performs basic MsgUnstake message validation.
func (msg MsgUnstake) Validate(ac address.Codec) error {
	if _, err := ac.StringToBytes(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrEmptyStakeAmount
	}

	return nil
}

// MsgRelock moves a matured position into an equal-or-longer tier restarting
// at the current block time, optionally adding fresh funds.
type MsgRelock struct {
	Sender       string   `json:"sender"`
	FromDuration uint64   `json:"from_duration"`
	StartTime    uint64   `json:"start_time"`
	ToDuration   uint64   `json:"to_duration"`
	AddAmount    math.Int `json:"add_amount"`
}

type MsgRelockResponse struct {
	NewStartTime uint64   `json:"new_start_time"`
	Rewards      math.Int `json:"rewards"`
}

// Validate performs basic MsgRelock message validation.
func (msg MsgRelock) Validate(ac address.Codec) error {
	if _, err := ac.StringToBytes(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if msg.ToDuration < msg.FromDuration {
		return ErrShorterDuration.Wrapf("from %d to %d", msg.FromDuration, msg.ToDuration)
	}

	if msg.AddAmount.IsNil() || msg.AddAmount.IsNegative() {
		return ErrEmptyStakeAmount.Wrap("add amount must not be negative")
	}

	return nil
}

// MsgClaim settles and pays out the rewards accrued by one position.
type MsgClaim struct {
	Sender    string `json:"sender"`
	Duration  uint64 `json:"duration"`
	StartTime uint64 `json:"start_time"`
}

type MsgClaimResponse struct {
	Rewards math.Int `json:"rewards"`
}

// Validate performs basic MsgClaim message validation.
func (msg MsgClaim) Validate(ac address.Codec) error {
	if _, err := ac.StringToBytes(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	return nil
}

// MsgClaimAll settles and pays out the rewards accrued by every open position
// of the sender.
type MsgClaimAll struct {
	Sender string `json:"sender"`
}

type MsgClaimAllResponse struct {
	Rewards math.Int `json:"rewards"`
}

// Validate performs basic MsgClaimAll message validation.
func (msg MsgClaimAll) Validate(ac address.Codec) error {
	if _, err := ac.StringToBytes(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	return nil
}

// MsgProvideRewards queues derivative-denominated rewards for the next
// distribution.
type MsgProvideRewards struct {
	Depositor string   `json:"depositor"`
	Amount    math.Int `json:"amount"`
}

type MsgProvideRewardsResponse struct{}

// Validate performs basic MsgProvideRewards message validation.
func (msg MsgProvideRewards) Validate(ac address.Codec) error {
	if _, err := ac.StringToBytes(msg.Depositor); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid depositor address: %s", err)
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrEmptyStakeAmount.Wrap("reward amount must be positive")
	}

	return nil
}

// MsgUpdateParams replaces the module parameters. Only the module authority
// may execute it.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// Validate performs basic MsgUpdateParams message validation.
func (msg MsgUpdateParams) Validate(ac address.Codec) error {
	if _, err := ac.StringToBytes(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address: %s", err)
	}

	return msg.Params.Validate()
}
