package types

// lockstake module event types
const (
	EventTypeStake          = "stake"
	EventTypeUnstake        = "unstake"
	EventTypeRelock         = "relock"
	EventTypeClaim          = "claim"
	EventTypeProvideRewards = "provide_rewards"
	EventTypeDistribute     = "distribute"

	AttributeKeyOwner        = "owner"
	AttributeKeyDuration     = "duration"
	AttributeKeyFromDuration = "from_duration"
	AttributeKeyToDuration   = "to_duration"
	AttributeKeyStartTime    = "start_time"
	AttributeKeyPenalty      = "penalty"
	AttributeKeyReturned     = "returned"
	AttributeKeyRewards      = "rewards"
	AttributeKeyResidual     = "residual"
	AttributeValueCategory   = ModuleName
)
