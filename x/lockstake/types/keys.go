package types

const (
	// ModuleName is the name of the lockstake module
	ModuleName = "lockstake"

	// StoreKey is the string store representation
	StoreKey = ModuleName

	// QuerierRoute is the querier route for the lockstake module
	QuerierRoute = ModuleName

	// RouterKey is the msg router key for the lockstake module
	RouterKey = ModuleName
)

var (
	// Keys for store prefixes
	ParamsKey = []byte{0x11} // key for parameters for module x/lockstake

	PositionsPrefix              = []byte{0x21} // prefix for each key to a stake position (owner, duration, start time)
	TotalStakingKey              = []byte{0x22} // key for the aggregate staked amount
	TotalStakingByDurationPrefix = []byte{0x23} // prefix for per-tier staked amounts
	PenaltyPoolKey               = []byte{0x24} // key for accumulated early-unlock forfeits

	RewardWeightsPrefix     = []byte{0x31} // prefix for cumulative reward weights, one per tier
	PendingRewardsPrefix    = []byte{0x32} // prefix for queued rewards by distribution period index
	LastDistributionTimeKey = []byte{0x33} // key for the last processed period boundary
)
