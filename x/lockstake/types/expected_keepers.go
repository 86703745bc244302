package types

import (
	context "context"
)

// StakingPoolKeeper supplies point-in-time totals of the external pool backing
// the derivative token. Snapshots are read per call and never cached by the
// module.
type StakingPoolKeeper interface {
	PoolSnapshot(ctx context.Context) (PoolSnapshot, error)
}
