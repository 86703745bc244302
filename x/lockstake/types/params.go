package types

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pkg/errors"
)

// BpsDenominator is the denominator for basis-point quantities.
const BpsDenominator = 10000

// Default parameter values
const (
	OneDay = uint64(86400)

	DefaultDistributionPeriod    = 8 * OneDay       // 8 days
	DefaultDistributionTolerance = uint64(6 * 3600) // 6 hours
)

// DefaultTiers returns the reference tier table. The zero-duration tier is
// mandatory; it carries no lock, no penalty and the base multiplier.
func DefaultTiers() []DurationTier {
	return []DurationTier{
		{Duration: 0, RewardMultiplier: 1, EarlyUnlockPenaltyBps: 0},
		{Duration: 30 * OneDay, RewardMultiplier: 2, EarlyUnlockPenaltyBps: 5000},
		{Duration: 90 * OneDay, RewardMultiplier: 3, EarlyUnlockPenaltyBps: 5000},
		{Duration: 180 * OneDay, RewardMultiplier: 4, EarlyUnlockPenaltyBps: 5000},
	}
}

// DurationTier is one configured lock length with its reward multiplier and
// early-unlock penalty.
type DurationTier struct {
	Duration              uint64 `json:"duration" yaml:"duration"`
	RewardMultiplier      uint64 `json:"reward_multiplier" yaml:"reward_multiplier"`
	EarlyUnlockPenaltyBps uint64 `json:"early_unlock_penalty_bps" yaml:"early_unlock_penalty_bps"`
}

// Params defines the set of lockstake parameters.
type Params struct {
	Tiers                 []DurationTier `json:"tiers" yaml:"tiers"`
	DistributionPeriod    uint64         `json:"distribution_period" yaml:"distribution_period"`
	DistributionTolerance uint64         `json:"distribution_tolerance" yaml:"distribution_tolerance"`
}

func NewParams(tiers []DurationTier, distributionPeriod, distributionTolerance uint64) Params {
	return Params{
		Tiers:                 tiers,
		DistributionPeriod:    distributionPeriod,
		DistributionTolerance: distributionTolerance,
	}
}

// DefaultParams returns default lockstake parameters
func DefaultParams() Params {
	return Params{
		Tiers:                 DefaultTiers(),
		DistributionPeriod:    DefaultDistributionPeriod,
		DistributionTolerance: DefaultDistributionTolerance,
	}
}

// String returns a human readable string representation of the parameters.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

// FindTier looks up the tier configured for duration.
func (p Params) FindTier(duration uint64) (DurationTier, bool) {
	for _, tier := range p.Tiers {
		if tier.Duration == duration {
			return tier, true
		}
	}

	return DurationTier{}, false
}

// Validate performs basic validation on lockstake parameters
func (p Params) Validate() error {
	if err := validateTiers(p.Tiers); err != nil {
		return errors.Wrap(err, "invalid tiers")
	}

	if err := validateDistributionPeriod(p.DistributionPeriod); err != nil {
		return errors.Wrap(err, "invalid distribution period")
	}

	if err := validateDistributionTolerance(p.DistributionTolerance, p.DistributionPeriod); err != nil {
		return errors.Wrap(err, "invalid distribution tolerance")
	}

	return nil
}

func validateTiers(tiers []DurationTier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("at least one duration tier is required")
	}

	if tiers[0].Duration != 0 {
		return fmt.Errorf("the zero-duration tier is required")
	}

	if tiers[0].RewardMultiplier != 1 || tiers[0].EarlyUnlockPenaltyBps != 0 {
		return fmt.Errorf("the zero-duration tier must have multiplier 1 and no penalty")
	}

	for i, tier := range tiers {
		if tier.RewardMultiplier == 0 {
			return fmt.Errorf("tier %d: reward multiplier must be at least 1", i)
		}

		if tier.EarlyUnlockPenaltyBps > BpsDenominator {
			return fmt.Errorf("tier %d: penalty %d exceeds %d bps", i, tier.EarlyUnlockPenaltyBps, BpsDenominator)
		}

		if i == 0 {
			continue
		}

		if tier.Duration <= tiers[i-1].Duration {
			return fmt.Errorf("tier %d: durations must be strictly increasing", i)
		}

		if tier.RewardMultiplier < tiers[i-1].RewardMultiplier {
			return fmt.Errorf("tier %d: reward multipliers must be non-decreasing with duration", i)
		}
	}

	return nil
}

func validateDistributionPeriod(period uint64) error {
	if period == 0 {
		return fmt.Errorf("DistributionPeriod must be bigger than 0")
	}

	return nil
}

func validateDistributionTolerance(tolerance, period uint64) error {
	if tolerance >= period {
		return fmt.Errorf("DistributionTolerance must be smaller than DistributionPeriod")
	}

	return nil
}
