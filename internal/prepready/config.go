package prepready

import (
	"errors"
	"fmt"
)

type OptionType string

const (
	OptionFixed  OptionType = "fixed"
	OptionRange  OptionType = "range"
	OptionCutoff OptionType = "cutoff"
)

const (
	MinPrepMinutes = 5
	MaxPrepMinutes = 720

	DefaultPrepMinutes = 45
	DefaultDayOffset   = 1
)

var (
	ErrInvalidConfig = errors.New("invalid prep ready config")
	ErrInvalidRange  = fmt.Errorf("%w: prep_time_max_minutes must be greater than prep_time_min_minutes", ErrInvalidConfig)
)

// Config describes how long a dish offer takes to prepare.
type Config struct {
	OptionType            OptionType `bson:"option_type" json:"option_type"`
	PrepTimeMinutes       int        `bson:"prep_time_minutes,omitempty" json:"prep_time_minutes,omitempty"`
	PrepTimeMinMinutes    int        `bson:"prep_time_min_minutes,omitempty" json:"prep_time_min_minutes,omitempty"`
	PrepTimeMaxMinutes    int        `bson:"prep_time_max_minutes,omitempty" json:"prep_time_max_minutes,omitempty"`
	CutoffTime            string     `bson:"cutoff_time,omitempty" json:"cutoff_time,omitempty"`
	BeforeCutoffReadyTime string     `bson:"before_cutoff_ready_time,omitempty" json:"before_cutoff_ready_time,omitempty"`
	AfterCutoffReadyTime  string     `bson:"after_cutoff_ready_time,omitempty" json:"after_cutoff_ready_time,omitempty"`
	// AfterCutoffDayOffset is kept for kitchens that skip more than one day after
	// cutoff. Computation currently always rolls over by one day.
	AfterCutoffDayOffset *int `bson:"after_cutoff_day_offset,omitempty" json:"after_cutoff_day_offset,omitempty"`
}

func DefaultConfig() Config {
	return Config{OptionType: OptionFixed, PrepTimeMinutes: DefaultPrepMinutes}
}

func (c Config) IsZero() bool {
	return c == Config{}
}

func (c Config) DayOffset() int {
	if c.AfterCutoffDayOffset == nil {
		return DefaultDayOffset
	}
	return *c.AfterCutoffDayOffset
}

// cutoffRule is the parsed form of a cutoff config.
type cutoffRule struct {
	cutoff      ClockTime
	beforeReady ClockTime
	afterReady  ClockTime
}

func (r cutoffRule) nextDayMode() bool {
	return r.beforeReady.Before(r.cutoff)
}

func (c Config) cutoffRule() (cutoffRule, error) {
	if c.CutoffTime == "" {
		return cutoffRule{}, fmt.Errorf("%w: cutoff_time is required", ErrInvalidConfig)
	}
	if c.BeforeCutoffReadyTime == "" {
		return cutoffRule{}, fmt.Errorf("%w: before_cutoff_ready_time is required", ErrInvalidConfig)
	}

	cutoff, err := ParseClockTime(c.CutoffTime)
	if err != nil {
		return cutoffRule{}, fmt.Errorf("cutoff_time: %w", err)
	}
	before, err := ParseClockTime(c.BeforeCutoffReadyTime)
	if err != nil {
		return cutoffRule{}, fmt.Errorf("before_cutoff_ready_time: %w", err)
	}

	after := before
	if c.AfterCutoffReadyTime != "" {
		after, err = ParseClockTime(c.AfterCutoffReadyTime)
		if err != nil {
			return cutoffRule{}, fmt.Errorf("after_cutoff_ready_time: %w", err)
		}
	}

	return cutoffRule{cutoff: cutoff, beforeReady: before, afterReady: after}, nil
}

// Validate reports every problem with c. Each joined error matches ErrInvalidConfig.
func Validate(c Config) error {
	var errs []error

	switch c.OptionType {
	case OptionFixed:
		if c.PrepTimeMinutes < MinPrepMinutes || c.PrepTimeMinutes > MaxPrepMinutes {
			errs = append(errs, fmt.Errorf("%w: prep_time_minutes must be between %d and %d", ErrInvalidConfig, MinPrepMinutes, MaxPrepMinutes))
		}
	case OptionRange:
		if c.PrepTimeMinMinutes < MinPrepMinutes {
			errs = append(errs, fmt.Errorf("%w: prep_time_min_minutes must be at least %d", ErrInvalidConfig, MinPrepMinutes))
		}
		if c.PrepTimeMaxMinutes > MaxPrepMinutes {
			errs = append(errs, fmt.Errorf("%w: prep_time_max_minutes cannot exceed %d", ErrInvalidConfig, MaxPrepMinutes))
		}
		if c.PrepTimeMaxMinutes <= c.PrepTimeMinMinutes {
			errs = append(errs, ErrInvalidRange)
		}
	case OptionCutoff:
		if _, err := c.cutoffRule(); err != nil {
			errs = append(errs, err)
		}
		if c.AfterCutoffDayOffset != nil && *c.AfterCutoffDayOffset < 0 {
			errs = append(errs, fmt.Errorf("%w: after_cutoff_day_offset cannot be negative", ErrInvalidConfig))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: option_type must be one of fixed, range, cutoff (got %q)", ErrInvalidConfig, c.OptionType))
	}

	return errors.Join(errs...)
}
