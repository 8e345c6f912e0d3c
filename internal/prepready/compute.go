package prepready

import (
	"math"
	"time"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/timezone"
)

// Result is the ready time computed for one order of one dish offer.
type Result struct {
	OptionType      OptionType `json:"option_type"`
	Timezone        string     `json:"timezone"`
	OrderTime       time.Time  `json:"order_time"`
	ReadyAt         time.Time  `json:"ready_at"`
	ReadyAtMin      *time.Time `json:"ready_at_min,omitempty"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	DisplayText     string     `json:"display_text"`
	IsRange         bool       `json:"is_range"`
	IsNextDay       bool       `json:"is_next_day"`
	BeforeCutoff    bool       `json:"before_cutoff"`

	// set for range configs
	MinMinutes int `json:"prep_time_min_minutes,omitempty"`
	MaxMinutes int `json:"prep_time_max_minutes,omitempty"`
	// set for cutoff configs
	ReadyTime string `json:"ready_time,omitempty"`
}

// Compute returns when an order placed at orderInstant will be ready. Cutoff rules
// are evaluated against the civil clock in zone.
func Compute(cfg Config, zone string, orderInstant time.Time) (Result, error) {
	res := Result{
		OptionType: cfg.OptionType,
		Timezone:   zone,
		OrderTime:  orderInstant.UTC(),
	}

	if err := Validate(cfg); err != nil {
		return Result{}, err
	}

	switch cfg.OptionType {
	case OptionFixed:
		res.ReadyAt = orderInstant.Add(minutes(cfg.PrepTimeMinutes)).UTC()

	case OptionRange:
		readyMin := orderInstant.Add(minutes(cfg.PrepTimeMinMinutes)).UTC()
		res.ReadyAt = orderInstant.Add(minutes(cfg.PrepTimeMaxMinutes)).UTC()
		res.ReadyAtMin = &readyMin
		res.IsRange = true
		res.MinMinutes = cfg.PrepTimeMinMinutes
		res.MaxMinutes = cfg.PrepTimeMaxMinutes

	case OptionCutoff:
		rule, err := cfg.cutoffRule()
		if err != nil {
			return Result{}, err
		}
		computeCutoff(&res, rule, zone, orderInstant)
	}

	res.PrepTimeMinutes = prepMinutes(orderInstant, res.ReadyAt)
	res.DisplayText = FormatResult(res, English)

	return res, nil
}

func computeCutoff(res *Result, rule cutoffRule, zone string, orderInstant time.Time) {
	loc := timezone.Location(zone)
	local := orderInstant.In(loc)
	year, month, day := local.Date()

	// time.Date normalizes day overflow and applies the offset in effect on that date
	at := func(dayOffset int, ct ClockTime) time.Time {
		return time.Date(year, month, day+dayOffset, ct.Hour, ct.Minute, 0, 0, loc).UTC()
	}

	if rule.nextDayMode() {
		res.ReadyAt = at(1, rule.beforeReady)
		res.ReadyTime = rule.beforeReady.String()
		res.IsNextDay = true
		res.BeforeCutoff = true
		return
	}

	orderMinutes := local.Hour()*60 + local.Minute()
	if orderMinutes < rule.cutoff.MinuteOfDay() {
		res.ReadyAt = at(0, rule.beforeReady)
		res.ReadyTime = rule.beforeReady.String()
		res.BeforeCutoff = true
		return
	}

	res.ReadyAt = at(1, rule.afterReady)
	res.ReadyTime = rule.afterReady.String()
	res.IsNextDay = true
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

func prepMinutes(from, to time.Time) int {
	diff := to.Sub(from)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Minutes()))
}

// Calculator binds Compute to a clock and to cook country codes.
type Calculator struct {
	now func() time.Time
}

func NewCalculator(now func() time.Time) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{now: now}
}

func (c *Calculator) Now() time.Time {
	return c.now()
}

// Compute resolves the cook's zone and evaluates cfg at the current instant.
func (c *Calculator) Compute(cfg Config, countryCode string) (Result, error) {
	return Compute(cfg, timezone.Resolve(countryCode), c.now())
}
