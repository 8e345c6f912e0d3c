package prepready

import (
	"fmt"
	"regexp"
	"strconv"
)

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ClockTime is a cook-local time of day.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime accepts "H:MM" and "HH:MM" in 24h form.
func ParseClockTime(s string) (ClockTime, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return ClockTime{}, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidConfig, s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return ClockTime{Hour: hour, Minute: minute}, nil
}

func (c ClockTime) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) Before(other ClockTime) bool {
	return c.MinuteOfDay() < other.MinuteOfDay()
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
