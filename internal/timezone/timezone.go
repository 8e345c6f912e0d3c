package timezone

import (
	"strings"
	"time"
	_ "time/tzdata"
)

// DefaultZone is used for unknown or missing country codes.
const DefaultZone = "Asia/Riyadh"

var zoneByCountry = map[string]string{
	"EG": "Africa/Cairo",
	"SA": "Asia/Riyadh",
	"AE": "Asia/Dubai",
	"KW": "Asia/Kuwait",
	"QA": "Asia/Qatar",
}

// populated once at init, read-only afterwards
var locations = map[string]*time.Location{}

func init() {
	for _, zone := range zoneByCountry {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			panic("timezone: failed to load " + zone + ": " + err.Error())
		}
		locations[zone] = loc
	}
}

// Civil is an instant decomposed into calendar and clock fields as observed in a zone.
type Civil struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	Second  int
	Weekday time.Weekday
}

func (c Civil) MinutesSinceMidnight() int {
	return c.Hour*60 + c.Minute
}

// Resolve maps a two-letter country code to an IANA zone id. It never fails.
func Resolve(countryCode string) string {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if zone, ok := zoneByCountry[code]; ok {
		return zone
	}
	return DefaultZone
}

// Location returns the rules for zone, falling back to DefaultZone if zone cannot be loaded.
func Location(zone string) *time.Location {
	if loc, ok := locations[zone]; ok {
		return loc
	}
	loc, err := time.LoadLocation(zone)
	if err != nil || zone == "" {
		return locations[DefaultZone]
	}
	return loc
}

func CivilAt(t time.Time, zone string) Civil {
	local := t.In(Location(zone))
	return Civil{
		Year:    local.Year(),
		Month:   local.Month(),
		Day:     local.Day(),
		Hour:    local.Hour(),
		Minute:  local.Minute(),
		Second:  local.Second(),
		Weekday: local.Weekday(),
	}
}

// NowIn reads the system clock on every call.
func NowIn(zone string) Civil {
	return CivilAt(time.Now(), zone)
}

func MinutesSinceMidnight(zone string) int {
	return NowIn(zone).MinutesSinceMidnight()
}
