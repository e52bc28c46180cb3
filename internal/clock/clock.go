package clock

import "time"

// DefaultTimezone is the agency's home zone, used until Configure runs
// and whenever a configured name fails to load.
const DefaultTimezone = "Europe/Kyiv"

var agencyLocation = mustLoad(DefaultTimezone)

func mustLoad(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Configure pins the zone every subsequent Now call reports in. It runs
// once at startup, before any validation happens.
func Configure(tz string) {
	agencyLocation = Location(tz)
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone on a bad name.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return mustLoad(DefaultTimezone)
}

// Now returns the current instant in the configured agency zone.
func Now() time.Time {
	return time.Now().In(agencyLocation)
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
