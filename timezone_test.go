package loggio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// hasZoneDB reports whether the platform zone database is usable.
// CI images occasionally ship without tzdata.
func hasZoneDB() bool {
	_, err := time.LoadLocation("America/New_York")
	return err == nil
}

func TestIsValidTimezone(t *testing.T) {
	assert.False(t, IsValidTimezone(""))
	assert.False(t, IsValidTimezone("Local"))
	assert.False(t, IsValidTimezone("Mars/Phobos"))
	assert.False(t, IsValidTimezone("not a zone"))

	assert.True(t, IsValidTimezone("UTC"))

	if hasZoneDB() {
		assert.True(t, IsValidTimezone("America/New_York"))
		assert.True(t, IsValidTimezone("Asia/Tokyo"))
		assert.True(t, IsValidTimezone("Europe/London"))
	}
}

func TestAvailableTimezones(t *testing.T) {
	zones := AvailableTimezones()
	if len(zones) == 0 {
		t.Skip("no zoneinfo database on this system")
	}

	seen := make(map[string]struct{}, len(zones))
	for i, zone := range zones {
		assert.True(t, IsValidTimezone(zone), "zone %q should resolve", zone)
		if i > 0 {
			assert.Less(t, zones[i-1], zone, "zones should be sorted without duplicates")
		}
		seen[zone] = struct{}{}
	}

	assert.Contains(t, seen, "UTC")
	assert.NotContains(t, seen, "posix/UTC")
	assert.NotContains(t, seen, "zone.tab")
	assert.NotContains(t, seen, "leapseconds")
}
