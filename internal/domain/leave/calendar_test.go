package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWorkingDay_Weekdays(t *testing.T) {
	// Mon Jan 8 through Fri Jan 12, 2024
	for d := 8; d <= 12; d++ {
		assert.True(t, IsWorkingDay(date(2024, time.January, d)), "Jan %d 2024 is a weekday", d)
	}
}

func TestIsWorkingDay_Sundays(t *testing.T) {
	for _, d := range []int{7, 14, 21, 28} {
		assert.False(t, IsWorkingDay(date(2024, time.January, d)), "Jan %d 2024 is a Sunday", d)
	}
}

func TestIsWorkingDay_Saturdays(t *testing.T) {
	cases := []struct {
		day     time.Time
		working bool
	}{
		// January 2024 Saturdays: 6, 13, 20, 27
		{date(2024, time.January, 6), true},   // 1st Saturday
		{date(2024, time.January, 13), false}, // falls in 8..14
		{date(2024, time.January, 20), true},  // 3rd Saturday
		{date(2024, time.January, 27), false}, // falls in 22..28

		// Boundary days of the buckets
		{date(2025, time.February, 8), false},  // Saturday on the 8th
		{date(2024, time.June, 1), true},       // Saturday on the 1st
		{date(2024, time.June, 8), false},      // Saturday on the 8th
		{date(2024, time.June, 15), true},      // Saturday on the 15th, outside both buckets
		{date(2024, time.June, 22), false},     // Saturday on the 22nd
		{date(2024, time.June, 29), true},      // 5th Saturday, past the 28th
		{date(2024, time.August, 31), true},    // Saturday on the 31st
	}

	for _, c := range cases {
		assert.Equal(t, c.working, IsWorkingDay(c.day), "%s", c.day.Format("2006-01-02"))
	}
}

func TestCountWorkingDays_January2024(t *testing.T) {
	// 31 days, minus 4 Sundays, minus Saturdays on the 13th and 27th.
	got := CountWorkingDays(date(2024, time.January, 1), date(2024, time.January, 31))
	assert.Equal(t, 25, got)
}

func TestCountWorkingDays_SingleDay(t *testing.T) {
	assert.Equal(t, 1, CountWorkingDays(date(2024, time.January, 8), date(2024, time.January, 8)))
	assert.Equal(t, 0, CountWorkingDays(date(2024, time.January, 7), date(2024, time.January, 7)))
}

func TestCountWorkingDays_DegenerateRange(t *testing.T) {
	assert.Equal(t, 0, CountWorkingDays(date(2024, time.January, 31), date(2024, time.January, 1)))
}

func TestCountWorkingDays_AcrossMonths(t *testing.T) {
	// Dec 30 2024 (Mon) .. Jan 3 2025 (Fri): five weekdays, no Saturdays or
	// Sundays inside the range.
	got := CountWorkingDays(date(2024, time.December, 30), date(2025, time.January, 3))
	assert.Equal(t, 5, got)
}
