package utils

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/jinzhu/now"
)

// NormalizeTimeOfDay converts a stored start/end time into minutes since
// midnight for ordering. Two representations are accepted: "HH:MM" and an
// epoch-millis value rendered as a string. The second return value is false
// when the input is empty or matches neither form.
func NormalizeTimeOfDay(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	if t, err := time.Parse("15:04", value); err == nil {
		return t.Hour()*60 + t.Minute(), true
	}
	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		t := time.UnixMilli(millis)
		return t.Hour()*60 + t.Minute(), true
	}
	return 0, false
}

// ParseCalendarDate parses a calendar date in any of the formats clients
// send (YYYY-MM-DD, YYYY/MM/DD, with or without a time part).
func ParseCalendarDate(value string) (time.Time, error) {
	return now.Parse(value)
}

// IsCalendarDate reports whether value parses as a calendar date.
func IsCalendarDate(value string) bool {
	_, err := ParseCalendarDate(value)
	return err == nil
}

// FormatDuration renders a second count as hours and minutes for display,
// e.g. "2時間 30分", "2時間", "45分".
func FormatDuration(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	if hours > 0 {
		if minutes > 0 {
			return fmt.Sprintf("%d時間 %d分", hours, minutes)
		}
		return fmt.Sprintf("%d時間", hours)
	}
	return fmt.Sprintf("%d分", minutes)
}

// FormatDistance renders a meter count for display, switching to kilometers
// with one decimal place at 1000m, e.g. "1.2km", "850m".
func FormatDistance(meters float64) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.1fkm", meters/1000)
	}
	return fmt.Sprintf("%dm", int(math.Round(meters)))
}
