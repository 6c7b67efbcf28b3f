// Package timefmt converts between the compact textual forms used in
// access-control exports ("8ч 30м" durations, DD.MM.YYYY dates,
// HH:MM[:SS] clock times) and sortable numeric values.
package timefmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MissingDuration is returned when a duration string is absent or
// unparseable. It is distinct from zero so that sorting can keep missing
// values apart from real "0ч 0м" days.
const MissingDuration = -1

const dateLayout = "02.01.2006"

var (
	durationRe = regexp.MustCompile(`(\d+)ч\s*(\d+)м`)
	dmyRe      = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})$`)
)

// FormatDuration renders total minutes as "Hч Mм". Negative input renders
// as "0ч 0м".
func FormatDuration(totalMinutes float64) string {
	if math.IsNaN(totalMinutes) || totalMinutes < 0 {
		return "0ч 0м"
	}
	hours := int(totalMinutes) / 60
	minutes := int(math.Round(math.Mod(totalMinutes, 60)))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%dч %dм", hours, minutes)
}

// ParseDurationMinutes parses "Hч Mм" into total minutes. Absent or
// unparseable strings yield MissingDuration.
func ParseDurationMinutes(s string) int {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return MissingDuration
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes
}

// DurationSortValue maps a duration string to a sort key. Missing values
// map to the maximum int so they come after every real value in ascending
// order and before every real value in descending order.
func DurationSortValue(s string) int {
	v := ParseDurationMinutes(s)
	if v == MissingDuration {
		return math.MaxInt
	}
	return v
}

// TimeToMinutes parses "HH:MM" or "HH:MM:SS" into minutes from midnight.
// Malformed input yields 0.
func TimeToMinutes(s string) int {
	if !strings.Contains(s, ":") {
		return 0
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0
	}
	hours, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	minutes, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0
	}
	return hours*60 + minutes
}

// DateSortKey maps a canonical DD.MM.YYYY date to a sortable timestamp.
// Malformed dates map to 0; they feed sort comparators only, never
// business logic.
func DateSortKey(s string) int64 {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0
	}
	return t.Unix()
}

// Weekday returns the ISO weekday of a canonical date, Monday = 0. The
// second return is false when the date does not parse.
func Weekday(s string) (int, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0, false
	}
	return (int(t.Weekday()) + 6) % 7, true
}

// excelEpoch is the zero day of Excel's 1900 date system. Serial 1 is
// 1900-01-01; the epoch sits two days earlier to absorb Excel's fictional
// 1900-02-29.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// CanonicalDate normalizes a spreadsheet cell into DD.MM.YYYY. It accepts
// D.M.YYYY with ./-: separators, ISO dates with an optional time part, and
// Excel serial day numbers. Unrecognized values yield "".
func CanonicalDate(cell string) string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return ""
	}
	if m := dmyRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Day() != day || int(t.Month()) != month {
			return ""
		}
		return t.Format(dateLayout)
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", "2006-01-02T15:04:05Z07:00", "01-02-06", "1/2/06 15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout)
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= 1 {
		t := excelEpoch.AddDate(0, 0, int(serial))
		return t.Format(dateLayout)
	}
	return ""
}

// CanonicalTime normalizes a spreadsheet cell into a zero-padded
// HH:MM[:SS] string. It accepts clock strings and Excel day-fraction
// floats. Unrecognized values yield "".
func CanonicalTime(cell string) string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return ""
	}
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return ""
		}
		nums := make([]int, len(parts))
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 {
				return ""
			}
			nums[i] = n
		}
		if nums[0] > 23 || nums[1] > 59 {
			return ""
		}
		if len(nums) == 3 {
			if nums[2] > 59 {
				return ""
			}
			return fmt.Sprintf("%02d:%02d:%02d", nums[0], nums[1], nums[2])
		}
		return fmt.Sprintf("%02d:%02d", nums[0], nums[1])
	}
	if fraction, err := strconv.ParseFloat(s, 64); err == nil && fraction >= 0 && fraction < 1 {
		totalSeconds := int(math.Round(fraction * 86400))
		return fmt.Sprintf("%02d:%02d:%02d", totalSeconds/3600, (totalSeconds%3600)/60, totalSeconds%60)
	}
	return ""
}
