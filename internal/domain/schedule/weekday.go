package schedule

import (
	"fmt"
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"SUNDAY":    time.Sunday,
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
}

// ParseWeekday accepts the upper-case day labels used on the wire
// (MONDAY, TUESDAY, ...), case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	if d, ok := weekdayNames[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("invalid day %q: use MONDAY, TUESDAY, etc", s)
}

func ParseWeekdays(labels []string) ([]time.Weekday, error) {
	seen := make(map[time.Weekday]bool, len(labels))
	out := make([]time.Weekday, 0, len(labels))
	for _, l := range labels {
		d, err := ParseWeekday(l)
		if err != nil {
			return nil, err
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out, nil
}

func FormatWeekday(d time.Weekday) string {
	return strings.ToUpper(d.String())
}
