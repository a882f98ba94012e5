package schedule

import (
	"time"

	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/models"
)

type AvailabilityStatus string

const (
	StatusAvailable AvailabilityStatus = "available"
	StatusOffDay    AvailabilityStatus = "off_day"
	StatusTooFar    AvailabilityStatus = "too_far"
)

// AvailabilityResult distinguishes "off day" and "out of horizon" from a day
// that is merely fully booked (Status available, empty Hours).
type AvailabilityResult struct {
	Status AvailabilityStatus `json:"status"`
	Hours  []int              `json:"hours"`
}

// FreeSlots computes the bookable start hours for one owner and date.
//
// The horizon is a rolling window of horizonDays days including today;
// StatusTooFar also covers dates in the past (callers that need a distinct
// message compare the date with today). Candidate hours run from the work-day
// start hour (rounded up to the next full hour when the start has minutes) up
// to, but excluding, the end hour; on today's date, hours before the current
// hour are dropped. Hours already taken on the owner's calendar are removed.
//
// The caller is responsible for running calendar cleanup beforehand.
func FreeSlots(owner *models.Owner, queryDate, now time.Time, horizonDays int) AvailabilityResult {
	today := models.DateOf(now)
	cutoff := today.AddDate(0, 0, horizonDays)
	day := models.DateOf(queryDate)

	if day.Before(today) || day.After(cutoff) {
		return AvailabilityResult{Status: StatusTooFar}
	}

	if owner.IsOffDay(day.Weekday()) {
		return AvailabilityResult{Status: StatusOffDay}
	}

	start, end := owner.WorkHours()
	firstHour := start.Hour
	if start.Minute > 0 {
		// slots start on the hour; never offer one before opening
		firstHour++
	}

	taken := make(map[int]bool)
	for _, ap := range owner.Calendar.Snapshot() {
		if models.SameDay(ap.StartTime, day) {
			taken[ap.StartTime.Hour()] = true
		}
	}

	isToday := day.Equal(today)
	hours := make([]int, 0, max(end.Hour-firstHour, 0))
	for h := firstHour; h < end.Hour; h++ {
		if isToday && h < now.Hour() {
			continue
		}
		if taken[h] {
			continue
		}
		hours = append(hours, h)
	}

	return AvailabilityResult{Status: StatusAvailable, Hours: hours}
}
