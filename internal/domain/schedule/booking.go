package schedule

import (
	"time"

	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/httperr"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/models"
)

// ValidateBooking runs the side-effect-free booking pre-checks, in order:
// horizon window, whole-hour precision, off day, working hours. Each failure
// maps to its own business code. These checks are safe to evaluate outside
// the calendar lock; slot freedom is re-checked under the lock at commit.
func ValidateBooking(owner *models.Owner, start, now time.Time, horizonDays int) error {
	today := models.DateOf(now)
	cutoff := today.AddDate(0, 0, horizonDays)

	if start.Before(now) || models.DateOf(start).After(cutoff) {
		return httperr.ErrBusiness(httperr.CodeOutOfWindow)
	}

	if start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		return httperr.ErrBusiness(httperr.CodeNotOnTheHour)
	}

	if owner.IsOffDay(start.Weekday()) {
		return httperr.ErrBusiness(httperr.CodeOffDay)
	}

	ws, we := owner.WorkHours()
	minutes := start.Hour() * 60
	if minutes < ws.MinutesOfDay() || minutes > we.MinutesOfDay()-60 {
		return httperr.ErrBusiness(httperr.CodeOutsideHours)
	}

	return nil
}
