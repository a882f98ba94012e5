package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "github.com/RITWIKRUDRA01/calendar-booking-system/internal/domain/schedule"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/models"
)

type Summary struct {
	repo        domain.Repository
	horizonDays int
}

func NewSummary(repo domain.Repository, horizonDays int) *Summary {
	return &Summary{
		repo:        repo,
		horizonDays: horizonDays,
	}
}

// ExecuteFull renders the owner's appointments over the whole horizon.
func (uc *Summary) ExecuteFull(ctx context.Context, ownerID string) (string, error) {
	owner, err := uc.repo.OwnerByID(ctx, ownerID)
	if err != nil {
		return "", err
	}

	now := time.Now()
	owner.Calendar.Cleanup(now)

	if owner.Calendar.Len() == 0 {
		return "You have no upcoming appointments.", nil
	}

	today := models.DateOf(now)
	cutoff := today.AddDate(0, 0, uc.horizonDays)
	return buildSummary(owner.Calendar, today, cutoff), nil
}

// ExecuteToday renders today's appointments only.
func (uc *Summary) ExecuteToday(ctx context.Context, ownerID string) (string, error) {
	owner, err := uc.repo.OwnerByID(ctx, ownerID)
	if err != nil {
		return "", err
	}

	now := time.Now()
	owner.Calendar.Cleanup(now)

	today := models.DateOf(now)
	return buildSummary(owner.Calendar, today, today), nil
}

func buildSummary(cal *models.Calendar, from, to time.Time) string {
	type dayGroup struct {
		date time.Time
		aps  []*models.Appointment
	}

	// snapshot keeps start-time order, so groups come out ordered too
	var groups []dayGroup
	for _, ap := range cal.Snapshot() {
		day := models.DateOf(ap.StartTime)
		if day.Before(from) || day.After(to) {
			continue
		}
		if n := len(groups); n == 0 || !groups[n-1].date.Equal(day) {
			groups = append(groups, dayGroup{date: day})
		}
		groups[len(groups)-1].aps = append(groups[len(groups)-1].aps, ap)
	}

	singleDay := from.Equal(to)

	if len(groups) == 0 {
		if singleDay {
			return "You have no appointments today."
		}
		return "You have no appointments in the given range."
	}

	var sb strings.Builder
	for _, g := range groups {
		plural := ""
		if len(g.aps) > 1 {
			plural = "s"
		}

		if singleDay {
			fmt.Fprintf(&sb, "Today you have %d meeting%s in the following order:\n",
				len(g.aps), plural)
		} else {
			fmt.Fprintf(&sb, "On %s you have %d meeting%s:\n",
				g.date.Format("02-01"), len(g.aps), plural)
		}

		for i, ap := range g.aps {
			fmt.Fprintf(&sb, "%d. At %s an appointment with %s on the subject %s\n",
				i+1,
				ap.StartTime.Format("15:04"),
				ap.InviteeName,
				ap.Subject)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
