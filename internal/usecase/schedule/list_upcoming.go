package schedule

import (
	"context"
	"time"

	domain "github.com/RITWIKRUDRA01/calendar-booking-system/internal/domain/schedule"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/dto"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/models"
)

type ListUpcoming struct {
	repo domain.Repository
}

func NewListUpcoming(repo domain.Repository) *ListUpcoming {
	return &ListUpcoming{repo: repo}
}

// Execute groups an owner's appointments between from and to (inclusive
// calendar days) by date, days and appointments both in ascending order.
func (uc *ListUpcoming) Execute(
	ctx context.Context,
	ownerID string,
	from, to time.Time,
) ([]dto.DayScheduleDTO, error) {

	owner, err := uc.repo.OwnerByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	owner.Calendar.Cleanup(time.Now())

	fromDay := models.DateOf(from)
	toDay := models.DateOf(to)

	// snapshot is already sorted by start time, so one pass groups in order
	out := make([]dto.DayScheduleDTO, 0)
	for _, ap := range owner.Calendar.Snapshot() {
		day := models.DateOf(ap.StartTime)
		if day.Before(fromDay) || day.After(toDay) {
			continue
		}

		key := day.Format("2006-01-02")
		if n := len(out); n == 0 || out[n-1].Date != key {
			out = append(out, dto.DayScheduleDTO{Date: key})
		}
		last := &out[len(out)-1]
		last.Appointments = append(last.Appointments, dto.NewAppointmentDTO(ap))
	}

	return out, nil
}
