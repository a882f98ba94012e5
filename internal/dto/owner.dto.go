package dto

import (
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/domain/schedule"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/models"
)

type OwnerDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	CalendarID   string   `json:"calendar_id"`
	WorkDayStart string   `json:"work_day_start"`
	WorkDayEnd   string   `json:"work_day_end"`
	OffDays      []string `json:"off_days"`
}

func NewOwnerDTO(o *models.Owner) OwnerDTO {
	start, end := o.WorkHours()
	return OwnerDTO{
		ID:           o.ID,
		Name:         o.Name,
		Email:        o.Email,
		CalendarID:   o.Calendar.ID,
		WorkDayStart: start.String(),
		WorkDayEnd:   end.String(),
		OffDays:      offDayLabels(o),
	}
}

type WorkDetailsDTO struct {
	OwnerID      string   `json:"owner_id"`
	WorkDayStart string   `json:"work_day_start"`
	WorkDayEnd   string   `json:"work_day_end"`
	OffDays      []string `json:"off_days"`
}

func NewWorkDetailsDTO(o *models.Owner) WorkDetailsDTO {
	start, end := o.WorkHours()
	return WorkDetailsDTO{
		OwnerID:      o.ID,
		WorkDayStart: start.String(),
		WorkDayEnd:   end.String(),
		OffDays:      offDayLabels(o),
	}
}

func offDayLabels(o *models.Owner) []string {
	days := o.OffDays()
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, schedule.FormatWeekday(d))
	}
	return out
}
