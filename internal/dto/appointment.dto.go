package dto

import (
	"time"

	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/models"
)

type AppointmentDTO struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	InviteeID   string    `json:"invitee_id"`
	InviteeName string    `json:"invitee_name"`
	Subject     string    `json:"subject"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:          ap.ID,
		OwnerID:     ap.OwnerID,
		InviteeID:   ap.InviteeID,
		InviteeName: ap.InviteeName,
		Subject:     ap.Subject,
		StartTime:   ap.StartTime,
		EndTime:     ap.EndTime(),
	}
}

// DayScheduleDTO groups one day's appointments, ordered by start time.
type DayScheduleDTO struct {
	Date         string           `json:"date"`
	Appointments []AppointmentDTO `json:"appointments"`
}
