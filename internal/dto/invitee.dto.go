package dto

import "github.com/RITWIKRUDRA01/calendar-booking-system/internal/models"

type InviteeDTO struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Appointments []AppointmentDTO `json:"appointments"`
}

func NewInviteeDTO(i *models.Invitee) InviteeDTO {
	aps := i.Appointments()
	out := make([]AppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, NewAppointmentDTO(ap))
	}
	return InviteeDTO{
		ID:           i.ID,
		Name:         i.Name,
		Email:        i.Email,
		Appointments: out,
	}
}
