package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is an immutable one-hour reservation. The end instant is always
// derived from the start, never stored.
type Appointment struct {
	ID string `json:"id"`

	OwnerID     string `json:"owner_id"`
	InviteeID   string `json:"invitee_id"`
	InviteeName string `json:"invitee_name"`

	Subject   string    `json:"subject"`
	StartTime time.Time `json:"start_time"`

	CreatedAt time.Time `json:"created_at"`
}

func NewAppointment(start time.Time, subject string, invitee *Invitee, owner *Owner) *Appointment {
	return &Appointment{
		ID:          uuid.New().String(),
		OwnerID:     owner.ID,
		InviteeID:   invitee.ID,
		InviteeName: invitee.Name,
		Subject:     subject,
		StartTime:   start,
		CreatedAt:   time.Now(),
	}
}

func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Hour)
}
