package models

import (
	"sync"

	"github.com/google/uuid"
)

// Invitee books appointments on owners' calendars. Its appointment list is
// informational only; the calendar stays authoritative for slot exclusivity.
type Invitee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	mu           sync.Mutex
	appointments []*Appointment
}

func NewInvitee(name, email string) *Invitee {
	return &Invitee{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
	}
}

func (i *Invitee) AddAppointment(ap *Appointment) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.appointments = append(i.appointments, ap)
}

func (i *Invitee) Appointments() []*Appointment {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := make([]*Appointment, len(i.appointments))
	copy(out, i.appointments)
	return out
}
