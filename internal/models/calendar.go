package models

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Calendar holds one owner's appointments, ordered by start time, with at
// most one appointment per (date, hour). It is the unit of mutual exclusion
// for bookings: each calendar carries its own lock, so bookings against
// different owners never contend.
type Calendar struct {
	ID string `json:"id"`

	mu           sync.RWMutex
	appointments []*Appointment
}

func NewCalendar() *Calendar {
	return &Calendar{ID: uuid.New().String()}
}

// Book atomically re-checks slot freedom and inserts the appointment. It
// returns false if the (date, hour) slot is already occupied. Under
// concurrent calls for the same slot exactly one caller wins.
func (c *Calendar) Book(ap *Appointment) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.slotTakenLocked(ap.StartTime) {
		return false
	}

	idx := sort.Search(len(c.appointments), func(i int) bool {
		return c.appointments[i].StartTime.After(ap.StartTime)
	})
	c.appointments = append(c.appointments, nil)
	copy(c.appointments[idx+1:], c.appointments[idx:])
	c.appointments[idx] = ap
	return true
}

func (c *Calendar) slotTakenLocked(start time.Time) bool {
	for _, ap := range c.appointments {
		if SameDay(ap.StartTime, start) && ap.StartTime.Hour() == start.Hour() {
			return true
		}
	}
	return false
}

// HasSlot reports whether an appointment occupies the given date and hour.
func (c *Calendar) HasSlot(date time.Time, hour int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, ap := range c.appointments {
		if SameDay(ap.StartTime, date) && ap.StartTime.Hour() == hour {
			return true
		}
	}
	return false
}

// Cleanup drops every appointment whose end instant is not strictly after
// now. Idempotent; runs opportunistically before reads.
func (c *Calendar) Cleanup(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.appointments[:0]
	for _, ap := range c.appointments {
		if ap.EndTime().After(now) {
			kept = append(kept, ap)
		}
	}
	for i := len(kept); i < len(c.appointments); i++ {
		c.appointments[i] = nil
	}
	c.appointments = kept
}

// Snapshot returns a consistent copy of the appointment list so readers can
// iterate without holding the lock. Appointments themselves are immutable.
func (c *Calendar) Snapshot() []*Appointment {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Appointment, len(c.appointments))
	copy(out, c.appointments)
	return out
}

func (c *Calendar) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.appointments)
}

// DateOf truncates an instant to its calendar day.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
