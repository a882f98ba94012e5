package models

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidWorkHours = errors.New("work day end must be after start")

// Owner exposes a bookable calendar. Work hours and off days are mutable via
// configuration updates; the calendar is created with the owner and owned 1:1.
type Owner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	Calendar *Calendar `json:"-"`

	cfgMu        sync.RWMutex
	workDayStart DayTime
	workDayEnd   DayTime
	offDays      map[time.Weekday]bool
}

// NewOwner creates an owner with the default 09:00-17:00 work day, no off
// days, and a fresh calendar.
func NewOwner(name, email string) *Owner {
	return &Owner{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Calendar:     NewCalendar(),
		workDayStart: DayTime{Hour: 9},
		workDayEnd:   DayTime{Hour: 17},
		offDays:      map[time.Weekday]bool{},
	}
}

func (o *Owner) WorkHours() (start, end DayTime) {
	o.cfgMu.RLock()
	defer o.cfgMu.RUnlock()
	return o.workDayStart, o.workDayEnd
}

// SetWorkHours fails unless end is strictly after start. Appointments booked
// under the previous hours stay valid.
func (o *Owner) SetWorkHours(start, end DayTime) error {
	if !start.Before(end) {
		return ErrInvalidWorkHours
	}

	o.cfgMu.Lock()
	defer o.cfgMu.Unlock()
	o.workDayStart = start
	o.workDayEnd = end
	return nil
}

func (o *Owner) IsOffDay(day time.Weekday) bool {
	o.cfgMu.RLock()
	defer o.cfgMu.RUnlock()
	return o.offDays[day]
}

// SetOffDays replaces the off-day set wholesale.
func (o *Owner) SetOffDays(days []time.Weekday) {
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		set[d] = true
	}

	o.cfgMu.Lock()
	defer o.cfgMu.Unlock()
	o.offDays = set
}

func (o *Owner) OffDays() []time.Weekday {
	o.cfgMu.RLock()
	defer o.cfgMu.RUnlock()

	out := make([]time.Weekday, 0, len(o.offDays))
	for d := range o.offDays {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
