package models

import (
	"fmt"
	"time"
)

// DayTime is a clock time within a work day (no date, no zone).
type DayTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func ParseDayTime(s string) (DayTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return DayTime{}, fmt.Errorf("invalid time %q: use HH:MM", s)
	}
	return DayTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t DayTime) MinutesOfDay() int {
	return t.Hour*60 + t.Minute
}

func (t DayTime) Before(other DayTime) bool {
	return t.MinutesOfDay() < other.MinutesOfDay()
}

func (t DayTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
