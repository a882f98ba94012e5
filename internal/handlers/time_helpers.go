package handlers

import (
	"errors"
	"time"
)

var errInvalidDate = errors.New("invalid date")

// buildDate assembles a calendar day from numeric year/month/day request
// fields, rejecting values that do not round-trip (e.g. February 30).
func buildDate(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, errInvalidDate
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

// buildDateTime assembles a whole-hour instant from request fields.
func buildDateTime(year, month, day, hour int) (time.Time, error) {
	if hour < 0 || hour > 23 {
		return time.Time{}, errInvalidDate
	}
	date, err := buildDate(year, month, day)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(time.Duration(hour) * time.Hour), nil
}

func parseDateParam(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
