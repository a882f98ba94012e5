package models

import (
	"testing"
	"time"
)

func TestOwnerDefaults(t *testing.T) {
	owner := NewOwner("Alice", "alice@example.com")

	start, end := owner.WorkHours()
	if start != (DayTime{Hour: 9}) || end != (DayTime{Hour: 17}) {
		t.Fatalf("default hours = %s-%s, want 09:00-17:00", start, end)
	}
	if len(owner.OffDays()) != 0 {
		t.Fatal("new owner should have no off days")
	}
	if owner.Calendar == nil {
		t.Fatal("owner must be created with its calendar")
	}
}

func TestOwnerSetWorkHoursRejectsInvertedRange(t *testing.T) {
	owner := NewOwner("Alice", "alice@example.com")

	if err := owner.SetWorkHours(DayTime{Hour: 17}, DayTime{Hour: 9}); err == nil {
		t.Fatal("end before start should be rejected")
	}
	if err := owner.SetWorkHours(DayTime{Hour: 10}, DayTime{Hour: 10}); err == nil {
		t.Fatal("end equal to start should be rejected")
	}

	// rejected updates must not change the configuration
	start, end := owner.WorkHours()
	if start.Hour != 9 || end.Hour != 17 {
		t.Fatalf("hours changed to %s-%s after rejected update", start, end)
	}

	if err := owner.SetWorkHours(DayTime{Hour: 8, Minute: 30}, DayTime{Hour: 18}); err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}
}

func TestOwnerSetOffDaysReplacesWholesale(t *testing.T) {
	owner := NewOwner("Alice", "alice@example.com")

	owner.SetOffDays([]time.Weekday{time.Saturday, time.Sunday})
	if !owner.IsOffDay(time.Saturday) || !owner.IsOffDay(time.Sunday) {
		t.Fatal("off days not applied")
	}

	owner.SetOffDays([]time.Weekday{time.Monday})
	if owner.IsOffDay(time.Saturday) {
		t.Fatal("previous off days must not survive a replace")
	}
	if !owner.IsOffDay(time.Monday) {
		t.Fatal("new off day missing")
	}
}

func TestParseDayTime(t *testing.T) {
	dt, err := ParseDayTime("09:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if dt.Hour != 9 || dt.Minute != 30 {
		t.Fatalf("got %+v", dt)
	}
	if dt.String() != "09:30" {
		t.Fatalf("String() = %q", dt.String())
	}

	for _, bad := range []string{"9am", "25:00", "09:61", ""} {
		if _, err := ParseDayTime(bad); err == nil {
			t.Errorf("ParseDayTime(%q) should fail", bad)
		}
	}
}
