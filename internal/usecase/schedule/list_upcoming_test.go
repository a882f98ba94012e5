package schedule_test

import (
	"context"
	"strings"
	"testing"
	"time"

	ucSchedule "github.com/RITWIKRUDRA01/calendar-booking-system/internal/usecase/schedule"
)

func TestListUpcomingGroupsByDate(t *testing.T) {
	f := setup(t)
	book := ucSchedule.NewBookSlot(f.store, f.dispatcher, horizonDays)
	list := ucSchedule.NewListUpcoming(f.store)

	for _, in := range []ucSchedule.BookSlotInput{
		{OwnerID: f.owner.ID, InviteeID: f.invitee.ID, Subject: "a", Start: tomorrowAt(10)},
		{OwnerID: f.owner.ID, InviteeID: f.invitee.ID, Subject: "b", Start: tomorrowAt(9)},
		{OwnerID: f.owner.ID, InviteeID: f.invitee.ID, Subject: "c", Start: tomorrowAt(11).AddDate(0, 0, 1)},
	} {
		if _, err := book.Execute(context.Background(), in); err != nil {
			t.Fatalf("book %s: %v", in.Subject, err)
		}
	}

	now := time.Now()
	days, err := list.Execute(context.Background(), f.owner.ID, now, now.AddDate(0, 0, horizonDays))
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(days) != 2 {
		t.Fatalf("want 2 day groups, got %d", len(days))
	}
	if len(days[0].Appointments) != 2 || len(days[1].Appointments) != 1 {
		t.Fatalf("group sizes = %d/%d, want 2/1",
			len(days[0].Appointments), len(days[1].Appointments))
	}
	if days[0].Date >= days[1].Date {
		t.Fatalf("days out of order: %s then %s", days[0].Date, days[1].Date)
	}

	first := days[0].Appointments
	if !first[0].StartTime.Before(first[1].StartTime) {
		t.Fatal("appointments within a day must be ordered by start time")
	}
	if first[0].Subject != "b" {
		t.Fatalf("first appointment subject = %q, want the 9:00 one", first[0].Subject)
	}
}

func TestListUpcomingRangeFilter(t *testing.T) {
	f := setup(t)
	book := ucSchedule.NewBookSlot(f.store, f.dispatcher, horizonDays)
	list := ucSchedule.NewListUpcoming(f.store)

	if _, err := book.Execute(context.Background(), ucSchedule.BookSlotInput{
		OwnerID: f.owner.ID, InviteeID: f.invitee.ID, Subject: "far", Start: tomorrowAt(10).AddDate(0, 0, 5),
	}); err != nil {
		t.Fatalf("book: %v", err)
	}

	now := time.Now()
	days, err := list.Execute(context.Background(), f.owner.ID, now, now.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("appointment outside the range should be filtered, got %v", days)
	}
}

func TestSummaryWording(t *testing.T) {
	f := setup(t)
	book := ucSchedule.NewBookSlot(f.store, f.dispatcher, horizonDays)
	summary := ucSchedule.NewSummary(f.store, horizonDays)

	empty, err := summary.ExecuteFull(context.Background(), f.owner.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if empty != "You have no upcoming appointments." {
		t.Fatalf("empty summary = %q", empty)
	}

	start := tomorrowAt(10)
	if _, err := book.Execute(context.Background(), ucSchedule.BookSlotInput{
		OwnerID: f.owner.ID, InviteeID: f.invitee.ID, Subject: "Standup", Start: start,
	}); err != nil {
		t.Fatalf("book: %v", err)
	}

	full, err := summary.ExecuteFull(context.Background(), f.owner.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	wantDay := "On " + start.Format("02-01") + " you have 1 meeting:"
	if !strings.Contains(full, wantDay) {
		t.Fatalf("summary %q missing %q", full, wantDay)
	}
	wantLine := "1. At 10:00 an appointment with Bob on the subject Standup"
	if !strings.Contains(full, wantLine) {
		t.Fatalf("summary %q missing %q", full, wantLine)
	}

	today, err := summary.ExecuteToday(context.Background(), f.owner.ID)
	if err != nil {
		t.Fatalf("today summary: %v", err)
	}
	if today != "You have no appointments today." {
		t.Fatalf("today summary = %q", today)
	}
}
