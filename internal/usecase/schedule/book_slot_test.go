package schedule_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/audit"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/httperr"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/infra/repository"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/models"
	ucSchedule "github.com/RITWIKRUDRA01/calendar-booking-system/internal/usecase/schedule"
)

const horizonDays = 15

type fixture struct {
	store      *repository.MemoryStore
	dispatcher *audit.Dispatcher
	owner      *models.Owner
	invitee    *models.Invitee
}

func setup(t *testing.T) *fixture {
	t.Helper()
	log := zap.NewNop()
	store := repository.NewMemoryStore()

	owner := models.NewOwner("Alice", "alice@example.com")
	invitee := models.NewInvitee("Bob", "bob@example.com")
	if err := store.SaveOwner(context.Background(), owner); err != nil {
		t.Fatalf("save owner: %v", err)
	}
	if err := store.SaveInvitee(context.Background(), invitee); err != nil {
		t.Fatalf("save invitee: %v", err)
	}

	return &fixture{
		store:      store,
		dispatcher: audit.NewDispatcher(audit.New(log), log, 100),
		owner:      owner,
		invitee:    invitee,
	}
}

// tomorrowAt returns tomorrow at the given hour, which is always inside the
// horizon and in the future for a default owner with no off days.
func tomorrowAt(hour int) time.Time {
	d := time.Now().AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.Local)
}

func TestBookSlotSuccess(t *testing.T) {
	f := setup(t)
	uc := ucSchedule.NewBookSlot(f.store, f.dispatcher, horizonDays)

	ap, err := uc.Execute(context.Background(), ucSchedule.BookSlotInput{
		OwnerID:   f.owner.ID,
		InviteeID: f.invitee.ID,
		Subject:   "Standup",
		Start:     tomorrowAt(10),
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if ap.ID == "" {
		t.Fatal("appointment must have an id")
	}
	if !ap.EndTime().Equal(ap.StartTime.Add(time.Hour)) {
		t.Fatal("end time must be start + 1h")
	}
	if f.owner.Calendar.Len() != 1 {
		t.Fatalf("calendar has %d appointments, want 1", f.owner.Calendar.Len())
	}
	if got := f.invitee.Appointments(); len(got) != 1 || got[0].ID != ap.ID {
		t.Fatalf("invitee list = %v, want the booked appointment", got)
	}
}

func TestBookSlotTakenOnSecondAttempt(t *testing.T) {
	f := setup(t)
	uc := ucSchedule.NewBookSlot(f.store, f.dispatcher, horizonDays)
	in := ucSchedule.BookSlotInput{
		OwnerID:   f.owner.ID,
		InviteeID: f.invitee.ID,
		Subject:   "Standup",
		Start:     tomorrowAt(10),
	}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeSlotTaken) {
		t.Fatalf("second booking: got %v, want slot_taken", err)
	}
	if f.owner.Calendar.Len() != 1 {
		t.Fatalf("calendar has %d appointments, want 1", f.owner.Calendar.Len())
	}
	if len(f.invitee.Appointments()) != 1 {
		t.Fatal("failed booking must not appear in the invitee list")
	}
}

func TestBookSlotRejectionReasons(t *testing.T) {
	f := setup(t)
	uc := ucSchedule.NewBookSlot(f.store, f.dispatcher, horizonDays)

	book := func(in ucSchedule.BookSlotInput) error {
		_, err := uc.Execute(context.Background(), in)
		return err
	}
	base := ucSchedule.BookSlotInput{
		OwnerID:   f.owner.ID,
		InviteeID: f.invitee.ID,
		Subject:   "Standup",
	}

	in := base
	in.OwnerID = "nope"
	in.Start = tomorrowAt(10)
	if err := book(in); !httperr.IsBusiness(err, httperr.CodeOwnerNotFound) {
		t.Errorf("unknown owner: got %v", err)
	}

	in = base
	in.InviteeID = "nope"
	in.Start = tomorrowAt(10)
	if err := book(in); !httperr.IsBusiness(err, httperr.CodeInviteeNotFound) {
		t.Errorf("unknown invitee: got %v", err)
	}

	in = base
	in.Start = tomorrowAt(10).AddDate(0, 0, 16)
	if err := book(in); !httperr.IsBusiness(err, httperr.CodeOutOfWindow) {
		t.Errorf("beyond horizon: got %v", err)
	}

	in = base
	in.Start = tomorrowAt(10).Add(30 * time.Minute)
	if err := book(in); !httperr.IsBusiness(err, httperr.CodeNotOnTheHour) {
		t.Errorf("half hour: got %v", err)
	}

	f.owner.SetOffDays([]time.Weekday{tomorrowAt(10).Weekday()})
	in = base
	in.Start = tomorrowAt(10)
	if err := book(in); !httperr.IsBusiness(err, httperr.CodeOffDay) {
		t.Errorf("off day: got %v", err)
	}
	f.owner.SetOffDays(nil)

	in = base
	in.Start = tomorrowAt(8)
	if err := book(in); !httperr.IsBusiness(err, httperr.CodeOutsideHours) {
		t.Errorf("before opening: got %v", err)
	}

	if f.owner.Calendar.Len() != 0 {
		t.Fatalf("rejected bookings must not mutate the calendar, len %d", f.owner.Calendar.Len())
	}
}

func TestBookSlotConcurrentSingleWinner(t *testing.T) {
	f := setup(t)
	uc := ucSchedule.NewBookSlot(f.store, f.dispatcher, horizonDays)
	start := tomorrowAt(11)

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), ucSchedule.BookSlotInput{
				OwnerID:   f.owner.ID,
				InviteeID: f.invitee.ID,
				Subject:   "Race",
				Start:     start,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, taken int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case httperr.IsBusiness(err, httperr.CodeSlotTaken):
			taken++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if wins != 1 || taken != attempts-1 {
		t.Fatalf("wins = %d, slot_taken = %d; want exactly one winner", wins, taken)
	}
	if f.owner.Calendar.Len() != 1 {
		t.Fatalf("calendar has %d appointments, want 1", f.owner.Calendar.Len())
	}
}
