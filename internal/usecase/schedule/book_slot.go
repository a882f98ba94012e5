package schedule

import (
	"context"
	"time"

	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/audit"
	domain "github.com/RITWIKRUDRA01/calendar-booking-system/internal/domain/schedule"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/httperr"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookSlotInput struct {
	OwnerID   string
	InviteeID string
	Subject   string

	// Start must be a whole hour; sub-hour precision is rejected.
	Start time.Time
}

// ======================================================
// USE CASE
// ======================================================

// BookSlot is the booking transaction coordinator. Pre-checks run
// optimistically outside any lock; the commit re-checks slot freedom under
// the target calendar's own lock, so for one (owner, date, hour) exactly one
// concurrent attempt succeeds and the rest observe slot_taken.
type BookSlot struct {
	repo        domain.Repository
	audit       *audit.Dispatcher
	horizonDays int
}

func NewBookSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
	horizonDays int,
) *BookSlot {
	return &BookSlot{
		repo:        repo,
		audit:       audit,
		horizonDays: horizonDays,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookSlot) Execute(
	ctx context.Context,
	in BookSlotInput,
) (*models.Appointment, error) {

	owner, err := uc.repo.OwnerByID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	invitee, err := uc.repo.InviteeByID(ctx, in.InviteeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := domain.ValidateBooking(owner, in.Start, now, uc.horizonDays); err != nil {
		return nil, err
	}

	ap := models.NewAppointment(in.Start, in.Subject, invitee, owner)

	// guarded re-check and commit
	if !owner.Calendar.Book(ap) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	invitee.AddAppointment(ap)

	uc.audit.Dispatch(audit.Event{
		OwnerID:  owner.ID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"invitee_id": invitee.ID,
			"start_time": ap.StartTime,
		},
	})

	return ap, nil
}
