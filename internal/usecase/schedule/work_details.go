package schedule

import (
	"context"

	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/audit"
	domain "github.com/RITWIKRUDRA01/calendar-booking-system/internal/domain/schedule"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/dto"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/httperr"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/models"
)

type GetWorkDetails struct {
	repo domain.Repository
}

func NewGetWorkDetails(repo domain.Repository) *GetWorkDetails {
	return &GetWorkDetails{repo: repo}
}

func (uc *GetWorkDetails) Execute(ctx context.Context, ownerID string) (dto.WorkDetailsDTO, error) {
	owner, err := uc.repo.OwnerByID(ctx, ownerID)
	if err != nil {
		return dto.WorkDetailsDTO{}, err
	}
	return dto.NewWorkDetailsDTO(owner), nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateWorkDetailsInput struct {
	OwnerID string
	Start   string   // HH:MM
	End     string   // HH:MM
	OffDays []string // MONDAY, TUESDAY, ...
}

// UpdateWorkDetails reconfigures an owner's working hours and replaces the
// off-day set wholesale. Appointments booked under the previous configuration
// are not invalidated.
type UpdateWorkDetails struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateWorkDetails(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateWorkDetails {
	return &UpdateWorkDetails{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateWorkDetails) Execute(
	ctx context.Context,
	in UpdateWorkDetailsInput,
) (dto.WorkDetailsDTO, error) {

	owner, err := uc.repo.OwnerByID(ctx, in.OwnerID)
	if err != nil {
		return dto.WorkDetailsDTO{}, err
	}

	start, err := models.ParseDayTime(in.Start)
	if err != nil {
		return dto.WorkDetailsDTO{}, httperr.ErrBusiness("invalid_time_format")
	}
	end, err := models.ParseDayTime(in.End)
	if err != nil {
		return dto.WorkDetailsDTO{}, httperr.ErrBusiness("invalid_time_format")
	}

	offDays, err := domain.ParseWeekdays(in.OffDays)
	if err != nil {
		return dto.WorkDetailsDTO{}, httperr.ErrBusiness("invalid_weekday")
	}

	if err := owner.SetWorkHours(start, end); err != nil {
		return dto.WorkDetailsDTO{}, httperr.ErrBusiness("invalid_work_hours")
	}
	owner.SetOffDays(offDays)

	uc.audit.Dispatch(audit.Event{
		OwnerID:  owner.ID,
		Action:   "work_details_updated",
		Entity:   "owner",
		EntityID: owner.ID,
		Metadata: map[string]any{
			"start":    start.String(),
			"end":      end.String(),
			"off_days": in.OffDays,
		},
	})

	return dto.NewWorkDetailsDTO(owner), nil
}
