package schedule

import (
	"context"
	"time"

	domain "github.com/RITWIKRUDRA01/calendar-booking-system/internal/domain/schedule"
)

type GetAvailability struct {
	repo        domain.Repository
	horizonDays int
}

func NewGetAvailability(repo domain.Repository, horizonDays int) *GetAvailability {
	return &GetAvailability{
		repo:        repo,
		horizonDays: horizonDays,
	}
}

// Execute returns the free-slot result for one owner and date. Expired
// appointments are dropped before the calendar is read.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	ownerID string,
	date time.Time,
) (domain.AvailabilityResult, error) {

	owner, err := uc.repo.OwnerByID(ctx, ownerID)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}

	now := time.Now()
	owner.Calendar.Cleanup(now)

	return domain.FreeSlots(owner, date, now, uc.horizonDays), nil
}
