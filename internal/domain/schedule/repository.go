package schedule

import (
	"context"

	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/models"
)

// Repository is the registry collaborator that supplies owners and invitees
// by id. Implementations report missing ids with the owner_not_found /
// invitee_not_found business codes.
type Repository interface {
	// -------- Owner --------
	OwnerByID(ctx context.Context, id string) (*models.Owner, error)

	SaveOwner(ctx context.Context, owner *models.Owner) error

	AllOwners(ctx context.Context) ([]*models.Owner, error)

	// -------- Invitee --------
	InviteeByID(ctx context.Context, id string) (*models.Invitee, error)

	SaveInvitee(ctx context.Context, invitee *models.Invitee) error
}
