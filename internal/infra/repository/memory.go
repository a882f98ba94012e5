package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/httperr"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/models"
)

// MemoryStore is the in-process owner/invitee registry. State lives for the
// process lifetime only; entities are shared by pointer so the live calendar
// (and its lock) is the same object everywhere.
type MemoryStore struct {
	mu       sync.RWMutex
	owners   map[string]*models.Owner
	invitees map[string]*models.Invitee
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		owners:   map[string]*models.Owner{},
		invitees: map[string]*models.Invitee{},
	}
}

func (s *MemoryStore) OwnerByID(_ context.Context, id string) (*models.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owner, ok := s.owners[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeOwnerNotFound)
	}
	return owner, nil
}

func (s *MemoryStore) SaveOwner(_ context.Context, owner *models.Owner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners[owner.ID] = owner
	return nil
}

func (s *MemoryStore) AllOwners(_ context.Context) ([]*models.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Owner, 0, len(s.owners))
	for _, o := range s.owners {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) InviteeByID(_ context.Context, id string) (*models.Invitee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	invitee, ok := s.invitees[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeInviteeNotFound)
	}
	return invitee, nil
}

func (s *MemoryStore) SaveInvitee(_ context.Context, invitee *models.Invitee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invitees[invitee.ID] = invitee
	return nil
}
