package audit

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Entry struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Logger records audit entries in memory and mirrors them to the structured
// log. The in-memory trail lives for the process lifetime, like the rest of
// the system state.
type Logger struct {
	log *zap.Logger

	mu      sync.RWMutex
	entries []Entry
}

func New(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Log(ownerID, action, entity, entityID string, metadata any) error {
	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := Entry{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now(),
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()

	l.log.Info("audit",
		zap.String("owner_id", ownerID),
		zap.String("action", action),
		zap.String("entity", entity),
		zap.String("entity_id", entityID),
	)
	return nil
}

// Entries returns the trail newest-first.
func (l *Logger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}
