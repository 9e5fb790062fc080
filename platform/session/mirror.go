package session

import (
	"encoding/json"
	"sync"

	"github.com/jfeng32/polypop-backend/app/models"
)

// Mirror is the remote participant's view of the session. It is never
// authoritative: every inbound snapshot replaces the whole state, no
// merging, last snapshot wins.
type Mirror struct {
	mu      sync.RWMutex
	state   models.SyncPayload
	started bool
}

func NewMirror() *Mirror {
	return &Mirror{}
}

// ApplySync replaces the mirrored state wholesale.
func (m *Mirror) ApplySync(raw string) error {
	var payload models.SyncPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return err
	}
	m.mu.Lock()
	m.state = payload
	m.mu.Unlock()
	return nil
}

// ApplyStart flips the mirror out of lobby mode.
func (m *Mirror) ApplyStart() {
	m.mu.Lock()
	m.started = true
	m.mu.Unlock()
}

func (m *Mirror) State() models.SyncPayload {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Mirror) Started() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.started
}
