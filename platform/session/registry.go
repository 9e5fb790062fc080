package session

import "sync"

// Registry is the host process's exclusive map of room code to live
// session. Channel handles never leave their owning session.
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{rooms: map[string]*Session{}}
}

func (r *Registry) Get(code string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rooms[code]
}

func (r *Registry) GetOrCreate(code string, seed int64) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.rooms[code]; ok {
		return s
	}
	s := New(code, seed)
	r.rooms[code] = s
	return s
}

func (r *Registry) Put(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[s.Code] = s
}

func (r *Registry) Remove(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.rooms[code]; ok {
		s.Close()
		delete(r.rooms, code)
	}
}
