package studio

import "sync"

// Store serializes access to the session state. Every state it hands out is a
// value built by the path-copying reducer, so readers never observe partial
// updates.
//
// The epoch guards async completions: actions that change which workspace is
// live (new upload, start over, a new batch, loading history) bump it, and
// DispatchAt drops actions tagged with an older epoch. A generation that
// finishes after the user has moved on cannot corrupt the new workspace.
type Store struct {
	mu    sync.RWMutex
	state State
	epoch uint64
}

// NewStore returns a store holding the initial state.
func NewStore() *Store {
	return &Store{state: NewState()}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Epoch returns the current workspace epoch.
func (s *Store) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// Dispatch applies the action unconditionally and returns the new state and
// epoch.
func (s *Store) Dispatch(action Action) (State, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(action)
	return s.state, s.epoch
}

// DispatchAt applies the action only when epoch still matches the live
// workspace. It returns the resulting epoch and whether the action was
// applied; callers chaining async steps continue with the returned epoch.
func (s *Store) DispatchAt(epoch uint64, action Action) (State, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return s.state, s.epoch, false
	}
	s.apply(action)
	return s.state, s.epoch, true
}

func (s *Store) apply(action Action) {
	s.state = Reduce(s.state, action)
	switch action.(type) {
	case UploadImageSuccess, StartOver, GenerationStart, LoadHistorySession:
		s.epoch++
	}
}
