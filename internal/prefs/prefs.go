// Package prefs persists small client preferences as a JSON file.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Preferences is the persisted document.
type Preferences struct {
	HasCompletedOnboarding bool `json:"has_completed_onboarding"`
}

// Store reads and writes preferences at a fixed path. Writes go through a
// temp file and rename so a crash cannot leave a half-written document.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore opens (or prepares) the preferences file at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("prefs: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("prefs: ensure directory: %w", err)
	}
	return &Store{path: path}, nil
}

// Load returns the stored preferences, or the zero document when the file
// does not exist yet.
func (s *Store) Load() (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (Preferences, error) {
	var p Preferences
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("prefs: read: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("prefs: decode: %w", err)
	}
	return p, nil
}

// SetOnboardingComplete records whether the onboarding tour was finished.
func (s *Store) SetOnboardingComplete(done bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load()
	if err != nil {
		return err
	}
	p.HasCompletedOnboarding = done

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("prefs: write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("prefs: replace: %w", err)
	}
	return nil
}
