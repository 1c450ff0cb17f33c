package theme

import (
	"sync"

	"go.uber.org/zap"

	"github.com/sakialabs/RiseUp/internal/storage"
)

// SystemProbe reports the host's color-scheme preference, if any. It is only
// consulted on cold start when no preference is stored.
type SystemProbe func() (Mode, bool)

// Store owns the theme selection for the app's lifetime. Toggles persist to
// storage before the in-memory mode changes, so storage and UI can only
// disagree within the current session if the write itself failed.
type Store struct {
	mu      sync.RWMutex
	storage storage.Store
	mode    Mode
}

// NewStore resolves the initial mode: stored preference first, then the
// system probe, then light. probe may be nil.
func NewStore(st storage.Store, probe SystemProbe) *Store {
	mode := Light
	if raw, err := st.Get(storage.KeyTheme); err == nil {
		if parsed, ok := ParseMode(raw); ok {
			mode = parsed
		}
	} else if probe != nil {
		if system, ok := probe(); ok {
			mode = system
		}
	}

	return &Store{storage: st, mode: mode}
}

// Mode returns the current selection.
func (s *Store) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Colors returns the token set for the current selection.
func (s *Store) Colors() ColorTokens {
	return Colors(s.Mode())
}

// Toggle flips the mode. The new value is persisted first; if the write
// fails the in-memory mode stays unchanged and the error is returned.
func (s *Store) Toggle() (Mode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Light
	if s.mode == Light {
		next = Dark
	}
	if err := s.storage.Set(storage.KeyTheme, string(next)); err != nil {
		return s.mode, err
	}
	s.mode = next
	zap.L().Debug("theme toggled", zap.String("mode", string(next)))
	return next, nil
}

// SetMode selects an explicit mode with the same persist-first contract.
func (s *Store) SetMode(mode Mode) error {
	if _, ok := ParseMode(string(mode)); !ok {
		mode = Light
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Set(storage.KeyTheme, string(mode)); err != nil {
		return err
	}
	s.mode = mode
	return nil
}
