package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sakialabs/RiseUp/internal/storage"
)

// failingStore wraps a MemoryStore and fails all writes.
type failingStore struct {
	*storage.MemoryStore
}

func (f *failingStore) Set(key, value string) error {
	return errors.New("disk full")
}

func TestColdStartDefaultsToLight(t *testing.T) {
	s := NewStore(storage.NewMemoryStore(), nil)
	assert.Equal(t, Light, s.Mode())
}

func TestColdStartPrefersStoredOverProbe(t *testing.T) {
	st := storage.NewMemoryStore()
	assert.NoError(t, st.Set(storage.KeyTheme, string(Dark)))

	probe := func() (Mode, bool) { return Light, true }
	s := NewStore(st, probe)
	assert.Equal(t, Dark, s.Mode())
}

func TestColdStartFallsBackToProbe(t *testing.T) {
	probe := func() (Mode, bool) { return Dark, true }
	s := NewStore(storage.NewMemoryStore(), probe)
	assert.Equal(t, Dark, s.Mode())
}

func TestColdStartIgnoresCorruptStoredValue(t *testing.T) {
	st := storage.NewMemoryStore()
	assert.NoError(t, st.Set(storage.KeyTheme, "sepia"))

	s := NewStore(st, nil)
	assert.Equal(t, Light, s.Mode())
}

func TestTogglePersistsAcrossRestart(t *testing.T) {
	st := storage.NewMemoryStore()
	s := NewStore(st, nil)

	mode, err := s.Toggle()
	assert.NoError(t, err)
	assert.Equal(t, Dark, mode)

	// A "restart" constructs a fresh store over the same storage.
	again := NewStore(st, nil)
	assert.Equal(t, Dark, again.Mode())

	mode, err = again.Toggle()
	assert.NoError(t, err)
	assert.Equal(t, Light, mode)
	assert.Equal(t, Light, NewStore(st, nil).Mode())
}

// Persist-first: if the write fails the in-memory mode must not move.
func TestToggleWriteFailureLeavesModeUnchanged(t *testing.T) {
	s := NewStore(&failingStore{storage.NewMemoryStore()}, nil)

	mode, err := s.Toggle()
	assert.Error(t, err)
	assert.Equal(t, Light, mode)
	assert.Equal(t, Light, s.Mode())
}

func TestSetModeNormalizesUnknown(t *testing.T) {
	st := storage.NewMemoryStore()
	s := NewStore(st, nil)

	assert.NoError(t, s.SetMode(Mode("sepia")))
	assert.Equal(t, Light, s.Mode())

	assert.NoError(t, s.SetMode(Dark))
	assert.Equal(t, Dark, s.Mode())
	raw, err := st.Get(storage.KeyTheme)
	assert.NoError(t, err)
	assert.Equal(t, "dark", raw)
}
