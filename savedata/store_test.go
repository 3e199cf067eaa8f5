package savedata

import (
	"errors"
	"strings"
	"testing"

	cfg "github.com/automoto/blockfront/config"
	"github.com/quasilyte/gdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorld(name, seed string) *SaveFile {
	s := New()
	s.Name = name
	s.Seed = seed
	s.ResetProgress(Vec3{X: 5, Y: 200, Z: 5})
	return s
}

func enumerate(t *testing.T, s *Store) []string {
	t.Helper()
	var names []string
	require.NoError(t, s.EnumerateSaves(func(name string) bool {
		names = append(names, name)
		return true
	}))
	return names
}

func TestEmptyStore(t *testing.T) {
	s := NewStore(NewMemoryBackend())

	assert.Empty(t, enumerate(t, s))
	assert.NoError(t, s.LastError())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(NewMemoryBackend())
	w := newWorld("Home", "12345")
	w.Inventory = append(w.Inventory, InventorySlot{Item: 3, Count: 12})

	require.NoError(t, s.SaveWorld(w))

	got, err := s.LoadSave("Home")
	require.NoError(t, err)
	assert.Equal(t, w, got)
}

func TestEnumerateKeepsCreationOrder(t *testing.T) {
	s := NewStore(NewMemoryBackend())
	for _, n := range []string{"b", "a", "c"} {
		require.NoError(t, s.SaveWorld(newWorld(n, "1")))
	}
	// Re-saving does not move or duplicate an entry
	require.NoError(t, s.SaveWorld(newWorld("b", "2")))

	assert.Equal(t, []string{"b", "a", "c"}, enumerate(t, s))
}

func TestEnumerateStopsWhenCallbackDeclines(t *testing.T) {
	s := NewStore(NewMemoryBackend())
	for _, n := range []string{"1", "2", "3", "4"} {
		require.NoError(t, s.SaveWorld(newWorld(n, "x")))
	}

	var seen []string
	require.NoError(t, s.EnumerateSaves(func(name string) bool {
		seen = append(seen, name)
		return len(seen) < 2
	}))
	assert.Equal(t, []string{"1", "2"}, seen)
}

func TestDeleteRemovesOnlyThatSave(t *testing.T) {
	b := NewMemoryBackend()
	s := NewStore(b)
	for _, n := range []string{"one", "two", "three"} {
		require.NoError(t, s.SaveWorld(newWorld(n, "x")))
	}

	require.NoError(t, s.DeleteSave("two"))

	assert.Equal(t, []string{"one", "three"}, enumerate(t, s))
	_, err := s.LoadSave("two")
	assert.ErrorIs(t, err, ErrNotFound)
	_, ok := b.Items[worldKey("two")]
	assert.False(t, ok)

	_, err = s.LoadSave("three")
	assert.NoError(t, err)
}

func TestDeleteRemovesWorldFromGdata(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m, err := gdata.Open(gdata.Config{AppName: "blockfront-test"})
	require.NoError(t, err)
	s := NewStore(m)

	require.NoError(t, s.SaveWorld(newWorld("home", "12345")))
	require.True(t, m.ItemExists(worldKey("home")))

	require.NoError(t, s.DeleteSave("home"))

	assert.False(t, m.ItemExists(worldKey("home")))
	assert.Empty(t, enumerate(t, s))
	_, err = s.LoadSave("home")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryBackendKeepsEmptyItems(t *testing.T) {
	b := NewMemoryBackend()

	require.NoError(t, b.SaveItem("k", nil))
	data, ok := b.Items["k"]
	assert.True(t, ok)
	assert.Empty(t, data)

	require.NoError(t, b.DeleteItem("k"))
	_, ok = b.Items["k"]
	assert.False(t, ok)
}

func TestDeleteMissing(t *testing.T) {
	s := NewStore(NewMemoryBackend())

	err := s.DeleteSave("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.LastError(), ErrNotFound)
}

func TestSaveRejectsInvalidNames(t *testing.T) {
	s := NewStore(NewMemoryBackend())

	for _, name := range []string{"", "   ", "tab\there", strings.Repeat("x", cfg.Saves.NameMaxLength+1)} {
		err := s.SaveWorld(newWorld(name, "1"))
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
	assert.Empty(t, enumerate(t, s))
}

func TestBackendFailureIsRemembered(t *testing.T) {
	b := NewMemoryBackend()
	s := NewStore(b)
	require.NoError(t, s.SaveWorld(newWorld("w", "1")))

	boom := errors.New("disk full")
	b.Fail = boom

	err := s.SaveWorld(newWorld("v", "1"))
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.LastError(), boom)

	assert.ErrorIs(t, s.EnumerateSaves(func(string) bool { return true }), boom)
	_, err = s.LoadSave("w")
	assert.ErrorIs(t, err, boom)

	s.ClearError()
	assert.NoError(t, s.LastError())
}

func TestCorruptIndex(t *testing.T) {
	b := NewMemoryBackend()
	b.Items[indexKey] = []byte("{not json")
	s := NewStore(b)

	err := s.EnumerateSaves(func(string) bool { return true })
	assert.Error(t, err)
	assert.Error(t, s.LastError())
}

func TestWorldKeyIsFilenameSafe(t *testing.T) {
	k := worldKey("My World/../ä")
	assert.True(t, strings.HasPrefix(k, "world-"))
	assert.NotContains(t, k, "/")
	assert.NotContains(t, k, " ")
}
