package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcomeSetGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welcome_image.json")
	w := NewWelcome(path)

	_, ok := w.Get()
	assert.False(t, ok)

	require.NoError(t, w.Set("AgACAgQAAxkBAAI"))
	got, ok := w.Get()
	require.True(t, ok)
	assert.Equal(t, "AgACAgQAAxkBAAI", got)
}

func TestWelcomeRejectsEmptyRef(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welcome_image.json")
	w := NewWelcome(path)

	assert.ErrorIs(t, w.Set(""), ErrEmptyImageRef)
	assert.ErrorIs(t, w.Set("   "), ErrEmptyImageRef)
}

func TestWelcomePersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welcome_image.json")

	w := NewWelcome(path)
	require.NoError(t, w.Set("file-123"))

	reopened := NewWelcome(path)
	got, ok := reopened.Get()
	require.True(t, ok)
	assert.Equal(t, "file-123", got)
}

func TestWelcomeLoadsOnceAtStartup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welcome_image.json")

	w := NewWelcome(path)
	require.NoError(t, w.Set("file-123"))

	// External edits after construction are not picked up until restart.
	require.NoError(t, os.WriteFile(path, []byte(`{"file_id": "file-456"}`), 0o644))
	got, ok := w.Get()
	require.True(t, ok)
	assert.Equal(t, "file-123", got)
}

func TestWelcomeCorruptFileYieldsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welcome_image.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))

	w := NewWelcome(path)
	_, ok := w.Get()
	assert.False(t, ok)
}
