package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) (*Catalog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "services.json")
	return NewCatalog(path), path
}

func TestCatalogAddOrUpdateThenPrice(t *testing.T) {
	c, _ := newTestCatalog(t)

	price := decimal.RequireFromString("4.99")
	require.NoError(t, c.AddOrUpdate("Telegram Premium - 1 Month", price))

	got, ok := c.Price("Telegram Premium - 1 Month")
	require.True(t, ok)
	assert.True(t, price.Equal(got))

	// overwrite wins
	updated := decimal.RequireFromString("5.49")
	require.NoError(t, c.AddOrUpdate("Telegram Premium - 1 Month", updated))
	got, ok = c.Price("Telegram Premium - 1 Month")
	require.True(t, ok)
	assert.True(t, updated.Equal(got))
}

func TestCatalogAddValidation(t *testing.T) {
	c, _ := newTestCatalog(t)

	assert.ErrorIs(t, c.AddOrUpdate("", decimal.RequireFromString("1.00")), ErrInvalidService)
	assert.ErrorIs(t, c.AddOrUpdate("   ", decimal.RequireFromString("1.00")), ErrInvalidService)
	assert.ErrorIs(t, c.AddOrUpdate("X", decimal.RequireFromString("-0.01")), ErrInvalidService)

	require.NoError(t, c.AddOrUpdate("Free Trial", decimal.Zero))
	got, ok := c.Price("Free Trial")
	require.True(t, ok)
	assert.True(t, got.IsZero())
}

func TestCatalogRemoveAbsent(t *testing.T) {
	c, _ := newTestCatalog(t)

	require.NoError(t, c.AddOrUpdate("Telegram Stars", decimal.RequireFromString("9.99")))
	before := c.All()

	removed, err := c.Remove("No Such Service")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, len(before), len(c.All()))

	removed, err = c.Remove("Telegram Stars")
	require.NoError(t, err)
	assert.True(t, removed)
	_, ok := c.Price("Telegram Stars")
	assert.False(t, ok)
}

func TestCatalogSurvivesRestart(t *testing.T) {
	c, path := newTestCatalog(t)

	require.NoError(t, c.AddOrUpdate("Telegram Premium - 1 Year", decimal.RequireFromString("45.99")))
	require.NoError(t, c.AddOrUpdate("Telegram Stars", decimal.RequireFromString("9.99")))
	saved := c.All()

	// New store instance over the same file stands in for a restart.
	reopened := NewCatalog(path)
	got := reopened.All()
	require.Equal(t, len(saved), len(got))
	for name, price := range saved {
		assert.True(t, price.Equal(got[name]), "price mismatch for %s", name)
	}
}

func TestCatalogRecreatesDefaultsWhenFileDeleted(t *testing.T) {
	c, path := newTestCatalog(t)

	require.NoError(t, c.AddOrUpdate("Custom", decimal.RequireFromString("1.00")))
	require.NoError(t, os.Remove(path))

	got := c.All()
	defaults := DefaultCatalog()
	require.Equal(t, len(defaults), len(got))
	for name, price := range defaults {
		assert.True(t, price.Equal(got[name]), "default price mismatch for %s", name)
	}
	assert.True(t, c.Exists())
}

func TestCatalogCorruptFileFallsBackToDefaults(t *testing.T) {
	c, path := newTestCatalog(t)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	got := c.All()
	assert.Equal(t, len(DefaultCatalog()), len(got))
}

func TestCatalogExternalEditVisibleOnRead(t *testing.T) {
	c, path := newTestCatalog(t)

	require.NoError(t, c.AddOrUpdate("Telegram Stars", decimal.RequireFromString("9.99")))

	// Simulate an operator editing the file directly.
	require.NoError(t, os.WriteFile(path, []byte(`{"Telegram Stars": 7.50}`), 0o644))

	got, ok := c.Price("Telegram Stars")
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("7.50").Equal(got))
}

func TestCatalogNamesSorted(t *testing.T) {
	c, _ := newTestCatalog(t)

	require.NoError(t, c.AddOrUpdate("b", decimal.RequireFromString("2.00")))
	require.NoError(t, c.AddOrUpdate("a", decimal.RequireFromString("1.00")))
	require.NoError(t, c.AddOrUpdate("c", decimal.RequireFromString("3.00")))

	assert.Equal(t, []string{"a", "b", "c"}, c.Names())
}
