package store

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"

	"premiumbot/core/logger"
	"log/slog"

	"github.com/shopspring/decimal"
)

// ErrInvalidService is returned for an empty name or a negative price.
var ErrInvalidService = errors.New("store: invalid service")

// DefaultCatalog returns the stock service list used to seed a fresh
// or unreadable catalog file.
func DefaultCatalog() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"Telegram Premium - 1 Month":  decimal.RequireFromString("4.99"),
		"Telegram Premium - 3 Months": decimal.RequireFromString("12.99"),
		"Telegram Premium - 6 Months": decimal.RequireFromString("24.99"),
		"Telegram Premium - 1 Year":   decimal.RequireFromString("45.99"),
		"Telegram Stars":              decimal.RequireFromString("9.99"),
	}
}

// Catalog maps service names to prices, persisted to a JSON file.
// Reads go through the file every time so external edits are picked up
// without a restart.
type Catalog struct {
	mu   sync.Mutex
	path string
	log  *slog.Logger
}

// NewCatalog creates a catalog store backed by the given file path.
func NewCatalog(path string) *Catalog {
	return &Catalog{
		path: path,
		log:  logger.Component("store.catalog"),
	}
}

// AddOrUpdate inserts or overwrites a service price and persists the
// full catalog.
func (c *Catalog) AddOrUpdate(name string, price decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" || price.IsNegative() {
		return ErrInvalidService
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	services := c.loadLocked()
	services[name] = price
	return c.saveLocked(services)
}

// Remove deletes a service. Returns false when the name is unknown,
// leaving the catalog untouched.
func (c *Catalog) Remove(name string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	services := c.loadLocked()
	if _, ok := services[name]; !ok {
		return false, nil
	}
	delete(services, name)
	if err := c.saveLocked(services); err != nil {
		return false, err
	}
	return true, nil
}

// All returns the current catalog, re-read from disk.
func (c *Catalog) All() map[string]decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked()
}

// Price returns the price for a service name, if present.
func (c *Catalog) Price(name string) (decimal.Decimal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	services := c.loadLocked()
	price, ok := services[name]
	return price, ok
}

// Names returns service names in stable sorted order, for menu rendering.
func (c *Catalog) Names() []string {
	services := c.All()
	names := make([]string, 0, len(services))
	for name := range services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadLocked reads the catalog file, recreating it from defaults when
// missing and degrading to an empty catalog on persistent failure.
func (c *Catalog) loadLocked() map[string]decimal.Decimal {
	services, err := c.readFile()
	if err == nil {
		return services
	}

	c.log.Warn("catalog load failed, recreating defaults",
		slog.String("event", "catalog.load"),
		slog.String("file", c.path),
		slog.String("err", err.Error()),
	)

	defaults := DefaultCatalog()
	if saveErr := c.saveLocked(defaults); saveErr != nil {
		c.log.Error("catalog recreate failed",
			slog.String("event", "catalog.recreate"),
			slog.String("file", c.path),
			slog.String("err", saveErr.Error()),
		)
		return map[string]decimal.Decimal{}
	}

	services, err = c.readFile()
	if err != nil {
		c.log.Error("catalog reread failed",
			slog.String("event", "catalog.reread"),
			slog.String("file", c.path),
			slog.String("err", err.Error()),
		)
		return map[string]decimal.Decimal{}
	}
	return services
}

func (c *Catalog) readFile() (map[string]decimal.Decimal, error) {
	var raw map[string]json.Number
	if err := loadJSON(c.path, &raw); err != nil {
		return nil, err
	}

	services := make(map[string]decimal.Decimal, len(raw))
	for name, num := range raw {
		price, err := decimal.NewFromString(num.String())
		if err != nil {
			return nil, err
		}
		services[name] = price
	}
	return services, nil
}

func (c *Catalog) saveLocked(services map[string]decimal.Decimal) error {
	raw := make(map[string]json.Number, len(services))
	for name, price := range services {
		raw[name] = json.Number(price.String())
	}
	if err := saveJSON(c.path, raw); err != nil {
		c.log.Error("catalog save failed",
			slog.String("event", "catalog.save"),
			slog.String("file", c.path),
			slog.String("err", err.Error()),
		)
		return err
	}
	return nil
}

// Exists reports whether the catalog file is present on disk.
func (c *Catalog) Exists() bool {
	_, err := os.Stat(c.path)
	return err == nil
}
