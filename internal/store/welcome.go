package store

import (
	"errors"
	"strings"
	"sync"

	"premiumbot/core/logger"
	"log/slog"
)

// ErrEmptyImageRef is returned when Set is called with a blank reference.
var ErrEmptyImageRef = errors.New("store: empty image reference")

type welcomeFile struct {
	FileID *string `json:"file_id"`
}

// Welcome holds the optional welcome image reference, persisted to a
// JSON file. Unlike the catalog, the file is read once at construction;
// external edits are picked up on restart only. Setting a new image
// writes through immediately.
type Welcome struct {
	mu     sync.RWMutex
	path   string
	fileID string
	log    *slog.Logger
}

// NewWelcome creates the store and loads the persisted reference, if any.
func NewWelcome(path string) *Welcome {
	w := &Welcome{
		path: path,
		log:  logger.Component("store.welcome"),
	}

	var f welcomeFile
	if err := loadJSON(path, &f); err != nil {
		w.log.Warn("welcome image load failed",
			slog.String("event", "welcome.load"),
			slog.String("file", path),
			slog.String("err", err.Error()),
		)
		return w
	}
	if f.FileID != nil {
		w.fileID = *f.FileID
	}
	return w
}

// Set stores a non-empty image reference and persists it.
func (w *Welcome) Set(imageRef string) error {
	imageRef = strings.TrimSpace(imageRef)
	if imageRef == "" {
		return ErrEmptyImageRef
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := saveJSON(w.path, welcomeFile{FileID: &imageRef}); err != nil {
		w.log.Error("welcome image save failed",
			slog.String("event", "welcome.save"),
			slog.String("file", w.path),
			slog.String("err", err.Error()),
		)
		return err
	}
	w.fileID = imageRef
	return nil
}

// Get returns the current image reference, if one is set.
func (w *Welcome) Get() (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.fileID == "" {
		return "", false
	}
	return w.fileID, true
}
