package savedata

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/automoto/blockfront/logger"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const (
	indexKey     = "worlds"
	worldKeyBase = "world-"
)

// Backend is the item storage the store writes to. *gdata.Manager implements it.
// Loading a missing item returns nil data.
type Backend interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
	DeleteItem(key string) error
}

var _ Backend = (*gdata.Manager)(nil)

// Store keeps worlds as JSON items plus an index item listing names in creation order.
// Failures are returned and also remembered until ClearError.
type Store struct {
	backend Backend
	lastErr error
	log     *zap.Logger
}

// Open opens the per-user gdata storage for appName
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return NewStore(m), nil
}

func NewStore(b Backend) *Store {
	return &Store{
		backend: b,
		log:     logger.Named("savedata"),
	}
}

// EnumerateSaves calls fn with each save name in creation order until fn returns false
func (s *Store) EnumerateSaves(fn func(name string) bool) error {
	names, err := s.loadIndex()
	if err != nil {
		return s.fail("enumerate saves", err)
	}
	for _, name := range names {
		if !fn(name) {
			break
		}
	}
	return nil
}

func (s *Store) LoadSave(name string) (*SaveFile, error) {
	data, err := s.backend.LoadItem(worldKey(name))
	if err != nil {
		return nil, s.fail("load "+name, err)
	}
	if len(data) == 0 {
		return nil, s.fail("load "+name, ErrNotFound)
	}

	save := New()
	if err := json.Unmarshal(data, save); err != nil {
		return nil, s.fail("load "+name, err)
	}
	return save, nil
}

// SaveWorld writes save under its name, adding the name to the index when new
func (s *Store) SaveWorld(save *SaveFile) error {
	if err := ValidateName(save.Name); err != nil {
		return s.fail("save world", fmt.Errorf("%w: %q", err, save.Name))
	}

	data, err := json.Marshal(save)
	if err != nil {
		return s.fail("save "+save.Name, err)
	}

	names, err := s.loadIndex()
	if err != nil {
		return s.fail("save "+save.Name, err)
	}

	if err := s.backend.SaveItem(worldKey(save.Name), data); err != nil {
		return s.fail("save "+save.Name, err)
	}

	if !contains(names, save.Name) {
		if err := s.saveIndex(append(names, save.Name)); err != nil {
			return s.fail("save "+save.Name, err)
		}
	}

	s.log.Debug("world saved", zap.String("name", save.Name))
	return nil
}

func (s *Store) DeleteSave(name string) error {
	names, err := s.loadIndex()
	if err != nil {
		return s.fail("delete "+name, err)
	}
	if !contains(names, name) {
		return s.fail("delete "+name, ErrNotFound)
	}

	// Remove the item before dropping it from the index so a failure leaves it listed
	if err := s.backend.DeleteItem(worldKey(name)); err != nil {
		return s.fail("delete "+name, err)
	}

	kept := names[:0]
	for _, n := range names {
		if n != name {
			kept = append(kept, n)
		}
	}
	if err := s.saveIndex(kept); err != nil {
		return s.fail("delete "+name, err)
	}

	s.log.Debug("world deleted", zap.String("name", name))
	return nil
}

// LastError returns the most recent failure not yet cleared
func (s *Store) LastError() error {
	return s.lastErr
}

func (s *Store) ClearError() {
	s.lastErr = nil
}

func (s *Store) fail(op string, err error) error {
	err = fmt.Errorf("%s: %w", op, err)
	s.lastErr = err
	s.log.Warn("save data operation failed", zap.Error(err))
	return err
}

func (s *Store) loadIndex() ([]string, error) {
	data, err := s.backend.LoadItem(indexKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("corrupt save index: %w", err)
	}
	return names, nil
}

func (s *Store) saveIndex(names []string) error {
	data, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return s.backend.SaveItem(indexKey, data)
}

// worldKey hex-encodes name so any printable name maps to a safe item key
func worldKey(name string) string {
	return worldKeyBase + hex.EncodeToString([]byte(name))
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
