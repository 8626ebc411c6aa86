// Package store persists named record collections as JSON values in a local
// key-value store.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"
)

// Store is the persistence contract for record collections. Each collection
// lives under a stable key name and holds one JSON-encoded value.
//
// Load is corrupt-tolerant: a missing key or unparseable stored JSON leaves
// v untouched and returns nil, so callers always observe a usable (possibly
// empty) collection. Corruption is logged, never propagated.
type Store interface {
	Load(name string, v any) error
	Save(name string, v any) error
	Delete(name string) error
}

// Load creates a Store backed by diskv using the provided config. A nil
// config falls back to LoadConfig; a nil logger disables corruption logging.
func Load(cfg Config, log *zap.Logger) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if log == nil {
		log = zap.NewNop()
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}

	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, ".tmp"),
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		log: log,
	}, nil
}

type persistence struct {
	d   *diskv.Diskv
	log *zap.Logger
}

func (p *persistence) Load(name string, v any) error {
	data, err := p.d.Read(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		p.log.Warn("store: read failed, treating collection as empty",
			zap.String("collection", name), zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Availability over strictness: an unparseable collection degrades
		// to empty rather than blocking every caller.
		p.log.Warn("store: discarding unparseable collection",
			zap.String("collection", name), zap.Error(err))
		return nil
	}
	return nil
}

func (p *persistence) Save(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.d.Write(name, data)
}

func (p *persistence) Delete(name string) error {
	if err := p.d.Erase(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
