// Package registry persists install records in a flat JSON file.
package registry

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.InstallRegistry using a flat JSON file keyed by
// spec hash. Records are written only after a build fully succeeded, so the
// file never holds partial state.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.InstallRecord
}

// NewStore creates a registry backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.InstallRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrRegistryReadFailed.Error())
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryReadFailed.Error())
	}
	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}
	return nil
}

// Record persists an install record under its spec hash.
func (s *Store) Record(rec domain.InstallRecord) error {
	s.mu.Lock()
	s.cache[rec.SpecHash] = rec
	s.mu.Unlock()
	return s.save()
}

// Get returns the record for a spec hash, or nil when absent.
func (s *Store) Get(specHash string) (*domain.InstallRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.cache[specHash]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}
