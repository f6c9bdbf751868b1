// Package storage persists store snapshots wholesale, standing in for the
// browser-local storage the demo's state would normally survive restarts
// in. Snapshots are written in full on every save; there is no schema
// versioning and no partial persistence.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Load when no snapshot exists for the key.
var ErrNotFound = errors.New("storage: snapshot not found")

// Backend saves and loads complete snapshots by key.
type Backend interface {
	Save(key string, v any) error
	Load(key string, v any) error
}

// Dir is a Backend that keeps one JSON file per key inside a directory.
type Dir struct {
	path string
}

// NewDir creates the directory if needed and returns a Dir backend.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}
	return &Dir{path: path}, nil
}

// Save replaces the snapshot stored under key.
func (d *Dir) Save(key string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot %q: %w", key, err)
	}
	if err := os.WriteFile(d.file(key), raw, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %q: %w", key, err)
	}
	return nil
}

// Load reads the snapshot stored under key into v. A missing snapshot is
// reported as ErrNotFound so callers can fall back to seed data.
func (d *Dir) Load(key string, v any) error {
	raw, err := os.ReadFile(d.file(key))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("reading snapshot %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decoding snapshot %q: %w", key, err)
	}
	return nil
}

func (d *Dir) file(key string) string {
	return filepath.Join(d.path, key+".json")
}
