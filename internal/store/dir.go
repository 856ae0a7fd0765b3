// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/staranto/memoctlgo/internal/cachedir"
)

// DirStore keeps entries as files under a local directory, one file per
// key, using the same key encoding as the transient cache.
type DirStore struct {
	dir string
}

// NewDirStore returns a store rooted at dir. An empty dir selects the
// default cache directory.
func NewDirStore(dir string) (*DirStore, error) {
	if dir == "" {
		base, ok := cachedir.Dir()
		if !ok {
			return nil, fmt.Errorf("no store directory could be resolved")
		}
		dir = filepath.Join(base, "store")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return nil, fmt.Errorf("failed to create store dir: %w", err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) Read(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *DirStore) Write(_ context.Context, key string, data []byte) error {
	p := s.path(key)
	if _, err := os.Stat(p); err == nil {
		// First write wins.
		return nil
	}
	if err := os.WriteFile(p, data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write store entry: %w", err)
	}
	return nil
}

func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, cachedir.EncodeKey(key))
}

func (s *DirStore) String() string {
	return fmt.Sprintf("dir:%s", s.dir)
}

func (s *DirStore) Type() string {
	return "dir"
}
