// Package filekv implements kv.Store with one file per key in a directory.
//
// The layout stays human readable: the inventory is a plain JSON file that can
// be inspected or versioned alongside other files.
package filekv

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/inventory/kv"
	"github.com/pkg/errors"
)

// Store is a kv.Store rooted at a directory.
type Store struct {
	root string
}

// New returns a Store rooted at root, creating the directory if needed.
func New(root string) (*Store, error) {
	if root == "" {
		root = ".inventory"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create storage directory %q", root)
	}
	return &Store{root: root}, nil
}

// Root returns the storage directory.
func (s *Store) Root() string { return s.root }

// pathFor maps a key to its file, refusing keys that would escape the root.
func (s *Store) pathFor(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errors.New("empty key")
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", errors.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.root, key+".json"), nil
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "read %q", path)
	}
	return string(data), nil
}

// Set replaces the value of key. The value is written to a temporary file
// first and renamed over the previous one, so a crash never leaves a half
// written value behind.
func (s *Store) Set(_ context.Context, key, value string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.root, "."+key+"-*")
	if err != nil {
		return errors.Wrapf(err, "create temporary file for %q", key)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %q", key)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %q", key)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "replace %q", path)
	}
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "delete %q", path)
	}
	return nil
}

func (s *Store) Close() error { return nil }
