package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/snapshot"
)

// LocalStorage implements session.Storage with a single file on disk.
// Writes go to a temp file in the same directory which then replaces the
// snapshot, so a crash never leaves a half-written snapshot behind.
type LocalStorage struct {
	mu    sync.Mutex
	path  string
	codec snapshot.Codec
	perm  os.FileMode
}

// LocalOption defines a function that configures LocalStorage.
type LocalOption func(*LocalStorage)

// WithLocalCodec overrides the codec picked from the file extension.
func WithLocalCodec(codec snapshot.Codec) LocalOption {
	return func(s *LocalStorage) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// WithFileMode sets the permissions of the snapshot file (default 0600).
func WithFileMode(perm os.FileMode) LocalOption {
	return func(s *LocalStorage) {
		s.perm = perm
	}
}

// NewLocalStorage creates a file-backed session storage.
// The parent directory is created if it doesn't exist.
func NewLocalStorage(path string, opts ...LocalOption) (*LocalStorage, error) {
	if path == "" {
		return nil, ErrInvalidConfig
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	if info, err := os.Stat(absPath); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, absPath)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	s := &LocalStorage{
		path:  absPath,
		codec: snapshot.ForExtension(absPath),
		perm:  0600,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewLocalStorageFromConfig creates a storage at cfg.Path.
func NewLocalStorageFromConfig(cfg LocalConfig, opts ...LocalOption) (*LocalStorage, error) {
	return NewLocalStorage(cfg.Path, opts...)
}

// Save atomically replaces the snapshot file.
func (s *LocalStorage) Save(ctx context.Context, table session.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.codec.Marshal(table)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	tmpPath := tmp.Name()
	// Clean up the temp file on any failure path; after rename it no longer exists.
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := os.Chmod(tmpPath, s.perm); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	return nil
}

// Load returns nil when the snapshot file does not exist.
func (s *LocalStorage) Load(ctx context.Context) (session.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	s.mu.Unlock()

	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	return s.codec.Unmarshal(data)
}

// Drop removes the snapshot file. A missing file is not an error.
func (s *LocalStorage) Drop(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", ErrFailedToDeleteFile, err)
	}
	return nil
}

// Path returns the absolute path of the snapshot file.
func (s *LocalStorage) Path() string {
	return s.path
}
