package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gofrs/flock"

	"github.com/smellview/smellview/internal/domain"
)

const (
	lockTimeout  = 5 * time.Second
	lockRetry    = 50 * time.Millisecond
	lockFileName = ".lock"
)

var validHash = regexp.MustCompile(`^[0-9A-Za-z._-]+$`)

// Store is a file-based implementation of domain.SmellCache. Each commit's
// raw smell list lives in <dir>/smells/<hash>.json.
type Store struct {
	dir string
}

// New creates a store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

var _ domain.SmellCache = (*Store)(nil)

// Load returns the cached smells for hash. The boolean is false when nothing
// is cached.
func (s *Store) Load(hash string) ([]domain.BadSmell, bool, error) {
	path, err := s.entryPath(hash)
	if err != nil {
		return nil, false, err
	}

	unlock, err := s.lock(false)
	if err != nil {
		return nil, false, err
	}
	defer unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var smells []domain.BadSmell
	if err := json.Unmarshal(data, &smells); err != nil {
		return nil, false, fmt.Errorf("reading cache entry %s: %w", hash, err)
	}
	return smells, true, nil
}

// Save writes smells for hash, creating directories as needed.
func (s *Store) Save(hash string, smells []domain.BadSmell) error {
	path, err := s.entryPath(hash)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	unlock, err := s.lock(true)
	if err != nil {
		return err
	}
	defer unlock()

	data, err := json.MarshalIndent(smells, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Invalidate removes the cache entry for hash.
func (s *Store) Invalidate(hash string) error {
	path, err := s.entryPath(hash)
	if err != nil {
		return err
	}

	unlock, err := s.lock(true)
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) entryPath(hash string) (string, error) {
	if !validHash.MatchString(hash) {
		return "", fmt.Errorf("%w: commit hash %q", domain.ErrInvalidInput, hash)
	}
	return filepath.Join(s.dir, "smells", hash+".json"), nil
}

// lock takes the store-wide file lock, exclusive for writers.
func (s *Store) lock(exclusive bool) (func(), error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, err
	}
	fl := flock.New(filepath.Join(s.dir, lockFileName))
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)

	var locked bool
	var err error
	if exclusive {
		locked, err = fl.TryLockContext(ctx, lockRetry)
	} else {
		locked, err = fl.TryRLockContext(ctx, lockRetry)
	}
	if !locked || err != nil {
		cancel()
		return nil, fmt.Errorf("cache lock busy after %s", lockTimeout)
	}

	return func() {
		_ = fl.Unlock()
		cancel()
	}, nil
}
