package playercache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/preston-bernstein/sleeper-league-service/internal/domain/players"
)

// FSStore reads and writes player dictionaries under a base directory.
// Writes within one process are serialized; there is no cross-process locking.
type FSStore struct {
	basePath string
	mu       sync.Mutex
}

// NewFSStore constructs an FS-backed dictionary store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// BasePath exposes the store root path.
func (s *FSStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Load reads the cached dictionary for sport along with when it was fetched.
// The manifest's fetchedAt is preferred; files written by other tools fall back to their mtime.
func (s *FSStore) Load(sport string) (players.Dictionary, time.Time, error) {
	if s == nil {
		return nil, time.Time{}, errors.New("player cache store not configured")
	}
	path := DictionaryPath(s.basePath, sport)
	f, err := os.Open(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer f.Close()

	var dict players.Dictionary
	if err := json.NewDecoder(f).Decode(&dict); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if dict == nil {
		dict = players.Dictionary{}
	}

	if m, err := ReadManifest(s.basePath); err == nil {
		if meta, ok := m.Sports[sport]; ok && !meta.FetchedAt.IsZero() {
			return dict, meta.FetchedAt, nil
		}
	}
	info, err := f.Stat()
	if err != nil {
		return dict, time.Time{}, nil
	}
	return dict, info.ModTime(), nil
}

// Write persists raw for sport atomically and records it in the manifest.
// Identical content is not rewritten, but the manifest timestamp is still refreshed.
func (s *FSStore) Write(sport string, raw []byte, count int, fetchedAt time.Time) error {
	if s == nil {
		return errors.New("player cache store not configured")
	}
	if sport == "" {
		return errors.New("sport required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	target := DictionaryPath(s.basePath, sport)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err != nil || !bytes.Equal(existing, raw) {
		if err := writeAtomic(target, raw); err != nil {
			return err
		}
	}

	m, _ := ReadManifest(s.basePath)
	m.Sports[sport] = SportMeta{FetchedAt: fetchedAt.UTC(), Count: count}
	return writeManifest(s.basePath, m, fetchedAt)
}
