package playercache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest tracks when each sport's dictionary was fetched and how many players it held.
type Manifest struct {
	Version     int                  `json:"version"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Sports      map[string]SportMeta `json:"sports"`
}

// SportMeta describes one cached dictionary.
type SportMeta struct {
	FetchedAt time.Time `json:"fetchedAt"`
	Count     int       `json:"count"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version: 1,
		Sports:  map[string]SportMeta{},
	}
}

// ReadManifest loads the manifest under basePath. A missing or corrupt manifest yields an
// empty one alongside the error.
func ReadManifest(basePath string) (Manifest, error) {
	f, err := os.Open(ManifestPath(basePath))
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	if m.Sports == nil {
		m.Sports = map[string]SportMeta{}
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest, now time.Time) error {
	m.GeneratedAt = now.UTC()
	path := ManifestPath(basePath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

// writeAtomic writes data to a sibling temp file and renames it over path.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
