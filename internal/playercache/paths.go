package playercache

import (
	"fmt"
	"path/filepath"
)

const manifestFile = "manifest.json"

// DictionaryPath builds the path to the cached player dictionary for sport.
func DictionaryPath(basePath, sport string) string {
	return filepath.Join(basePath, fmt.Sprintf("sleeper_players_%s.json", sport))
}

// ManifestPath builds the path to the cache manifest.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestFile)
}
