// Package paramcache persists the AVM2 extractor's output on disk so the
// proxy does not re-download and re-parse the Flash client on every
// restart. Per spec.md §6 "Process-wide state & filesystem": one JSON
// cache file keyed by the client download URL, re-extracted when the
// live URL no longer matches the cached one.
package paramcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"
)

const cacheFileName = "parameters.json"

// Parameters is the cached shape of everything the extractor produces,
// mirroring original_source/rotmg_packets/src/parameters.rs's Parameters.
type Parameters struct {
	RC4Hex         string           `json:"rc4"`
	Version        string           `json:"version"`
	Port           uint16           `json:"port"`
	TutorialGameID int32            `json:"tutorial_game_id"`
	NexusGameID    int32            `json:"nexus_game_id"`
	RandomGameID   int32            `json:"random_game_id"`
	PacketMappings map[string]uint8 `json:"packets"`
}

// entry is the on-disk envelope: the client URL the data was extracted
// from, its content digest (a second staleness signal beside the URL —
// the same URL can serve a rebuilt client with different bytes), and
// the extracted parameters themselves.
type entry struct {
	ClientURL    string        `json:"client_url"`
	ClientDigest digest.Digest `json:"client_digest"`
	Params       Parameters    `json:"params"`
}

// Cache reads and writes the on-disk parameter cache in dataDir.
type Cache struct {
	path string
}

// New returns a cache rooted at dataDir, creating the directory if needed.
func New(dataDir string) (*Cache, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("paramcache: creating data dir %s: %w", dataDir, err)
	}
	return &Cache{path: filepath.Join(dataDir, cacheFileName)}, nil
}

// Load reads the cached entry, if any. The second return value is false
// if no cache file exists yet (not an error).
func (c *Cache) Load() (clientURL string, clientDigest digest.Digest, params Parameters, ok bool, err error) {
	data, readErr := os.ReadFile(c.path)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return "", "", Parameters{}, false, nil
		}
		return "", "", Parameters{}, false, fmt.Errorf("paramcache: reading %s: %w", c.path, readErr)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return "", "", Parameters{}, false, fmt.Errorf("paramcache: parsing %s: %w", c.path, err)
	}
	return e.ClientURL, e.ClientDigest, e.Params, true, nil
}

// Save writes the extracted parameters, recording the client URL and a
// content digest of the client binary they were extracted from.
func (c *Cache) Save(clientURL string, clientBytes []byte, params Parameters) error {
	e := entry{
		ClientURL:    clientURL,
		ClientDigest: digest.FromBytes(clientBytes),
		Params:       params,
	}

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("paramcache: encoding cache entry: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("paramcache: writing %s: %w", c.path, err)
	}
	return nil
}

// Stale reports whether clientBytes' content digest differs from the
// cached digest. It compares content only; the cached URL is checked
// separately by the caller.
func Stale(cached digest.Digest, clientBytes []byte) bool {
	return cached != digest.FromBytes(clientBytes)
}
