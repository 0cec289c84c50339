package paramcache

import (
	"path/filepath"
	"testing"

	"github.com/opencontainers/go-digest"
)

func sampleParams() Parameters {
	return Parameters{
		RC4Hex:         "0102030405",
		Version:        "X29.1.0",
		Port:           2050,
		TutorialGameID: -2,
		NexusGameID:    -3,
		RandomGameID:   -1,
		PacketMappings: map[string]uint8{"Failure": 0, "CreateSuccess": 1},
	}
}

func TestLoadMissingCacheIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	cache, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, _, _, ok, err := cache.Load()
	if err != nil {
		t.Fatalf("Load on empty cache: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for a cache that was never saved")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cache, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	clientBytes := []byte("pretend this is a swf")
	params := sampleParams()

	if err := cache.Save("https://example.test/client.swf", clientBytes, params); err != nil {
		t.Fatalf("Save: %v", err)
	}

	url, dgst, loaded, ok, err := cache.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after Save")
	}
	if url != "https://example.test/client.swf" {
		t.Fatalf("url = %q", url)
	}
	if dgst != digest.FromBytes(clientBytes) {
		t.Fatalf("digest mismatch: got %s", dgst)
	}
	if loaded.RC4Hex != params.RC4Hex || loaded.Port != params.Port {
		t.Fatalf("loaded params = %+v, want %+v", loaded, params)
	}
	if loaded.PacketMappings["CreateSuccess"] != 1 {
		t.Fatalf("loaded packet mappings = %+v", loaded.PacketMappings)
	}
}

func TestStaleDetectsChangedContent(t *testing.T) {
	original := []byte("version one")
	changed := []byte("version two")
	cached := digest.FromBytes(original)

	if Stale(cached, original) {
		t.Fatal("identical content reported stale")
	}
	if !Stale(cached, changed) {
		t.Fatal("changed content not reported stale")
	}
}

func TestCacheFileLocation(t *testing.T) {
	dir := t.TempDir()
	cache, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cache.path != filepath.Join(dir, cacheFileName) {
		t.Fatalf("path = %q", cache.path)
	}
}
