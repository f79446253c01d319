// Package layoutstore persists split ratios to a generic string-keyed store.
// Reads tolerate missing or corrupt values; writes are best-effort. Callers
// are expected to discard errors and fall back to defaults, so layout keeps
// working in-memory when storage is unavailable.
package layoutstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"splitpane/internal/jsonutil"
	"splitpane/internal/log"
)

// Store is a generic string-keyed persistent store. Get reports ok=false for
// a missing key; Set overwrites any existing value.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// StoredLayout is the serialized form of the two split ratios.
type StoredLayout struct {
	TopPct  float64 `json:"topPct"`
	LeftPct float64 `json:"leftPct"`
}

// Load returns the layout stored under key. Any failure mode — missing key,
// malformed JSON, non-numeric or absent fields — reports ok=false; it never
// returns an error because the caller substitutes defaults regardless.
func Load(s Store, key string) (StoredLayout, bool) {
	if s == nil || key == "" {
		return StoredLayout{}, false
	}
	raw, ok := s.Get(key)
	if !ok {
		return StoredLayout{}, false
	}
	var m map[string]interface{}
	if !jsonutil.UnmarshalSafe([]byte(raw), &m) {
		log.DebugLog.Printf("layoutstore: malformed value at %q, using defaults", key)
		return StoredLayout{}, false
	}
	top, okTop := jsonutil.GetFloat(m, "topPct")
	left, okLeft := jsonutil.GetFloat(m, "leftPct")
	if !okTop || !okLeft {
		log.DebugLog.Printf("layoutstore: value at %q missing numeric ratios, using defaults", key)
		return StoredLayout{}, false
	}
	return StoredLayout{TopPct: top, LeftPct: left}, true
}

// Save serializes the layout and writes it under key. The returned error is
// informational; persistence is best-effort and callers typically discard it.
func Save(s Store, key string, l StoredLayout) error {
	if s == nil || key == "" {
		return nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	if err := s.Set(key, string(data)); err != nil {
		log.WarningLog.Printf("layoutstore: write to %q failed: %v", key, err)
		return err
	}
	return nil
}

// MemStore is a map-backed Store for tests and storage-disabled sessions.
type MemStore struct {
	values map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

// Get implements Store.
func (m *MemStore) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set implements Store.
func (m *MemStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}

const (
	// StateDirEnv is the env var override for the state directory (for testing).
	StateDirEnv = "SPLITPANE_STATE_DIR"
	// DefaultStateBase is the default state directory under the user's home.
	DefaultStateBase = ".splitpane"
)

// FileStore keeps one JSON file per key in a directory.
// Layout: ~/.splitpane/<key>.json
type FileStore struct {
	baseDir string
}

// NewFileStore creates a store rooted at the user's home + DefaultStateBase,
// or at the path in SPLITPANE_STATE_DIR if set.
func NewFileStore() (*FileStore, error) {
	base := os.Getenv(StateDirEnv)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, DefaultStateBase)
	}
	return &FileStore{baseDir: base}, nil
}

// path returns the file path for a key, normalized to a safe filename.
func (f *FileStore) path(key string) string {
	normalized := strings.ToLower(strings.ReplaceAll(key, " ", "-"))
	normalized = strings.ReplaceAll(normalized, string(filepath.Separator), "-")
	return filepath.Join(f.baseDir, normalized+".json")
}

// Get implements Store. A missing or unreadable file reports ok=false.
func (f *FileStore) Get(key string) (string, bool) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Set implements Store. Creates the state directory on first write.
func (f *FileStore) Set(key, value string) error {
	if err := os.MkdirAll(f.baseDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path(key), []byte(value), 0o644)
}
