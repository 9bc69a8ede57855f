package session

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxAge is how long saved filters stay valid.
const MaxAge = 7 * 24 * time.Hour

const (
	stateDirName    = "adcenter"
	filtersFileName = "search-filters"
	savedAtKey      = "savedAt"
)

// Store persists search filters to a state file. All failures are
// non-fatal: a broken or missing state file just means no saved filters.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore creates a store rooted at dir, or under the user config
// directory when dir is empty.
func NewStore(dir string) *Store {
	if dir == "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(configDir, stateDirName)
		} else {
			dir = "." + stateDirName
		}
	}
	return &Store{path: filepath.Join(dir, filtersFileName), now: time.Now}
}

// Save writes the filters with a timestamp. Zero filters clear the file.
func (s *Store) Save(filters SearchFilters) error {
	if filters.IsZero() {
		s.Clear()
		return nil
	}
	encoded := filters.Encode() + "&" + savedAtKey + "=" + s.now().UTC().Format(time.RFC3339)
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(encoded), 0o600)
}

// Load reads the saved filters. Missing, unreadable or expired state
// yields zero filters and ok=false.
func (s *Store) Load() (SearchFilters, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return SearchFilters{}, false
	}
	encoded := strings.TrimSpace(string(data))
	filters, err := DecodeFilters(encoded)
	if err != nil {
		return SearchFilters{}, false
	}
	savedAt, err := savedTime(encoded)
	if err != nil || s.now().Sub(savedAt) > MaxAge {
		s.Clear()
		return SearchFilters{}, false
	}
	if filters.IsZero() {
		return SearchFilters{}, false
	}
	return filters, true
}

// Clear removes the saved filters.
func (s *Store) Clear() {
	_ = os.Remove(s.path)
}

func savedTime(encoded string) (time.Time, error) {
	for _, pair := range strings.Split(encoded, "&") {
		if value, ok := strings.CutPrefix(pair, savedAtKey+"="); ok {
			return time.Parse(time.RFC3339, value)
		}
	}
	return time.Time{}, os.ErrNotExist
}
