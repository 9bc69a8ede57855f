package session

import (
	"os"
	"testing"
	"time"

	"github.com/seongmin-dev/adcenter/cmd/adcenter/api"
)

func TestFiltersRoundTrip(t *testing.T) {
	filters := SearchFilters{
		CompanyName:          "한빛 미디어",
		CompanySearchKeyword: "한빛",
		Statuses:             []api.Status{api.StatusPending, api.StatusCompleted},
		StartDate:            "2024-06-01",
		EndDate:              "2024-07-01",
	}
	decoded, err := DecodeFilters(filters.Encode())
	if err != nil {
		t.Fatalf("DecodeFilters() error = %v", err)
	}
	if decoded.CompanyName != filters.CompanyName ||
		decoded.CompanySearchKeyword != filters.CompanySearchKeyword ||
		decoded.StartDate != filters.StartDate ||
		decoded.EndDate != filters.EndDate {
		t.Errorf("decoded = %+v, want %+v", decoded, filters)
	}
	if len(decoded.Statuses) != 2 || decoded.Statuses[0] != api.StatusPending || decoded.Statuses[1] != api.StatusCompleted {
		t.Errorf("statuses = %v", decoded.Statuses)
	}
}

func TestStoreSaveLoad(t *testing.T) {
	store := NewStore(t.TempDir())
	filters := SearchFilters{CompanyName: "한빛", Statuses: []api.Status{api.StatusInProgress}}
	if err := store.Save(filters); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, ok := store.Load()
	if !ok {
		t.Fatal("Load() ok = false after Save")
	}
	if loaded.CompanyName != "한빛" || len(loaded.Statuses) != 1 || loaded.Statuses[0] != api.StatusInProgress {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Save(SearchFilters{CompanyName: "한빛"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	store.now = func() time.Time { return time.Now().Add(MaxAge + time.Hour) }
	if _, ok := store.Load(); ok {
		t.Error("Load() ok = true for expired filters")
	}
	// expired state is removed
	if _, err := os.Stat(store.path); !os.IsNotExist(err) {
		t.Error("expired state file not removed")
	}
}

func TestStoreZeroFiltersClear(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Save(SearchFilters{CompanyName: "한빛"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(SearchFilters{}); err != nil {
		t.Fatalf("Save(zero) error = %v", err)
	}
	if _, ok := store.Load(); ok {
		t.Error("Load() ok = true after clearing")
	}
}

func TestStoreMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, ok := store.Load(); ok {
		t.Error("Load() ok = true with no state file")
	}
}

func TestStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := os.WriteFile(store.path, []byte("%zz;;not-a-query"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.Load(); ok {
		t.Error("Load() ok = true for corrupt state")
	}
}
