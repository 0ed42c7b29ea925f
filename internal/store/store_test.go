package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/safehavenapp/safehaven/internal/report"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatal("database file should not exist before creating store")
	}

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file should exist after creating store")
	}
}

func TestNewStore_RunsMigrations(t *testing.T) {
	s := newTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='kv'",
	).Scan(&name)
	if err != nil {
		t.Errorf("kv table should exist after migrations: %v", err)
	}
}

func TestStore_GetSetDelete(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := s.Set("greeting", "hello"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, err := s.Get("greeting")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "hello" {
		t.Errorf("Get() = %q, want %q", value, "hello")
	}

	// Overwrite
	if err := s.Set("greeting", "namaste"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	value, _ = s.Get("greeting")
	if value != "namaste" {
		t.Errorf("Get() after overwrite = %q, want %q", value, "namaste")
	}

	if err := s.Delete("greeting"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get("greeting"); !errors.Is(err, ErrNotFound) {
		t.Error("deleted key should return ErrNotFound")
	}

	// Deleting a missing key is not an error
	if err := s.Delete("greeting"); err != nil {
		t.Errorf("Delete() on missing key error = %v", err)
	}
}

func TestStore_ReportsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reports := []report.Report{
		{
			ID:        "r1",
			Kind:      report.KindSOS,
			Message:   "Emergency SOS activated",
			Location:  &report.Location{Lat: 19.0760, Lng: 72.8777},
			Timestamp: now,
			Status:    report.StatusPending,
		},
		{
			ID:        "r2",
			Kind:      report.KindVoice,
			Message:   "Voice alert",
			Timestamp: now.Add(time.Minute),
			Status:    report.StatusSent,
		},
	}

	if err := s.SaveReports(reports); err != nil {
		t.Fatalf("SaveReports() error = %v", err)
	}

	loaded, err := s.LoadReports()
	if err != nil {
		t.Fatalf("LoadReports() error = %v", err)
	}

	if len(loaded) != len(reports) {
		t.Fatalf("loaded %d reports, want %d", len(loaded), len(reports))
	}
	for i := range loaded {
		if loaded[i].ID != reports[i].ID ||
			loaded[i].Kind != reports[i].Kind ||
			loaded[i].Message != reports[i].Message ||
			loaded[i].Status != reports[i].Status ||
			!loaded[i].Timestamp.Equal(reports[i].Timestamp) {
			t.Errorf("loaded[%d] = %+v, want %+v", i, loaded[i], reports[i])
		}
	}
	if loaded[0].Location == nil || loaded[0].Location.Lat != 19.0760 {
		t.Error("location should survive persistence")
	}
}

func TestStore_LoadReportsMissingKey(t *testing.T) {
	s := newTestStore(t)

	reports, err := s.LoadReports()
	if err != nil {
		t.Fatalf("LoadReports() on fresh store error = %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("fresh store should yield an empty log, got %d reports", len(reports))
	}
}

func TestStore_SaveReportsRewrites(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveReports([]report.Report{{ID: "old"}}); err != nil {
		t.Fatalf("SaveReports() error = %v", err)
	}
	if err := s.SaveReports([]report.Report{{ID: "new-1"}, {ID: "new-2"}}); err != nil {
		t.Fatalf("SaveReports() rewrite error = %v", err)
	}

	loaded, err := s.LoadReports()
	if err != nil {
		t.Fatalf("LoadReports() error = %v", err)
	}
	if len(loaded) != 2 || loaded[0].ID != "new-1" {
		t.Errorf("rewrite should replace the stored sequence, got %+v", loaded)
	}
}

func TestStore_Close(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Errorf("close should not return error: %v", err)
	}

	if _, err := s.DB().Exec("SELECT 1"); err == nil {
		t.Error("DB operations should fail after close")
	}
}
