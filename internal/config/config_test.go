package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_FromEnvironment(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SAFEHAVEN_ADDR", ":9090")
	t.Setenv("SAFEHAVEN_DB", filepath.Join(tmpDir, "custom.db"))
	t.Setenv("SAFEHAVEN_LOG_DIR", filepath.Join(tmpDir, "logs"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
	}
	if cfg.DBPath != filepath.Join(tmpDir, "custom.db") {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.LogDir != filepath.Join(tmpDir, "logs") {
		t.Errorf("LogDir = %q", cfg.LogDir)
	}
}

func TestLoad_DefaultAddr(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SAFEHAVEN_ADDR", "")
	t.Setenv("SAFEHAVEN_DB", filepath.Join(tmpDir, "data.db"))
	t.Setenv("SAFEHAVEN_LOG_DIR", filepath.Join(tmpDir, "logs"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want default :8080", cfg.Addr)
	}
}
