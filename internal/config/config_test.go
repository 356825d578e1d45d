package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.StoreBackend != "sqlite" {
		t.Fatalf("unexpected default backend: %q", cfg.StoreBackend)
	}
	if cfg.SQLiteDBPath == "" || cfg.OutputDir == "" {
		t.Fatalf("expected non-empty defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("OUTPUT_DIR", "/tmp/reports")
	cfg := Load()
	if cfg.StoreBackend != "memory" || cfg.OutputDir != "/tmp/reports" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"sqlite ok", Config{StoreBackend: "sqlite", SQLiteDBPath: filepath.Join(dir, "db", "fatura.db"), OutputDir: "."}, true},
		{"memory ok", Config{StoreBackend: "memory", OutputDir: "."}, true},
		{"bad backend", Config{StoreBackend: "postgres", OutputDir: "."}, false},
		{"sqlite without path", Config{StoreBackend: "sqlite", OutputDir: "."}, false},
		{"empty output dir", Config{StoreBackend: "memory"}, false},
	}
	for _, tc := range cases {
		err := tc.cfg.Validate()
		if tc.ok && err != nil {
			t.Fatalf("%s: expected ok, got %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
