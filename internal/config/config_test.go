package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envDB, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !strings.HasSuffix(cfg.DB, DefaultDBFile) {
		t.Errorf("default DB = %q, want suffix %q", cfg.DB, DefaultDBFile)
	}
	if cfg.Compact {
		t.Error("compact should default to false")
	}
}

func TestLoadExplicitFile(t *testing.T) {
	t.Setenv(envDB, "")

	path := filepath.Join(t.TempDir(), "htrackr.toml")
	content := "db = \"/tmp/elsewhere.db\"\ncompact = true\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DB != "/tmp/elsewhere.db" {
		t.Errorf("DB = %q, want /tmp/elsewhere.db", cfg.DB)
	}
	if !cfg.Compact {
		t.Error("compact = false, want true")
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("Load() with missing explicit file succeeded, want error")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htrackr.toml")
	if err := os.WriteFile(path, []byte("db = \"/tmp/from-file.db\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(envDB, "/tmp/from-env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DB != "/tmp/from-env.db" {
		t.Errorf("DB = %q, want env value", cfg.DB)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htrackr.toml")
	if err := os.WriteFile(path, []byte("db = [unclosed\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed TOML succeeded, want error")
	}
}
