package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Storage != StorageXML || cfg.WeekFile != "rangeofweek.xml" {
		t.Fatalf("unexpected storage defaults: %+v", cfg)
	}
	if cfg.QueueSize != 16 || cfg.LogLevel != "info" {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PLANNER_TASK_FILE", "custom/tasks.xml")
	t.Setenv("PLANNER_WEEK_FILE", "custom/weeks.xml")
	t.Setenv("PLANNER_STORAGE", "SQLITE")
	t.Setenv("PLANNER_DB_PATH", "custom/planner.db")
	t.Setenv("PLANNER_LOG_LEVEL", "debug")
	t.Setenv("PLANNER_QUEUE_SIZE", "64")

	cfg := FromEnv(Default())
	if cfg.TaskFile != "custom/tasks.xml" || cfg.WeekFile != "custom/weeks.xml" {
		t.Fatalf("unexpected file overrides: %+v", cfg)
	}
	if cfg.Storage != StorageSQLite || cfg.DBPath != "custom/planner.db" {
		t.Fatalf("unexpected storage overrides: %+v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.QueueSize != 64 {
		t.Fatalf("unexpected runtime overrides: %+v", cfg)
	}
}

func TestFromEnvIgnoresBadInt(t *testing.T) {
	t.Setenv("PLANNER_QUEUE_SIZE", "many")
	if cfg := FromEnv(Default()); cfg.QueueSize != 16 {
		t.Fatalf("expected default queue size, got %d", cfg.QueueSize)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.toml")
	body := `
task_file = "from-file.xml"
log_format = "json"
queue_size = 8
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PLANNER_QUEUE_SIZE", "32")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TaskFile != "from-file.xml" || cfg.LogFormat != "json" {
		t.Fatalf("expected file values, got %+v", cfg)
	}
	if cfg.QueueSize != 32 {
		t.Fatalf("expected env to override file, got %d", cfg.QueueSize)
	}
	if cfg.WeekFile != "rangeofweek.xml" {
		t.Fatalf("expected untouched default, got %q", cfg.WeekFile)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for explicit missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("storage = \"yaml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatal("expected error for unknown storage")
	}
}
