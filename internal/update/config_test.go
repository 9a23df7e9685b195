package update

import (
	"testing"
	"time"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.HistoryLimit != 100 || cfg.TableHeight != 12 {
		t.Fatalf("unexpected layout defaults: %+v", cfg)
	}
	if cfg.CommandTimeout != 5*time.Second || cfg.StatusTimeout != 4*time.Second || cfg.GlamourStyle != "dark" {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if cfg.ShowHelpOnStart {
		t.Fatal("expected help hidden on start by default")
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("PLANNER_UI_HISTORY_LIMIT", "20")
	t.Setenv("PLANNER_UI_TABLE_HEIGHT", "8")
	t.Setenv("PLANNER_UI_PANE_WIDTH", "70")
	t.Setenv("PLANNER_UI_COMMAND_TIMEOUT_SECONDS", "2")
	t.Setenv("PLANNER_UI_STATUS_SECONDS", "9")
	t.Setenv("PLANNER_UI_GLAMOUR_STYLE", "light")
	t.Setenv("PLANNER_UI_SHOW_HELP", "yes")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.HistoryLimit != 20 || cfg.TableHeight != 8 || cfg.PaneWidth != 70 {
		t.Fatalf("unexpected layout overrides: %+v", cfg)
	}
	if cfg.CommandTimeout != 2*time.Second || cfg.StatusTimeout != 9*time.Second || cfg.GlamourStyle != "light" {
		t.Fatalf("unexpected runtime overrides: %+v", cfg)
	}
	if !cfg.ShowHelpOnStart {
		t.Fatal("expected show help true from env")
	}
}

func TestRuntimeConfigFromEnvIgnoresJunk(t *testing.T) {
	t.Setenv("PLANNER_UI_HISTORY_LIMIT", "-3")
	t.Setenv("PLANNER_UI_SHOW_HELP", "maybe")
	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.HistoryLimit != 100 || cfg.ShowHelpOnStart {
		t.Fatalf("expected defaults kept, got %+v", cfg)
	}
}
