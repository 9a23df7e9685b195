package update

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// RuntimeConfig tunes the terminal UI only; storage and logging live in
// internal/config.
type RuntimeConfig struct {
	HistoryLimit    int
	TableHeight     int
	PaneWidth       int
	CommandTimeout  time.Duration
	StatusTimeout   time.Duration
	GlamourStyle    string
	ShowHelpOnStart bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		HistoryLimit:    100,
		TableHeight:     12,
		PaneWidth:       58,
		CommandTimeout:  5 * time.Second,
		StatusTimeout:   4 * time.Second,
		GlamourStyle:    "dark",
		ShowHelpOnStart: false,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvInt("PLANNER_UI_HISTORY_LIMIT"); ok && v > 0 {
		cfg.HistoryLimit = v
	}
	if v, ok := getEnvInt("PLANNER_UI_TABLE_HEIGHT"); ok && v > 0 {
		cfg.TableHeight = v
	}
	if v, ok := getEnvInt("PLANNER_UI_PANE_WIDTH"); ok && v > 0 {
		cfg.PaneWidth = v
	}
	if v, ok := getEnvInt("PLANNER_UI_COMMAND_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.CommandTimeout = time.Duration(v) * time.Second
	}
	if v, ok := getEnvInt("PLANNER_UI_STATUS_SECONDS"); ok && v > 0 {
		cfg.StatusTimeout = time.Duration(v) * time.Second
	}
	if v := strings.TrimSpace(os.Getenv("PLANNER_UI_GLAMOUR_STYLE")); v != "" {
		cfg.GlamourStyle = v
	}
	if v, ok := getEnvBool("PLANNER_UI_SHOW_HELP"); ok {
		cfg.ShowHelpOnStart = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
