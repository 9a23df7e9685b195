// Package config resolves runtime settings from defaults, an optional TOML
// file and PLANNER_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const DefaultConfigFile = "scheduleplanner.toml"

const (
	StorageXML    = "xml"
	StorageSQLite = "sqlite"
)

type Config struct {
	TaskFile  string `toml:"task_file"`
	WeekFile  string `toml:"week_file"`
	Storage   string `toml:"storage"`
	DBPath    string `toml:"db_path"`
	LogFile   string `toml:"log_file"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	QueueSize int    `toml:"queue_size"`
}

func Default() Config {
	return Config{
		TaskFile:  "data/scheduleplanner.xml",
		WeekFile:  "rangeofweek.xml",
		Storage:   StorageXML,
		DBPath:    "data/scheduleplanner.db",
		LogFile:   "scheduleplanner.log",
		LogLevel:  "info",
		LogFormat: "text",
		QueueSize: 16,
	}
}

// Load applies the config file at path over the defaults, then the
// environment. An empty path falls back to DefaultConfigFile when present.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
	}
	cfg = FromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("PLANNER_TASK_FILE"); ok {
		cfg.TaskFile = v
	}
	if v, ok := getEnvString("PLANNER_WEEK_FILE"); ok {
		cfg.WeekFile = v
	}
	if v, ok := getEnvString("PLANNER_STORAGE"); ok {
		cfg.Storage = strings.ToLower(v)
	}
	if v, ok := getEnvString("PLANNER_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("PLANNER_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("PLANNER_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvString("PLANNER_LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := getEnvInt("PLANNER_QUEUE_SIZE"); ok && v > 0 {
		cfg.QueueSize = v
	}
	return cfg
}

func (c Config) Validate() error {
	switch c.Storage {
	case StorageXML:
		if strings.TrimSpace(c.TaskFile) == "" {
			return errors.New("config: task_file is required for xml storage")
		}
		if strings.TrimSpace(c.WeekFile) == "" {
			return errors.New("config: week_file is required for xml storage")
		}
	case StorageSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return errors.New("config: db_path is required for sqlite storage")
		}
	default:
		return fmt.Errorf("config: unknown storage %q (want %s or %s)", c.Storage, StorageXML, StorageSQLite)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("config: queue_size must be positive, got %d", c.QueueSize)
	}
	return nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
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
