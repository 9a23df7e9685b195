package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/scheduleplanner/internal/config"
	"github.com/sandeepkv93/scheduleplanner/internal/dispatch"
	"github.com/sandeepkv93/scheduleplanner/internal/logging"
	"github.com/sandeepkv93/scheduleplanner/internal/planner"
	"github.com/sandeepkv93/scheduleplanner/internal/storage"
	"github.com/sandeepkv93/scheduleplanner/internal/update"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "scheduleplanner failed: %v\n", err)
		os.Exit(1)
	}
}

// run starts the TUI, or executes the trailing arguments as a single command
// line and prints the result when any are given. Saved data that failed to
// load is reported on stderr before the command runs.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("scheduleplanner", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML config file (default "+config.DefaultConfigFile+" if present)")
	storageKind := fs.String("storage", "", "storage backend: xml or sqlite")
	taskFile := fs.String("tasks", "", "task XML file")
	weekFile := fs.String("weeks", "", "semester XML file")
	dbPath := fs.String("db", "", "SQLite database file")
	logFile := fs.String("log-file", "", "log file path")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "storage":
			cfg.Storage = strings.ToLower(*storageKind)
		case "tasks":
			cfg.TaskFile = *taskFile
		case "weeks":
			cfg.WeekFile = *weekFile
		case "db":
			cfg.DBPath = *dbPath
		case "log-file":
			cfg.LogFile = *logFile
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, logCloser, err := logging.Open(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	defer logCloser.Close()

	tasks, weeks, closeStorage, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	ctx := context.Background()
	p, err := planner.New(ctx, tasks, weeks, planner.WithLogger(logger))
	if err != nil {
		return err
	}

	d := dispatch.NewDispatcher(p.Execute, cfg.QueueSize)
	d.Start()
	defer d.Stop()
	logger.Info("started", "storage", cfg.Storage)

	warnings := p.Warnings()
	if fs.NArg() > 0 {
		if len(warnings) > 0 {
			fmt.Fprintln(stderr, planner.UserMessage(errors.Join(warnings...)))
		}
		res, err := d.Submit(ctx, strings.Join(fs.Args(), " "))
		if err != nil {
			return errors.New(planner.UserMessage(err))
		}
		fmt.Fprintln(stdout, res.Message)
		return nil
	}

	ui := update.NewModel(d, p, update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())).
		WithStartupErrors(warnings)
	if _, err := tea.NewProgram(ui, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	logger.Info("stopped", "commands", d.Processed())
	return nil
}

func openStorage(cfg config.Config) (storage.TaskRepository, storage.SemesterRepository, func(), error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		repo, err := storage.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return repo, repo, func() { _ = repo.Close() }, nil
	default:
		tasks, err := storage.NewXMLTaskStore(cfg.TaskFile)
		if err != nil {
			return nil, nil, nil, err
		}
		weeks, err := storage.NewXMLWeekStore(cfg.WeekFile)
		if err != nil {
			return nil, nil, nil, err
		}
		return tasks, weeks, func() {}, nil
	}
}
