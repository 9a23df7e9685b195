package update

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/scheduleplanner/internal/commands"
	"github.com/sandeepkv93/scheduleplanner/internal/planner"
)

// Submitter runs one command line; the dispatcher satisfies it.
type Submitter interface {
	Submit(ctx context.Context, raw string) (commands.Result, error)
}

// SnapshotSource exposes what the UI should draw after a command.
type SnapshotSource interface {
	Snapshot() planner.Snapshot
}

type StatusBar struct {
	Text    string
	IsError bool
}

type Model struct {
	Title       string
	Status      StatusBar
	Keys        KeyMap
	HelpVisible bool
	Busy        bool
	Quitting    bool
	LastError   error
	LastInput   string
	Output      string
	OutputError bool
	Snapshot    planner.Snapshot
	History     History

	submitter Submitter
	source    SnapshotSource
	cfg       RuntimeConfig
	width     int
	statusSeq int
	startup   []error

	commandInput textinput.Model
	taskTable    table.Model
	helpViewport viewport.Model
	weekProgress progress.Model
	busySpinner  spinner.Model
	helpModel    help.Model
}

// CommandResultMsg carries a finished command and the state after it.
type CommandResultMsg struct {
	Input    string
	Result   commands.Result
	Err      error
	Snapshot planner.Snapshot
}

// ClearStatusMsg expires the status line set under the same Seq; a newer
// status survives it.
type ClearStatusMsg struct {
	Seq int
}

// AppErrorMsg reports a problem that did not come from a typed command.
type AppErrorMsg struct {
	Err error
}

func NewModel(submitter Submitter, source SnapshotSource, cfg RuntimeConfig) Model {
	cfg = mergeDefaults(cfg)
	m := Model{
		Title:       planner.DefaultTitle,
		Keys:        DefaultKeyMap(),
		HelpVisible: cfg.ShowHelpOnStart,
		History:     NewHistory(cfg.HistoryLimit),
		submitter:   submitter,
		source:      source,
		cfg:         cfg,
	}
	m.initBubbleComponents()
	if source != nil {
		m.applySnapshot(source.Snapshot())
	}
	return m
}

// WithStartupErrors queues load problems to be shown once the program starts.
func (m Model) WithStartupErrors(errs []error) Model {
	m.startup = slices.Clone(errs)
	return m
}

func mergeDefaults(cfg RuntimeConfig) RuntimeConfig {
	def := DefaultRuntimeConfig()
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = def.HistoryLimit
	}
	if cfg.TableHeight <= 0 {
		cfg.TableHeight = def.TableHeight
	}
	if cfg.PaneWidth <= 0 {
		cfg.PaneWidth = def.PaneWidth
	}
	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = def.CommandTimeout
	}
	if cfg.StatusTimeout <= 0 {
		cfg.StatusTimeout = def.StatusTimeout
	}
	if cfg.GlamourStyle == "" {
		cfg.GlamourStyle = def.GlamourStyle
	}
	return cfg
}
