package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/adbpilot/adbpilot/internal/adb"
	"github.com/adbpilot/adbpilot/internal/backend"
	"github.com/adbpilot/adbpilot/internal/keymap"
	"github.com/adbpilot/adbpilot/internal/server"
	"github.com/adbpilot/adbpilot/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	ADBPath      string
	Serial       string
	KeyMapPath   string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	PollInterval time.Duration
}

const defaultPollInterval = 2 * time.Second

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	adbPath, err := adb.ResolvePath(cfg.ADBPath)
	if err != nil {
		return fmt.Errorf("resolve adb path: %w", err)
	}

	km := keymap.Default()
	if cfg.KeyMapPath != "" {
		km, err = keymap.Load(cfg.KeyMapPath)
		if err != nil {
			return fmt.Errorf("load key map: %w", err)
		}
	}

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	watcher := backend.NewWatcher(adbPath, interval)
	defer watcher.Stop()

	manager := server.NewManager(adbPath)
	model := ui.NewModel(ui.Params{
		KeyMap:     km,
		Manager:    manager,
		Backend:    watcher,
		Serial:     cfg.Serial,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
