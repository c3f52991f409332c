package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sgrette/perch/internal/clock"
	"github.com/sgrette/perch/internal/config"
	"github.com/sgrette/perch/internal/prefs"
	"github.com/sgrette/perch/internal/timer"
	"github.com/sgrette/perch/internal/ui"
)

// Options configure the perch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/perch/prefs.toml
	Mode       string // "up" or "down"; empty uses the config value
	Target     string // countdown target override ("90", "5m"); empty uses the config value
	TickEvery  time.Duration
}

// Run boots the perch TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if opts.Mode != "" {
		cfg.Mode, err = config.ParseMode(opts.Mode)
		if err != nil {
			return err
		}
	}
	if opts.Target != "" {
		cfg.TargetSeconds, err = config.ParseTarget(opts.Target)
		if err != nil {
			return err
		}
	}
	if opts.TickEvery > 0 {
		cfg.TickInterval = opts.TickEvery
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	t := timer.New()
	t.SetMode(cfg.Mode)
	t.SetTargetSeconds(cfg.TargetSeconds)

	uiOpts := ui.Options{
		Context:   ctx,
		Clock:     clock.System{},
		Timer:     t,
		Config:    cfg,
		ThemeName: userPrefs.Theme,
		Compact:   userPrefs.Compact,
		PrefsPath: opts.PrefsPath,
	}
	if err := ui.Run(uiOpts); err != nil {
		// Context cancellation (SIGINT/SIGTERM) is a normal exit.
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
