package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/sgrette/perch/internal/timer"
)

// Config captures the startup settings for perch.
type Config struct {
	Mode          timer.Mode
	TargetSeconds int
	TickInterval  time.Duration
	FlashCount    int
	FlashInterval time.Duration
}

const (
	defaultConfigPath    = "~/.config/perch/config.toml"
	defaultTickInterval  = 50 * time.Millisecond
	defaultFlashCount    = 8
	defaultFlashInterval = 160 * time.Millisecond

	// minTickInterval keeps a misconfigured cadence from busy-looping
	// the render path.
	minTickInterval = 15 * time.Millisecond
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mode:          timer.ModeUp,
		TargetSeconds: timer.DefaultTargetSeconds,
		TickInterval:  defaultTickInterval,
		FlashCount:    defaultFlashCount,
		FlashInterval: defaultFlashInterval,
	}
}

// Load locates and parses the perch config, falling back to defaults when
// the file is missing. Empty or absent fields keep their defaults;
// malformed values are reported as errors.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Mode       string `toml:"mode"`
		Target     string `toml:"target"`
		TickMs     int    `toml:"tick_ms"`
		FlashCount int    `toml:"flash_count"`
		FlashMs    int    `toml:"flash_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if mode := strings.TrimSpace(raw.Mode); mode != "" {
		cfg.Mode, err = ParseMode(mode)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if target := strings.TrimSpace(raw.Target); target != "" {
		cfg.TargetSeconds, err = ParseTarget(target)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if raw.TickMs > 0 {
		cfg.TickInterval = time.Duration(raw.TickMs) * time.Millisecond
	}
	if cfg.TickInterval < minTickInterval {
		cfg.TickInterval = minTickInterval
	}

	if raw.FlashCount > 0 {
		cfg.FlashCount = raw.FlashCount
	}
	if raw.FlashMs > 0 {
		cfg.FlashInterval = time.Duration(raw.FlashMs) * time.Millisecond
	}

	return cfg, nil
}

// ParseMode maps a config or flag value to a counting direction.
func ParseMode(value string) (timer.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "up", "stopwatch":
		return timer.ModeUp, nil
	case "down", "countdown":
		return timer.ModeDown, nil
	}
	return timer.ModeUp, fmt.Errorf("mode %q: want up or down", value)
}

// ParseTarget reads a countdown target as either a Go duration string
// ("5m", "1h30m") or a plain number of seconds. Negative targets clamp
// to zero.
func ParseTarget(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("target is empty")
	}
	if secs, err := strconv.Atoi(trimmed); err == nil {
		if secs < 0 {
			secs = 0
		}
		return secs, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("target %q: %w", value, err)
	}
	if d < 0 {
		d = 0
	}
	return int(d / time.Second), nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
