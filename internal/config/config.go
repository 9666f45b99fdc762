package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/stickers/internal/history"
	"github.com/llehouerou/stickers/internal/sticker"
	"github.com/llehouerou/stickers/internal/transform"
)

const appName = "stickers"

type Config struct {
	MaxHistory     int    `koanf:"max_history"`      // history bound (default: 30)
	UndoDebounceMs *int   `koanf:"undo_debounce_ms"` // undo/redo cooldown, 0 disables (default: 50)
	LogLevel       string `koanf:"log_level"`        // "debug", "info", "warn", "error"

	Scale     ScaleConfig     `koanf:"scale"`
	Rotation  RotationConfig  `koanf:"rotation"`
	Duplicate DuplicateConfig `koanf:"duplicate"`
	Canvas    CanvasConfig    `koanf:"canvas"`

	// Seed snapshot; a built-in arrangement is used when empty.
	Stickers []StickerConfig `koanf:"stickers"`
	// Emoji cycled through by the add action.
	Palette []string `koanf:"palette"`
}

// ScaleConfig bounds sticker scale.
type ScaleConfig struct {
	Min float64 `koanf:"min"` // default: 0.5
	Max float64 `koanf:"max"` // default: 2.0
}

// RotationConfig holds rotation handle and keyboard settings.
type RotationConfig struct {
	SnapDegrees float64 `koanf:"snap_degrees"` // snap increment with shift held (default: 45)
	StepDegrees float64 `koanf:"step_degrees"` // keyboard rotate step (default: 15)
}

// DuplicateConfig holds duplicate placement.
type DuplicateConfig struct {
	Offset float64 `koanf:"offset"` // x and y offset of a copy (default: 20)
}

// CanvasConfig maps canvas points onto terminal cells.
type CanvasConfig struct {
	CellWidth  float64 `koanf:"cell_width"`  // points per column (default: 4)
	CellHeight float64 `koanf:"cell_height"` // points per row (default: 8)
	BaseSize   float64 `koanf:"base_size"`   // sticker side at scale 1 (default: 32)
}

// StickerConfig describes one seed sticker.
type StickerConfig struct {
	ID       string  `koanf:"id"`
	Emoji    string  `koanf:"emoji"`
	X        float64 `koanf:"x"`
	Y        float64 `koanf:"y"`
	Scale    float64 `koanf:"scale"`
	Rotation float64 `koanf:"rotation"`
}

// Load reads the config files in priority order (last wins).
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order; missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/stickers/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// Validate reports every inconsistent setting.
func (c *Config) Validate() error {
	var errs []error

	if c.MaxHistory < 0 {
		errs = append(errs, fmt.Errorf("max_history must be positive, got %d", c.MaxHistory))
	}
	if c.UndoDebounceMs != nil && *c.UndoDebounceMs < 0 {
		errs = append(errs, fmt.Errorf("undo_debounce_ms must not be negative, got %d", *c.UndoDebounceMs))
	}
	if c.Scale.Min < 0 || c.Scale.Max < 0 {
		errs = append(errs, errors.New("scale bounds must not be negative"))
	}
	if c.Scale.Min > 0 && c.Scale.Max > 0 && c.Scale.Min > c.Scale.Max {
		errs = append(errs, fmt.Errorf("scale.min %v is greater than scale.max %v", c.Scale.Min, c.Scale.Max))
	}
	if c.Canvas.CellWidth < 0 || c.Canvas.CellHeight < 0 || c.Canvas.BaseSize < 0 {
		errs = append(errs, errors.New("canvas sizes must not be negative"))
	}

	seen := make(map[string]bool)
	for i, s := range c.Stickers {
		if s.Emoji == "" {
			errs = append(errs, fmt.Errorf("stickers[%d]: emoji is required", i))
		}
		if s.ID == "" {
			continue
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("stickers[%d]: duplicate id %q", i, s.ID))
		}
		seen[s.ID] = true
	}

	return errors.Join(errs...)
}

// GetMaxHistory returns the history bound with the default applied.
func (c *Config) GetMaxHistory() int {
	if c.MaxHistory <= 0 {
		return history.DefaultMax
	}
	return c.MaxHistory
}

// UndoCooldown returns the undo/redo guard cooldown. A configured value of
// zero disables the guard, reported as a negative duration.
func (c *Config) UndoCooldown() time.Duration {
	if c.UndoDebounceMs == nil {
		return history.DefaultCooldown
	}
	if *c.UndoDebounceMs <= 0 {
		return -1
	}
	return time.Duration(*c.UndoDebounceMs) * time.Millisecond
}

// GetScaleLimits returns the scale bounds with defaults applied.
func (c *Config) GetScaleLimits() transform.Limits {
	l := transform.Limits{MinScale: c.Scale.Min, MaxScale: c.Scale.Max}
	if l.MinScale <= 0 {
		l.MinScale = transform.MinScale
	}
	if l.MaxScale <= 0 {
		l.MaxScale = transform.MaxScale
	}
	if l.MinScale > l.MaxScale {
		return transform.DefaultLimits()
	}
	return l
}

// GetRotationConfig returns the rotation settings with defaults applied.
func (c *Config) GetRotationConfig() RotationConfig {
	cfg := c.Rotation
	if cfg.SnapDegrees <= 0 || cfg.SnapDegrees > 180 {
		cfg.SnapDegrees = transform.SnapStep
	}
	if cfg.StepDegrees <= 0 {
		cfg.StepDegrees = 15
	}
	return cfg
}

// GetDuplicateOffset returns the copy offset with the default applied.
func (c *Config) GetDuplicateOffset() float64 {
	if c.Duplicate.Offset == 0 {
		return transform.DuplicateOffset
	}
	return c.Duplicate.Offset
}

// GetCanvasConfig returns the canvas geometry with defaults applied.
func (c *Config) GetCanvasConfig() CanvasConfig {
	cfg := c.Canvas
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = 4
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = 8
	}
	if cfg.BaseSize <= 0 {
		cfg.BaseSize = 32
	}
	return cfg
}

var defaultPalette = []string{"🦊", "🐸", "🐙", "🌵", "🍩", "⭐", "🚀", "🎈"}

// GetPalette returns the emoji palette for new stickers.
func (c *Config) GetPalette() []string {
	if len(c.Palette) == 0 {
		return defaultPalette
	}
	return c.Palette
}

// Seed builds the initial snapshot. Stickers without an id get "seed-N",
// skipping ids taken elsewhere in the list; stickers without a scale get 1,
// then the scale is clamped to the limits.
func (c *Config) Seed() sticker.Snapshot {
	if len(c.Stickers) == 0 {
		return defaultSeed()
	}
	taken := make(map[string]bool, len(c.Stickers))
	for _, s := range c.Stickers {
		if s.ID != "" {
			taken[s.ID] = true
		}
	}
	limits := c.GetScaleLimits()
	seed := make(sticker.Snapshot, 0, len(c.Stickers))
	n := 0
	for i, s := range c.Stickers {
		id := s.ID
		if id == "" {
			if n < i {
				n = i
			}
			for {
				n++
				id = fmt.Sprintf("seed-%d", n)
				if !taken[id] {
					break
				}
			}
			taken[id] = true
		}
		scale := s.Scale
		if scale == 0 {
			scale = 1
		}
		st := sticker.New(id, s.Emoji, s.X, s.Y).
			WithTransform(limits.ClampScale(scale), s.Rotation)
		seed = seed.Append(st)
	}
	return seed
}

func defaultSeed() sticker.Snapshot {
	return sticker.Snapshot{
		sticker.New("seed-1", "🦊", 40, 48),
		sticker.New("seed-2", "🐸", 120, 64).WithRotation(15),
		sticker.New("seed-3", "🐙", 200, 48).WithScale(1.5),
	}
}
