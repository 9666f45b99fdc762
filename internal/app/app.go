// Package app is the root bubbletea model: it turns terminal input into
// gestures and canvas edits and lays out the header, stage and status bar.
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stickers/internal/app/popupctl"
	"github.com/llehouerou/stickers/internal/canvas"
	"github.com/llehouerou/stickers/internal/config"
	"github.com/llehouerou/stickers/internal/gesture"
	"github.com/llehouerou/stickers/internal/keymap"
	"github.com/llehouerou/stickers/internal/logging"
	"github.com/llehouerou/stickers/internal/ui/stage"
	"github.com/llehouerou/stickers/internal/ui/statusbar"
)

// Model is the root application model containing all state.
type Model struct {
	Canvas   *canvas.Canvas
	Gestures *gesture.Tracker
	Popups   *popupctl.Manager
	Keys     *keymap.Resolver
	Status   statusbar.Model
	Geometry stage.Geometry

	Selected     string
	Message      string
	IsError      bool
	Focused      bool
	PinchVersion int
	Width        int
	Height       int

	palette     []string
	paletteNext int
	snapDegrees float64
	stepDegrees float64
	log         *slog.Logger
}

// New creates the application model for a canvas.
func New(cfg *config.Config, c *canvas.Canvas, log *slog.Logger) Model {
	if log == nil {
		log = logging.NewNop()
	}
	keys := keymap.Default()
	geo := cfg.GetCanvasConfig()
	rot := cfg.GetRotationConfig()
	return Model{
		Canvas:   c,
		Gestures: &gesture.Tracker{},
		Popups:   popupctl.New(),
		Keys:     keys,
		Status:   statusbar.New(keys),
		Geometry: stage.Geometry{
			CellWidth:  geo.CellWidth,
			CellHeight: geo.CellHeight,
			BaseSize:   geo.BaseSize,
		},
		Focused:     true,
		palette:     cfg.GetPalette(),
		snapDegrees: rot.SnapDegrees,
		stepDegrees: rot.StepDegrees,
		log:         log,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// ShowError opens the error popup, e.g. for a startup failure.
func (m *Model) ShowError(msg string) {
	m.Popups.ShowError(msg)
}
