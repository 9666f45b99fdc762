package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stickers/internal/app"
	"github.com/llehouerou/stickers/internal/canvas"
	"github.com/llehouerou/stickers/internal/config"
	"github.com/llehouerou/stickers/internal/errmsg"
	"github.com/llehouerou/stickers/internal/logging"
)

func initialModel() (app.Model, io.Closer, error) {
	// A broken config file should not keep the canvas from opening:
	// fall back to defaults and report the error in a popup.
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = &config.Config{}
	}

	log, closer, err := logging.Open(logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return app.Model{}, nil, fmt.Errorf("%s: %w", errmsg.OpLogOpen, err)
	}

	c := canvas.New(cfg.Seed(), canvas.Options{
		MaxHistory:      cfg.GetMaxHistory(),
		Limits:          cfg.GetScaleLimits(),
		UndoCooldown:    cfg.UndoCooldown(),
		DuplicateOffset: cfg.GetDuplicateOffset(),
		Logger:          log,
	})

	m := app.New(cfg, c, log)
	if cfgErr != nil {
		log.Error("config load failed", "error", cfgErr)
		m.ShowError(errmsg.Format(errmsg.OpConfigLoad, cfgErr))
	}
	log.Info("started", "stickers", c.Current().Len(), "max_history", c.MaxHistory())
	return m, closer, nil
}

func main() {
	m, closer, err := initialModel()
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
	defer closer.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		closer.Close()
		os.Exit(1)
	}
}
