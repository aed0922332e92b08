package main

import (
	"flag"
	"io"
	"os"

	"triangles/internal/app"
	"triangles/internal/commands"
	"triangles/internal/config"
	"triangles/internal/debug"
	"triangles/internal/graphics"
	"triangles/internal/logger"
	"triangles/internal/render"
	"triangles/internal/scene"
)

// loadConfig reads the config file, then applies TRIANGLES_* variables and a -layout flag, in that order.
func loadConfig(path, layout string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if layout != "" {
		if _, err := scene.ParseLayout(layout); err != nil {
			return cfg, err
		}
		cfg.Layout = layout
	}
	return cfg, nil
}

func registerRun(reg *commands.Registry) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfgPath := fs.String("config", config.DefaultPath, "config file")
	layout := fs.String("layout", "", "single or stacked (overrides config)")
	reg.Register("run", "open the window and animate the triangles (default)", fs, func() error {
		cfg, err := loadConfig(*cfgPath, *layout)
		if err != nil {
			return err
		}
		return run(cfg)
	})
}

func run(cfg config.Config) error {
	log := logger.New(logger.DefaultPath, os.Stdout)

	win, err := graphics.Open(graphics.Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		TargetFPS:  cfg.TargetFPS,
		Background: cfg.Background,
		AdvanceKey: cfg.AdvanceKey,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	pipe := render.New(log)
	defer pipe.Close()

	layout := cfg.SceneLayout()
	overlay := debug.New(layout.String(), cfg.ShowFPS)
	win.SetOverlay(overlay.Draw)

	a := app.New(app.Options{
		Layout:    layout,
		Amplitude: cfg.Amplitude,
		OnSelect: func(n int) {
			overlay.SetStatus(debug.ObjectStatus(n, cfg.AdvanceKey))
		},
	}, log)
	a.Run(win, pipe)
	return nil
}
