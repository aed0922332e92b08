package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"triangles/internal/animation"
	"triangles/internal/app"
	"triangles/internal/commands"
	"triangles/internal/config"
	"triangles/internal/scene"
)

// registerFrame adds the headless "frame" command, which prints to w what one object looks like at a given time.
func registerFrame(reg *commands.Registry, w io.Writer) {
	fs := flag.NewFlagSet("frame", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfgPath := fs.String("config", config.DefaultPath, "config file")
	layout := fs.String("layout", "", "single or stacked (overrides config)")
	id := fs.Int("id", 1, "object number, 1-5")
	t := fs.Float64("t", 0, "seconds since start")
	reg.Register("frame", "print the model matrix and colors of one object at time t", fs, func() error {
		cfg, err := loadConfig(*cfgPath, *layout)
		if err != nil {
			return err
		}
		if *id < 1 || *id > scene.Count {
			return fmt.Errorf("%w: -id must be between 1 and %d", commands.ErrUsage, scene.Count)
		}
		obj := scene.New(cfg.SceneLayout(), cfg.Amplitude)[*id-1]
		return app.Describe(w, app.Draw{Object: obj, Frame: animation.Compute(obj, float32(*t))})
	})
}

func registerInitConfig(reg *commands.Registry, w io.Writer) {
	fs := flag.NewFlagSet("init-config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfgPath := fs.String("config", config.DefaultPath, "config file to write")
	force := fs.Bool("force", false, "overwrite an existing file")
	reg.Register("init-config", "write the default config file", fs, func() error {
		if _, err := os.Stat(*cfgPath); err == nil && !*force {
			return fmt.Errorf("%s already exists (use -force to overwrite)", *cfgPath)
		}
		if err := config.Save(*cfgPath, config.Default()); err != nil {
			return err
		}
		fmt.Fprintln(w, "wrote", *cfgPath)
		return nil
	})
}
