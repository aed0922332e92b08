package main

import (
	"errors"
	"fmt"
	"os"

	"triangles/internal/commands"
	"triangles/internal/env"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
	}
	reg := commands.NewRegistry("run")
	registerRun(reg)
	registerFrame(reg, os.Stdout)
	registerInitConfig(reg, os.Stdout)

	if err := reg.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, commands.ErrUsage) {
			fmt.Fprintln(os.Stderr, "commands:")
			reg.Usage(os.Stderr)
			os.Exit(2)
		}
		os.Exit(1)
	}
}
