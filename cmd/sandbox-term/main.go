package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"falling-sand/internal/app"
	"falling-sand/internal/sims/sand"
	"falling-sand/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width = 0
	cfg.Height = 0
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	// Without -w/-h the grid fills the terminal: two grid rows per text row
	// and one row left for the status line.
	if cfg.Width <= 0 || cfg.Height <= 0 {
		w, h := screen.Size()
		cfg.Width = w
		cfg.Height = 2 * (h - 1)
	}
	if cfg.Threads > cfg.Width {
		cfg.Threads = cfg.Width
	}
	sc, err := cfg.SandConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	viewer := term.New(screen, sand.NewWithConfig(sc), cfg.TPS)
	if err := viewer.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
