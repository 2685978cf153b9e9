// Package main is the entry point for the terminal tamagotchi.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tsailenn/cli-tamagotchi/internal/config"
	"github.com/Tsailenn/cli-tamagotchi/internal/game"
	"github.com/Tsailenn/cli-tamagotchi/internal/gamedata"
	"github.com/Tsailenn/cli-tamagotchi/internal/input"
	"github.com/Tsailenn/cli-tamagotchi/internal/telemetry"
	"github.com/Tsailenn/cli-tamagotchi/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "tamagotchi.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		return 1
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracing, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: cfg.Telemetry.ServiceVersion,
	})
	if err != nil {
		slog.Warn("telemetry: setup failed, running without tracing", "err", err)
	}
	defer func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			slog.Error("telemetry: shutdown failed", "err", err)
		}
	}()

	commands, err := gamedata.LoadCommandRegistry()
	if err != nil {
		slog.Error("gamedata: failed to load commands", "err", err)
		return 1
	}

	collector := input.NewCollector()
	var display game.Display

	switch cfg.Display {
	case config.DisplayScreen:
		screen, err := ui.NewScreen()
		if err != nil {
			slog.Error("ui: failed to open screen", "err", err)
			return 1
		}
		defer screen.Close()

		renderer := ui.NewScreenRenderer(screen, commands.All())
		keys := &input.KeyReader{
			Source:    screen,
			Collector: collector,
			OnQuit:    stop,
			OnResize:  renderer.Redraw,
		}
		go keys.Run()
		display = renderer
	default:
		go collector.ReadLines(os.Stdin)
		display = ui.NewTextRenderer(os.Stdout, cfg.Symbols.On, cfg.Symbols.Off)
	}

	slog.Info("game: hatched", "tick_interval", cfg.TickInterval, "display", cfg.Display)
	g := game.New(game.Config{
		TickInterval: cfg.TickInterval,
		Tracer:       tracing.Tracer("game"),
	}, commands, collector, display)
	err = g.Run(ctx)

	switch {
	case err == nil:
		if cfg.Display == config.DisplayScreen {
			// Leave the dead pet on screen until the player quits.
			<-ctx.Done()
		}
		return 0
	case errors.Is(err, context.Canceled):
		slog.Info("game: interrupted", "ticks", g.Ticks())
		return 0
	default:
		slog.Error("game: stopped", "err", err)
		return 1
	}
}

// newLogger builds a text logger at the configured level. In screen mode without a
// log file, logs are discarded so they do not corrupt the display.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case cfg.Log.Path != "":
		f, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case cfg.Display == config.DisplayScreen:
		w = io.Discard
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}
