// Package game provides the tick loop that drives the pet.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Tsailenn/cli-tamagotchi/internal/entity"
	"github.com/Tsailenn/cli-tamagotchi/internal/gamedata"
	"github.com/Tsailenn/cli-tamagotchi/internal/telemetry"
	"github.com/Tsailenn/cli-tamagotchi/internal/ui"
)

// Passive change applied once per tick.
const (
	decayHunger   = -1
	decayHealth   = -1
	recoverPoison = 2
)

// ErrInputClosed is returned when the command source goes away. It is fatal.
var ErrInputClosed = errors.New("command input closed")

// CommandSource hands out queued command lines without blocking.
type CommandSource interface {
	Poll() (cmd string, ok bool, err error)
}

// Display shows one tick's report.
type Display interface {
	Show(ui.Report) error
}

// Game owns the pet and advances it one tick at a time.
type Game struct {
	cfg      Config
	pet      *entity.Pet
	commands *gamedata.CommandRegistry
	input    CommandSource
	display  Display
	tracer   trace.Tracer
	tick     int
}

// New creates a game with a freshly hatched pet.
func New(cfg Config, commands *gamedata.CommandRegistry, input CommandSource, display Display) *Game {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultConfig().TickInterval
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}
	return &Game{
		cfg:      cfg,
		pet:      entity.NewPet(),
		commands: commands,
		input:    input,
		display:  display,
		tracer:   tracer,
	}
}

// Pet returns the pet owned by the game.
func (g *Game) Pet() *entity.Pet {
	return g.pet
}

// Ticks returns how many ticks have been displayed.
func (g *Game) Ticks() int {
	return g.tick
}

// Run steps the game every TickInterval.
// It returns nil when the pet dies, a wrapped ErrInputClosed when the input source
// goes away, or the context error on cancellation.
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	for {
		if err := g.Step(ctx); err != nil {
			return err
		}
		if g.pet.IsDead() {
			slog.Info("game: pet died", "ticks", g.tick)
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Step runs a single iteration: decay, at most one command line, display.
func (g *Game) Step(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "pet.tick")
	defer span.End()

	g.pet.Update(decayHunger, decayHealth, recoverPoison)

	rep := ui.Report{Tick: g.tick}
	line, ok, err := g.input.Poll()
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "input closed")
		return fmt.Errorf("%w: %w", ErrInputClosed, err)
	case !ok:
		rep.Idle = true
		slog.Debug("game: no actions taken", "tick", g.tick)
	default:
		rep.Input = line
		rep.Applied = g.apply(ctx, line)
	}

	rep.Frame = g.pet.Render()
	span.SetAttributes(
		attribute.Int("tick", g.tick),
		attribute.Int("pet.hunger", rep.Frame.Hunger),
		attribute.Int("pet.health", rep.Frame.Health),
		attribute.Int("pet.poisoning", rep.Frame.Poisoning),
		attribute.String("pet.mood", rep.Frame.Mood().String()),
		attribute.Bool("pet.dead", rep.Frame.IsDead()),
		attribute.Bool("idle", rep.Idle),
		attribute.String("command", rep.Input),
	)

	if err := g.display.Show(rep); err != nil {
		slog.Warn("game: display failed", "tick", g.tick, "err", err)
	}

	g.tick++
	return nil
}

// apply feeds each character of line to the pet and returns the recognized commands.
// Unrecognized characters still count as a neutral update.
func (g *Game) apply(ctx context.Context, line string) []*gamedata.CommandDef {
	span := trace.SpanFromContext(ctx)
	var applied []*gamedata.CommandDef

	for _, ch := range line {
		hunger, health := g.commands.Deltas(ch)
		g.pet.Update(hunger, health, 0)

		cmd := g.commands.Lookup(ch)
		if cmd == nil {
			continue
		}
		applied = append(applied, cmd)
		slog.Info("game: "+cmd.Message, "command", cmd.ID, "tick", g.tick)
		span.AddEvent("command", trace.WithAttributes(
			attribute.String("command.id", cmd.ID),
			attribute.Int("command.hunger", cmd.Hunger),
			attribute.Int("command.health", cmd.Health),
		))
	}
	return applied
}
