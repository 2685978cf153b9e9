package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Tsailenn/cli-tamagotchi/internal/gamedata"
	"github.com/Tsailenn/cli-tamagotchi/internal/input"
	"github.com/Tsailenn/cli-tamagotchi/internal/ui"
)

// recordingDisplay keeps every report it is shown.
type recordingDisplay struct {
	reports []ui.Report
	err     error
}

func (d *recordingDisplay) Show(rep ui.Report) error {
	d.reports = append(d.reports, rep)
	return d.err
}

func newTestGame(t *testing.T, interval time.Duration) (*Game, *input.Collector, *recordingDisplay) {
	t.Helper()
	return newTracedGame(t, Config{TickInterval: interval})
}

func newTracedGame(t *testing.T, cfg Config) (*Game, *input.Collector, *recordingDisplay) {
	t.Helper()
	commands, err := gamedata.LoadCommandRegistry()
	if err != nil {
		t.Fatalf("LoadCommandRegistry() error = %v", err)
	}
	collector := input.NewCollector()
	display := &recordingDisplay{}
	return New(cfg, commands, collector, display), collector, display
}

func TestStepIdle(t *testing.T) {
	g, _, display := newTestGame(t, time.Hour)

	if err := g.Step(context.Background()); err != nil {
		t.Fatalf("Step() error = %v", err)
	}

	p := g.Pet()
	if p.Hunger() != 9 || p.Health() != 9 || p.Poisoning() != 10 {
		t.Errorf("after idle step pet = (%d, %d, %d), want (9, 9, 10)", p.Hunger(), p.Health(), p.Poisoning())
	}
	if len(display.reports) != 1 {
		t.Fatalf("display got %d reports, want 1", len(display.reports))
	}
	rep := display.reports[0]
	if !rep.Idle || rep.Tick != 0 || len(rep.Applied) != 0 {
		t.Errorf("report = %+v, want idle tick 0 with nothing applied", rep)
	}
	if g.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", g.Ticks())
	}
}

func TestStepAppliesCommands(t *testing.T) {
	g, collector, display := newTestGame(t, time.Hour)
	collector.Push("fcx")

	if err := g.Step(context.Background()); err != nil {
		t.Fatalf("Step() error = %v", err)
	}

	// Decay to (9, 9, 10), feed to (10, 9, 10), cure to (10, 10, 7).
	p := g.Pet()
	if p.Hunger() != 10 || p.Health() != 10 || p.Poisoning() != 7 {
		t.Errorf("pet = (%d, %d, %d), want (10, 10, 7)", p.Hunger(), p.Health(), p.Poisoning())
	}

	rep := display.reports[0]
	if rep.Idle || rep.Input != "fcx" {
		t.Errorf("report Idle = %v, Input = %q, want false, \"fcx\"", rep.Idle, rep.Input)
	}
	var ids []string
	for _, cmd := range rep.Applied {
		ids = append(ids, cmd.ID)
	}
	if len(ids) != 2 || ids[0] != "feed" || ids[1] != "cure" {
		t.Errorf("applied = %v, want [feed cure]", ids)
	}
	if rep.Frame.Poisoning != 7 {
		t.Errorf("report frame poisoning = %d, want 7", rep.Frame.Poisoning)
	}
}

func TestStepOneLinePerTick(t *testing.T) {
	g, collector, display := newTestGame(t, time.Hour)
	collector.Push("f")
	collector.Push("c")

	for i := 0; i < 3; i++ {
		if err := g.Step(context.Background()); err != nil {
			t.Fatalf("Step() %d error = %v", i, err)
		}
	}

	wantInput := []string{"f", "c", ""}
	for i, rep := range display.reports {
		if rep.Input != wantInput[i] {
			t.Errorf("tick %d input = %q, want %q", i, rep.Input, wantInput[i])
		}
	}
	if !display.reports[2].Idle {
		t.Error("third tick should be idle")
	}
}

func TestStepInputClosed(t *testing.T) {
	g, collector, display := newTestGame(t, time.Hour)
	collector.Close(nil)

	err := g.Step(context.Background())
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("Step() error = %v, want ErrInputClosed", err)
	}
	if !errors.Is(err, input.ErrDisconnected) {
		t.Errorf("Step() error = %v, want it to wrap input.ErrDisconnected", err)
	}
	if len(display.reports) != 0 {
		t.Errorf("display got %d reports after input closed, want 0", len(display.reports))
	}
}

func TestStepDisplayErrorIsNotFatal(t *testing.T) {
	g, _, display := newTestGame(t, time.Hour)
	display.err = errors.New("stdout closed")

	if err := g.Step(context.Background()); err != nil {
		t.Errorf("Step() error = %v, want nil", err)
	}
}

func TestRunUntilDeath(t *testing.T) {
	g, _, display := newTestGame(t, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := g.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v, want nil on death", err)
	}

	// Hunger and health both fall below 5 on the sixth decay.
	if len(display.reports) != 6 {
		t.Errorf("display got %d reports, want 6", len(display.reports))
	}
	last := display.reports[len(display.reports)-1]
	if !last.Frame.IsDead() {
		t.Error("last report does not show a dead pet")
	}
	if !g.Pet().IsDead() {
		t.Error("Pet().IsDead() = false after Run returned")
	}
}

func TestRunInputClosed(t *testing.T) {
	g, collector, display := newTestGame(t, time.Millisecond)
	collector.Push("f")
	collector.Close(errors.New("EOF"))

	err := g.Run(context.Background())
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("Run() error = %v, want ErrInputClosed", err)
	}
	if len(display.reports) != 1 {
		t.Errorf("display got %d reports, want 1 before the source closed", len(display.reports))
	}
}

func TestRunCanceled(t *testing.T) {
	g, _, display := newTestGame(t, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(display.reports) != 1 {
		t.Errorf("display got %d reports, want 1", len(display.reports))
	}
}

func TestNewDefaultsInterval(t *testing.T) {
	commands, err := gamedata.LoadCommandRegistry()
	if err != nil {
		t.Fatalf("LoadCommandRegistry() error = %v", err)
	}
	g := New(Config{}, commands, input.NewCollector(), &recordingDisplay{})
	if g.cfg.TickInterval != DefaultConfig().TickInterval {
		t.Errorf("TickInterval = %s, want %s", g.cfg.TickInterval, DefaultConfig().TickInterval)
	}
}

func TestStepSpanAttributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	g, collector, _ := newTracedGame(t, Config{TickInterval: time.Hour, Tracer: tp.Tracer("test")})
	collector.Push("fc")

	for i := 0; i < 2; i++ {
		if err := g.Step(context.Background()); err != nil {
			t.Fatalf("Step() %d error = %v", i, err)
		}
	}

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("recorded %d spans, want 2", len(spans))
	}

	tests := []struct {
		command    string
		idle       bool
		poisoning  int64
		eventCount int
	}{
		{"fc", false, 7, 2},
		{"", true, 9, 0},
	}

	for i, tt := range tests {
		span := spans[i]
		if span.Name() != "pet.tick" {
			t.Errorf("span %d name = %q, want pet.tick", i, span.Name())
		}
		attrs := make(map[attribute.Key]attribute.Value)
		for _, kv := range span.Attributes() {
			attrs[kv.Key] = kv.Value
		}
		if got := attrs["command"].AsString(); got != tt.command {
			t.Errorf("span %d command = %q, want %q", i, got, tt.command)
		}
		if got := attrs["idle"].AsBool(); got != tt.idle {
			t.Errorf("span %d idle = %v, want %v", i, got, tt.idle)
		}
		if got := attrs["pet.poisoning"].AsInt64(); got != tt.poisoning {
			t.Errorf("span %d pet.poisoning = %d, want %d", i, got, tt.poisoning)
		}
		if got := len(span.Events()); got != tt.eventCount {
			t.Errorf("span %d has %d events, want %d", i, got, tt.eventCount)
		}
	}
}
