package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// scriptedSource replays events and then reports the source as finalized.
type scriptedSource struct {
	events []tcell.Event
}

func (s *scriptedSource) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func TestKeyReaderPress(t *testing.T) {
	c := NewCollector()
	quits := 0
	k := &KeyReader{Collector: c, OnQuit: func() { quits++ }}

	presses := []struct {
		key tcell.Key
		ch  rune
	}{
		{tcell.KeyRune, 'f'},
		{tcell.KeyEnter, 0},
		{tcell.KeyRune, 'c'},
		{tcell.KeyEscape, 0},
		{tcell.KeyCtrlC, 0},
	}
	for _, p := range presses {
		k.press(p.key, p.ch)
	}

	for _, want := range []string{"f", "c"} {
		got, ok, err := c.Poll()
		if !ok || err != nil || got != want {
			t.Errorf("Poll() = (%q, %v, %v), want (%q, true, nil)", got, ok, err, want)
		}
	}
	if _, ok, _ := c.Poll(); ok {
		t.Error("Poll() returned a command for a non-rune key")
	}
	if quits != 2 {
		t.Errorf("OnQuit called %d times, want 2", quits)
	}
}

func TestKeyReaderPressWithoutQuitHandler(t *testing.T) {
	k := &KeyReader{Collector: NewCollector()}
	k.press(tcell.KeyEscape, 0)
}

func TestKeyReaderRun(t *testing.T) {
	src := &scriptedSource{events: []tcell.Event{
		tcell.NewEventResize(80, 24),
		tcell.NewEventResize(100, 30),
	}}

	c := NewCollector()
	resizes := 0
	k := &KeyReader{
		Source:    src,
		Collector: c,
		OnResize:  func() { resizes++ },
	}
	k.Run()

	if resizes != 2 {
		t.Errorf("OnResize called %d times, want 2", resizes)
	}
	if _, _, err := c.Poll(); !errors.Is(err, ErrDisconnected) {
		t.Errorf("Poll() after source finalized error = %v, want ErrDisconnected", err)
	}
}
