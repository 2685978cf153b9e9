package input

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

// EventSource delivers terminal events. PollEvent returns nil once the source is finalized.
type EventSource interface {
	PollEvent() tcell.Event
}

// KeyReader turns terminal key presses into one-character commands.
type KeyReader struct {
	Source    EventSource
	Collector *Collector
	OnQuit    func() // Esc or Ctrl-C
	OnResize  func()
}

// Run reads events until the source is finalized, then closes the collector.
// It blocks, so run it in its own goroutine.
func (k *KeyReader) Run() {
	for {
		ev := k.Source.PollEvent()
		if ev == nil {
			slog.Debug("input: event source finalized")
			k.Collector.Close(nil)
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			k.handleKey(ev)
		case *tcell.EventResize:
			if k.OnResize != nil {
				k.OnResize()
			}
		}
	}
}

func (k *KeyReader) handleKey(ev *tcell.EventKey) {
	k.press(ev.Key(), ev.Rune())
}

// press handles one key. Printable keys become commands; everything else is ignored.
func (k *KeyReader) press(key tcell.Key, ch rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		if k.OnQuit != nil {
			k.OnQuit()
		}
	case tcell.KeyRune:
		k.Collector.Push(string(ch))
	}
}
