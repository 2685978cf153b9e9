package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/Tsailenn/cli-tamagotchi/internal/entity"
	"github.com/Tsailenn/cli-tamagotchi/internal/gamedata"
)

const (
	faceX     = 2
	faceY     = 1
	cellWidth = 2 // terminal cells are roughly twice as tall as wide
	panelX    = faceX + entity.FaceSize*cellWidth + 4
)

// Canvas is the part of a terminal screen the renderer draws on. *Screen implements it.
type Canvas interface {
	Clear()
	Show()
	Sync()
	SetContent(x, y int, r rune, style tcell.Style)
}

// ScreenRenderer draws the pet on a tcell screen.
type ScreenRenderer struct {
	mu     sync.Mutex
	screen Canvas
	help   string
	last   *Report
}

// NewScreenRenderer creates a renderer whose help line lists the given commands.
func NewScreenRenderer(screen Canvas, commands []gamedata.CommandDef) *ScreenRenderer {
	parts := make([]string, 0, len(commands)+1)
	for _, cmd := range commands {
		parts = append(parts, cmd.Key+" "+strings.ToLower(cmd.Name))
	}
	parts = append(parts, "esc quit")
	return &ScreenRenderer{screen: screen, help: strings.Join(parts, "   ")}
}

// Show draws the face, the stats panel and the commands applied this tick.
func (r *ScreenRenderer) Show(rep Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = &rep
	r.draw(rep)
	return nil
}

// Redraw repaints the last report, e.g. after a resize.
func (r *ScreenRenderer) Redraw() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.screen.Sync()
	if r.last != nil {
		r.draw(*r.last)
	}
}

func (r *ScreenRenderer) draw(rep Report) {
	r.screen.Clear()

	f := rep.Frame
	onStyle := faceStyle(f.Mood())
	offStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

	for row := 0; row < entity.FaceSize; row++ {
		for col := 0; col < entity.FaceSize; col++ {
			x := faceX + col*cellWidth
			y := faceY + row
			if f.Face.On(row, col) {
				r.screen.SetContent(x, y, '█', onStyle)
				r.screen.SetContent(x+1, y, '█', onStyle)
			} else {
				r.screen.SetContent(x, y, '·', offStyle)
				r.screen.SetContent(x+1, y, ' ', offStyle)
			}
		}
	}

	label := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.drawText(panelX, faceY, fmt.Sprintf("tick       %d", rep.Tick), label)
	r.drawBar(panelX, faceY+2, "hunger", f.Hunger, f.Status.Hungry)
	r.drawBar(panelX, faceY+3, "health", f.Health, f.Status.Sick)
	r.drawBar(panelX, faceY+4, "poisoning", f.Poisoning, f.Status.Poisoned)
	r.drawText(panelX, faceY+6, "mood       "+f.Mood().String(), onStyle)

	y := faceY + entity.FaceSize + 1
	if rep.Idle {
		r.drawText(faceX, y, "no actions taken", offStyle)
	} else {
		r.drawApplied(faceX, y, rep.Applied)
	}

	help := r.help
	if f.IsDead() {
		help = "your pet has died   esc quit"
	}
	r.drawText(faceX, y+2, help, offStyle)

	r.screen.Show()
}

func (r *ScreenRenderer) drawApplied(x, y int, applied []*gamedata.CommandDef) {
	if len(applied) == 0 {
		r.drawText(x, y, "nothing recognized", tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
		return
	}
	for _, cmd := range applied {
		style := tcell.StyleDefault.Foreground(cmd.TCellColor()).Bold(true)
		x = r.drawText(x, y, cmd.Message, style) + 1
	}
}

func (r *ScreenRenderer) drawBar(x, y int, name string, value int, low bool) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if low {
		style = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	x = r.drawText(x, y, fmt.Sprintf("%-10s ", name), tcell.StyleDefault)
	for i := 0; i < entity.MaxAttribute; i++ {
		ch := '░'
		if i < value {
			ch = '▓'
		}
		r.screen.SetContent(x+i, y, ch, style)
	}
	r.drawText(x+entity.MaxAttribute+1, y, fmt.Sprintf("%2d", value), style)
}

// drawText writes msg starting at x and returns the column after it.
func (r *ScreenRenderer) drawText(x, y int, msg string, style tcell.Style) int {
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}

func faceStyle(m entity.Mood) tcell.Style {
	switch m {
	case entity.MoodDead:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case entity.MoodSick:
		return tcell.StyleDefault.Foreground(tcell.ColorOlive)
	case entity.MoodHungry:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case entity.MoodPoisoned:
		return tcell.StyleDefault.Foreground(tcell.ColorPurple)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	}
}

var _ Canvas = (*Screen)(nil)
