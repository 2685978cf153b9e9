package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Tsailenn/cli-tamagotchi/internal/entity"
)

// TextRenderer writes a human-readable dump of each tick.
type TextRenderer struct {
	w   io.Writer
	on  string
	off string
}

// NewTextRenderer creates a renderer that prints lit cells as on and background cells as off.
func NewTextRenderer(w io.Writer, on, off string) *TextRenderer {
	return &TextRenderer{w: w, on: on, off: off}
}

// Show writes the report in one call to the underlying writer.
func (r *TextRenderer) Show(rep Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "iteration: %d\n", rep.Tick)
	if rep.Idle {
		b.WriteString("no actions taken\n")
	} else {
		fmt.Fprintf(&b, "input: %q\n", rep.Input)
		for _, cmd := range rep.Applied {
			b.WriteString(cmd.Message)
			b.WriteByte('\n')
		}
	}

	f := rep.Frame
	fmt.Fprintf(&b, "hunger: %d\n", f.Hunger)
	fmt.Fprintf(&b, "health: %d\n", f.Health)
	fmt.Fprintf(&b, "poisoning: %d\n", f.Poisoning)
	r.writeFace(&b, f.Face)
	fmt.Fprintf(&b, "mood: %s\n", f.Mood())
	fmt.Fprintf(&b, "dead: %t\n", f.IsDead())

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TextRenderer) writeFace(b *strings.Builder, face entity.Face) {
	for row := 0; row < entity.FaceSize; row++ {
		for col := 0; col < entity.FaceSize; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			if face.On(row, col) {
				b.WriteString(r.on)
			} else {
				b.WriteString(r.off)
			}
		}
		b.WriteByte('\n')
	}
}
