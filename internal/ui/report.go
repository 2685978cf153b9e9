// Package ui renders the pet, either as a plain text dump or on a tcell screen.
package ui

import (
	"github.com/Tsailenn/cli-tamagotchi/internal/entity"
	"github.com/Tsailenn/cli-tamagotchi/internal/gamedata"
)

// Report is everything shown for one tick.
type Report struct {
	Tick    int
	Frame   entity.Frame
	Input   string                 // raw command line, empty when Idle
	Idle    bool                   // no command was available this tick
	Applied []*gamedata.CommandDef // recognized commands, in input order
}
