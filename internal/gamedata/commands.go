package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// CommandDef maps one input character to attribute deltas.
type CommandDef struct {
	ID      string `json:"id"`      // Unique identifier (e.g., "feed")
	Name    string `json:"name"`    // Display name (e.g., "Feed")
	Key     string `json:"key"`     // Single input character (e.g., "f")
	Message string `json:"message"` // Shown when the command is applied
	Color   string `json:"color"`   // Hex color used to highlight the message
	Hunger  int    `json:"hunger"`  // Hunger delta
	Health  int    `json:"health"`  // Health delta
}

// KeyRune returns the key as a rune, or utf8.RuneError if it is empty.
func (c *CommandDef) KeyRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Key)
	return r
}

// TCellColor returns the highlight color, falling back to white.
func (c *CommandDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// CommandsFile represents the structure of commands.json.
type CommandsFile struct {
	Commands []CommandDef `json:"commands"`
}

// LoadCommands loads command definitions from the embedded commands.json file.
func LoadCommands() ([]CommandDef, error) {
	file, err := Load[CommandsFile]("commands.json")
	if err != nil {
		return nil, err
	}
	return file.Commands, nil
}
