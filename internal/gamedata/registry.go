package gamedata

import (
	"errors"
	"fmt"
)

// CommandRegistry looks up commands by their input character.
type CommandRegistry struct {
	byKey map[rune]*CommandDef
	all   []CommandDef
}

// NewCommandRegistry creates a registry from loaded command definitions.
// A later definition for the same key replaces an earlier one.
func NewCommandRegistry(commands []CommandDef) *CommandRegistry {
	registry := &CommandRegistry{
		byKey: make(map[rune]*CommandDef, len(commands)),
		all:   commands,
	}
	for i := range commands {
		registry.byKey[commands[i].KeyRune()] = &commands[i]
	}
	return registry
}

// LoadCommandRegistry loads and creates a registry from the embedded commands.json.
func LoadCommandRegistry() (*CommandRegistry, error) {
	commands, err := LoadCommands()
	if err != nil {
		return nil, err
	}
	if len(commands) == 0 {
		return nil, errors.New("no commands loaded from commands.json")
	}
	for i := range commands {
		if len(commands[i].Key) == 0 {
			return nil, fmt.Errorf("command %q has no key", commands[i].ID)
		}
	}
	return NewCommandRegistry(commands), nil
}

// Lookup returns the command bound to key, or nil if there is none.
func (r *CommandRegistry) Lookup(key rune) *CommandDef {
	return r.byKey[key]
}

// Deltas returns the hunger and health deltas for key. Unknown keys map to zero.
func (r *CommandRegistry) Deltas(key rune) (hunger, health int) {
	if cmd := r.byKey[key]; cmd != nil {
		return cmd.Hunger, cmd.Health
	}
	return 0, 0
}

// All returns all command definitions.
func (r *CommandRegistry) All() []CommandDef {
	return r.all
}
