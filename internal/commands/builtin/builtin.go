// Package builtin implements the VAROS built-in commands and assembles the
// command registry used by the shell.
package builtin

import (
	"fmt"

	"varos/internal/commands"
	"varos/pkg/varostypes"
)

// All returns one instance of every built-in, in the order they are registered.
func All() []varostypes.Command {
	return []varostypes.Command{
		&ChangeDirectoryCommand{},
		&ListCommand{},
		&HistoryCommand{},
		&HelpCommand{},
		&ExitCommand{},
	}
}

// NewRegistry builds the registry holding every built-in.
func NewRegistry() (*commands.Registry, error) {
	registry := commands.NewRegistry()
	for _, cmd := range All() {
		if err := registry.Register(cmd); err != nil {
			return nil, fmt.Errorf("failed to register %s command: %w", cmd.Name(), err)
		}
	}
	return registry, nil
}
