// Package commands provides command registration and lookup for VAROS.
// A Registry is built once at startup and is read-only afterwards.
package commands

import (
	"fmt"
	"strings"

	"varos/pkg/varostypes"
)

// Registry maps command names to command identifiers and identifiers to
// their implementations. Lookup is exact and case-sensitive.
type Registry struct {
	ids      map[string]varostypes.CommandID
	commands map[varostypes.CommandID]varostypes.Command
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ids:      make(map[string]varostypes.CommandID),
		commands: make(map[varostypes.CommandID]varostypes.Command),
	}
}

// Register adds a command. Returns an error if the name is empty or not
// lowercase, or if the name or identifier is already registered.
func (r *Registry) Register(cmd varostypes.Command) error {
	name := cmd.Name()
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	if name != strings.ToLower(name) {
		return fmt.Errorf("command name %s must be lowercase", name)
	}

	if _, exists := r.ids[name]; exists {
		return fmt.Errorf("command %s already registered", name)
	}

	if existing, exists := r.commands[cmd.ID()]; exists {
		return fmt.Errorf("command id %s already registered as %s", cmd.ID(), existing.Name())
	}

	r.ids[name] = cmd.ID()
	r.commands[cmd.ID()] = cmd
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the identifier registered under name.
func (r *Registry) Lookup(name string) (varostypes.CommandID, bool) {
	id, exists := r.ids[name]
	return id, exists
}

// Command returns the implementation bound to id.
func (r *Registry) Command(id varostypes.CommandID) (varostypes.Command, bool) {
	cmd, exists := r.commands[id]
	return cmd, exists
}

// Names returns the registered names in registration order.
// The returned slice is a copy and can be safely modified.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// GetAll returns the registered commands in registration order.
func (r *Registry) GetAll() []varostypes.Command {
	all := make([]varostypes.Command, 0, len(r.order))
	for _, name := range r.order {
		all = append(all, r.commands[r.ids[name]])
	}
	return all
}
