package builtin

import (
	"varos/pkg/varostypes"
)

// HelpCommand implements help by listing the registered command names.
type HelpCommand struct{}

// ID returns varostypes.Help.
func (c *HelpCommand) ID() varostypes.CommandID {
	return varostypes.Help
}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "show this list"
}

// Usage returns the syntax for the help command.
func (c *HelpCommand) Usage() string {
	return "help"
}

// Execute prints one registered name per line in registry order.
func (c *HelpCommand) Execute(_ []string, env varostypes.Env) error {
	for _, name := range env.Commands.Names() {
		env.Output.Println(name)
	}
	return nil
}
