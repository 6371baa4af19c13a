package builtin

import (
	"varos/pkg/varostypes"
)

// ExitCommand implements exit. It asks the read-eval loop to stop, and the
// process then exits with status 0.
type ExitCommand struct{}

// ID returns varostypes.Exit.
func (c *ExitCommand) ID() varostypes.CommandID {
	return varostypes.Exit
}

// Name returns the command name "exit" for registration and lookup.
func (c *ExitCommand) Name() string {
	return "exit"
}

// Description returns a brief description of what the exit command does.
func (c *ExitCommand) Description() string {
	return "exit terminal"
}

// Usage returns the syntax for the exit command.
func (c *ExitCommand) Usage() string {
	return "exit"
}

// Execute returns varostypes.ErrExit regardless of arguments.
func (c *ExitCommand) Execute(_ []string, _ varostypes.Env) error {
	return varostypes.ErrExit
}
