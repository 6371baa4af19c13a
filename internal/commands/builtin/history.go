package builtin

import (
	"varos/pkg/varostypes"
)

// HistoryCommand implements history. Arguments are ignored.
type HistoryCommand struct{}

// ID returns varostypes.History.
func (c *HistoryCommand) ID() varostypes.CommandID {
	return varostypes.History
}

// Name returns the command name "history" for registration and lookup.
func (c *HistoryCommand) Name() string {
	return "history"
}

// Description returns a brief description of what the history command does.
func (c *HistoryCommand) Description() string {
	return "show command history"
}

// Usage returns the syntax for the history command.
func (c *HistoryCommand) Usage() string {
	return "history"
}

// Execute prints every recorded raw line, oldest first. The line that invoked
// history is recorded only after Execute returns.
func (c *HistoryCommand) Execute(_ []string, env varostypes.Env) error {
	for _, line := range env.Session.History() {
		env.Output.Println(line)
	}
	return nil
}
