package builtin

import (
	"varos/pkg/varostypes"
)

// ListCommand implements ls for exactly one directory argument.
type ListCommand struct{}

// ID returns varostypes.List.
func (c *ListCommand) ID() varostypes.CommandID {
	return varostypes.List
}

// Name returns the command name "ls" for registration and lookup.
func (c *ListCommand) Name() string {
	return "ls"
}

// Description returns a brief description of what the ls command does.
func (c *ListCommand) Description() string {
	return "list directory contents"
}

// Usage returns the syntax for the ls command.
func (c *ListCommand) Usage() string {
	return "ls <directory>"
}

// Execute prints one line per immediate entry of tokens[1], in the order the
// filesystem enumerates them. Nothing is printed when enumeration fails.
func (c *ListCommand) Execute(tokens []string, env varostypes.Env) error {
	if err := varostypes.CheckArgCount(tokens, 1); err != nil {
		return err
	}

	dir := tokens[1]
	entries, err := env.FS.ListDir(env.Ctx, dir)
	if err != nil {
		return &varostypes.ShellError{
			Kind:    varostypes.ListFailed,
			Command: c.Name(),
			Subject: dir,
			Err:     err,
		}
	}

	for _, entry := range entries {
		env.Output.Println(entry)
	}
	return nil
}
