package builtin

import (
	"varos/pkg/varostypes"
)

// ChangeDirectoryCommand implements cd. It replaces the logical working
// directory only; the process working directory is never changed.
type ChangeDirectoryCommand struct{}

// ID returns varostypes.ChangeDirectory.
func (c *ChangeDirectoryCommand) ID() varostypes.CommandID {
	return varostypes.ChangeDirectory
}

// Name returns the command name "cd" for registration and lookup.
func (c *ChangeDirectoryCommand) Name() string {
	return "cd"
}

// Description returns a brief description of what the cd command does.
func (c *ChangeDirectoryCommand) Description() string {
	return "change directory"
}

// Usage returns the syntax for the cd command.
func (c *ChangeDirectoryCommand) Usage() string {
	return "cd <path>"
}

// Execute switches to tokens[1] if it exists. The path is stored verbatim.
func (c *ChangeDirectoryCommand) Execute(tokens []string, env varostypes.Env) error {
	if err := varostypes.CheckArgCount(tokens, 1); err != nil {
		return err
	}

	target := tokens[1]
	exists, err := env.FS.Exists(env.Ctx, target)
	if err != nil || !exists {
		return &varostypes.ShellError{
			Kind:    varostypes.PathNotFound,
			Command: c.Name(),
			Subject: target,
			Err:     err,
		}
	}

	env.Session.SetCurrentDirectory(target)
	return nil
}
