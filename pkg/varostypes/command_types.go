// Package varostypes defines the command system types shared across VAROS.
// It holds the closed set of built-in command identifiers, the contract every
// built-in implements, and the collaborators a command receives per dispatch.
package varostypes

import (
	"context"
	"fmt"
)

// CommandID identifies one built-in command. The set is closed: adding a
// command means adding a constant here and registering its implementation.
type CommandID int

const (
	// Help lists the registered command names.
	Help CommandID = iota
	// List prints the immediate entries of a directory.
	List
	// ChangeDirectory replaces the logical working directory.
	ChangeDirectory
	// History prints the raw input lines recorded so far.
	History
	// Exit terminates the shell.
	Exit
)

// String returns the identifier name used in logs.
func (id CommandID) String() string {
	switch id {
	case Help:
		return "Help"
	case List:
		return "List"
	case ChangeDirectory:
		return "ChangeDirectory"
	case History:
		return "History"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("CommandID(%d)", int(id))
	}
}

// Command defines the interface that all VAROS built-ins implement.
// Execute receives the full token sequence, with the command name at index 0.
type Command interface {
	ID() CommandID
	Name() string
	Description() string
	Usage() string
	Execute(tokens []string, env Env) error
}

// SessionState is the mutable per-run state a command may read or change.
type SessionState interface {
	CurrentDirectory() string
	SetCurrentDirectory(path string)
	History() []string
}

// Filesystem answers the two questions the built-ins ask of the host.
type Filesystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	ListDir(ctx context.Context, path string) ([]string, error)
}

// Printer is the user-visible output channel.
type Printer interface {
	Println(text string)
	Printf(format string, args ...interface{})
	Error(text string)
}

// CommandLister exposes the registered command names in registry order.
type CommandLister interface {
	Names() []string
}

// Env carries the collaborators for a single dispatch. Commands must not keep
// references to any of them after Execute returns.
type Env struct {
	Ctx      context.Context
	Session  SessionState
	Output   Printer
	FS       Filesystem
	Commands CommandLister
}
