package varostypes

import (
	"errors"
	"fmt"
)

// ErrExit is returned by the exit command to ask the read-eval loop to stop.
var ErrExit = errors.New("exit requested")

// ErrorKind enumerates the user-visible error conditions of the shell.
type ErrorKind int

const (
	// UnknownCommand means the first token matched no registered command.
	UnknownCommand ErrorKind = iota
	// TooFewArguments means a command received fewer tokens than required.
	TooFewArguments
	// TooManyArguments means a command received more tokens than required.
	TooManyArguments
	// PathNotFound means a cd target does not exist.
	PathNotFound
	// ListFailed means a directory could not be enumerated.
	ListFailed
)

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case UnknownCommand:
		return "UnknownCommand"
	case TooFewArguments:
		return "TooFewArguments"
	case TooManyArguments:
		return "TooManyArguments"
	case PathNotFound:
		return "PathNotFound"
	case ListFailed:
		return "ListFailed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ShellError is a non-fatal, user-visible error. Its Error text is exactly
// what the shell prints.
type ShellError struct {
	Kind    ErrorKind
	Command string
	Subject string
	Err     error
}

// Error renders the message shown to the user.
func (e *ShellError) Error() string {
	switch e.Kind {
	case UnknownCommand:
		return fmt.Sprintf("%s: Unknown command", e.Subject)
	case TooFewArguments:
		return fmt.Sprintf("%s: too few arguments", e.Command)
	case TooManyArguments:
		return fmt.Sprintf("%s: too many arguments", e.Command)
	case PathNotFound:
		return fmt.Sprintf("%s: %s: path does not exist", e.Command, e.Subject)
	case ListFailed:
		return fmt.Sprintf("%s: %s: cannot list directory", e.Command, e.Subject)
	default:
		return fmt.Sprintf("%s: %s", e.Command, e.Subject)
	}
}

// Unwrap returns the underlying cause, if any.
func (e *ShellError) Unwrap() error {
	return e.Err
}

// NewUnknownCommandError reports a first token with no registry match.
func NewUnknownCommandError(name string) *ShellError {
	return &ShellError{Kind: UnknownCommand, Subject: name}
}

// CheckArgCount validates that tokens hold the command name plus exactly want
// arguments.
func CheckArgCount(tokens []string, want int) error {
	name := ""
	if len(tokens) > 0 {
		name = tokens[0]
	}
	got := len(tokens) - 1
	switch {
	case got < want:
		return &ShellError{Kind: TooFewArguments, Command: name}
	case got > want:
		return &ShellError{Kind: TooManyArguments, Command: name}
	}
	return nil
}
