// Package shell provides the VAROS read-eval loop and command dispatch.
package shell

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"varos/internal/commands"
	"varos/internal/logger"
	"varos/pkg/varostypes"
)

// Dispatcher routes a token sequence to the registered command. It renders
// every command error itself; only varostypes.ErrExit is returned.
type Dispatcher struct {
	registry *commands.Registry
	fs       varostypes.Filesystem
	output   varostypes.Printer
	log      *log.Logger
}

// NewDispatcher creates a dispatcher over registry.
func NewDispatcher(registry *commands.Registry, fs varostypes.Filesystem, out varostypes.Printer) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		fs:       fs,
		output:   out,
		log:      logger.NewStyledLogger("Dispatch"),
	}
}

// Dispatch runs the command named by tokens[0] with the full token sequence.
// An empty sequence is a no-op.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string, state varostypes.SessionState) error {
	if len(tokens) == 0 {
		return nil
	}

	name := tokens[0]
	id, ok := d.registry.Lookup(name)
	if !ok {
		d.report(varostypes.NewUnknownCommandError(name))
		return nil
	}

	cmd, ok := d.registry.Command(id)
	if !ok {
		d.report(varostypes.NewUnknownCommandError(name))
		return nil
	}

	d.log.Debug("Executing command", "command", id, "tokens", tokens)
	err := cmd.Execute(tokens, varostypes.Env{
		Ctx:      ctx,
		Session:  state,
		Output:   d.output,
		FS:       d.fs,
		Commands: d.registry,
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, varostypes.ErrExit) {
		return varostypes.ErrExit
	}

	d.report(err)
	return nil
}

func (d *Dispatcher) report(err error) {
	var shellErr *varostypes.ShellError
	if errors.As(err, &shellErr) {
		d.log.Debug("Command failed", "kind", shellErr.Kind, "error", err, "cause", shellErr.Err)
	} else {
		d.log.Warn("Unexpected command error", "error", err)
	}
	d.output.Error(err.Error())
}
