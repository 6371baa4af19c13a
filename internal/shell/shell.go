package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"varos/internal/commands"
	"varos/internal/logger"
	"varos/internal/output"
	"varos/internal/parser"
	"varos/internal/session"
	"varos/pkg/varostypes"
)

// Options configures a Shell. Every field is required.
type Options struct {
	Username string
	StartDir string
	Registry *commands.Registry
	FS       varostypes.Filesystem
	Printer  *output.Printer
	Reader   LineReader
}

// Shell owns the session state and runs the read-eval loop.
type Shell struct {
	username   string
	state      *session.State
	registry   *commands.Registry
	dispatcher *Dispatcher
	printer    *output.Printer
	reader     LineReader
	log        *log.Logger
}

// New creates a Shell whose logical working directory starts at opts.StartDir.
func New(opts Options) (*Shell, error) {
	switch {
	case opts.Registry == nil:
		return nil, fmt.Errorf("shell requires a command registry")
	case opts.FS == nil:
		return nil, fmt.Errorf("shell requires a filesystem")
	case opts.Printer == nil:
		return nil, fmt.Errorf("shell requires a printer")
	case opts.Reader == nil:
		return nil, fmt.Errorf("shell requires a line reader")
	case opts.StartDir == "":
		return nil, fmt.Errorf("shell requires a start directory")
	}

	return &Shell{
		username:   opts.Username,
		state:      session.New(opts.StartDir),
		registry:   opts.Registry,
		dispatcher: NewDispatcher(opts.Registry, opts.FS, opts.Printer),
		printer:    opts.Printer,
		reader:     opts.Reader,
		log:        logger.NewStyledLogger("Shell"),
	}, nil
}

// State returns the session state owned by the loop.
func (s *Shell) State() *session.State {
	return s.state
}

// Prompt returns "<username>:<currentDirectory>$ ".
func (s *Shell) Prompt() string {
	return s.username + ":" + s.state.CurrentDirectory() + "$ "
}

// PrintBanner writes the startup banner.
func (s *Shell) PrintBanner() {
	s.printer.Banner(Banner(s.registry.GetAll()))
}

// Run loops until exit, end of input, or a read error. Exit and end of input
// return nil. ctx is checked between iterations; a blocked read is not
// interrupted.
func (s *Shell) Run(ctx context.Context) error {
	s.log.Debug("Session started", "session", s.state.ID(), "cwd", s.state.CurrentDirectory())
	defer func() { _ = s.reader.Close() }()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.reader.ReadLine(s.Prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("End of input", "session", s.state.ID())
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		exit, err := s.Step(ctx, line)
		if err != nil {
			return err
		}
		if exit {
			s.log.Debug("Exit requested", "session", s.state.ID(), "history", s.state.HistoryLen())
			return nil
		}
	}
}

// Step tokenizes and dispatches one raw line, then records it in history
// unless the line asked to exit.
func (s *Shell) Step(ctx context.Context, line string) (bool, error) {
	tokens := parser.Tokenize(line)
	if err := s.dispatcher.Dispatch(ctx, tokens, s.state); err != nil {
		if errors.Is(err, varostypes.ErrExit) {
			return true, nil
		}
		return false, err
	}
	s.state.AppendHistory(line)
	return false, nil
}
