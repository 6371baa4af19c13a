// Package session holds the mutable state of one VAROS run.
package session

import (
	"time"

	"github.com/google/uuid"
)

// State is the logical working directory and append-only input history for
// one run. It is owned by the read-eval loop and is not safe for concurrent use.
type State struct {
	id        string
	startedAt time.Time
	cwd       string
	history   []string
}

// New creates a State whose logical working directory is startDir.
func New(startDir string) *State {
	return &State{
		id:        uuid.New().String(),
		startedAt: time.Now(),
		cwd:       startDir,
	}
}

// ID returns the run identifier attached to log records.
func (s *State) ID() string {
	return s.id
}

// StartedAt returns when the run began.
func (s *State) StartedAt() time.Time {
	return s.startedAt
}

// CurrentDirectory returns the logical working directory.
func (s *State) CurrentDirectory() string {
	return s.cwd
}

// SetCurrentDirectory replaces the logical working directory verbatim.
func (s *State) SetCurrentDirectory(path string) {
	s.cwd = path
}

// AppendHistory records one raw input line.
func (s *State) AppendHistory(line string) {
	s.history = append(s.history, line)
}

// History returns a copy of the recorded lines, oldest first.
func (s *State) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// HistoryLen returns the number of recorded lines.
func (s *State) HistoryLen() int {
	return len(s.history)
}
