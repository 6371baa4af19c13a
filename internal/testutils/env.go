package testutils

import (
	"context"

	"varos/internal/output"
	"varos/internal/session"
	"varos/pkg/varostypes"
)

// StaticLister implements varostypes.CommandLister over a fixed name list.
type StaticLister []string

// Names implements varostypes.CommandLister.
func (s StaticLister) Names() []string {
	return append([]string(nil), s...)
}

// TestEnv bundles an Env with the concrete values behind it.
type TestEnv struct {
	Env     varostypes.Env
	State   *session.State
	FS      *MockFilesystem
	Printer *output.Printer
	Buffer  *output.CaptureBuffer
}

// NewTestEnv creates an Env with a fresh session at startDir, a mock
// filesystem, and a plain printer writing to a capture buffer.
func NewTestEnv(startDir string, lister varostypes.CommandLister) *TestEnv {
	buffer := output.NewCaptureBuffer()
	printer := output.NewPrinter(output.WithWriter(buffer), output.PlainText())
	state := session.New(startDir)
	fs := NewMockFilesystem()

	if lister == nil {
		lister = StaticLister{}
	}

	return &TestEnv{
		Env: varostypes.Env{
			Ctx:      context.Background(),
			Session:  state,
			Output:   printer,
			FS:       fs,
			Commands: lister,
		},
		State:   state,
		FS:      fs,
		Printer: printer,
		Buffer:  buffer,
	}
}
