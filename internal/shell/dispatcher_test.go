package shell

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"varos/internal/commands"
	"varos/internal/commands/builtin"
	"varos/internal/output"
	"varos/internal/session"
	"varos/internal/testutils"
	"varos/pkg/varostypes"
)

type dispatchFixture struct {
	dispatcher *Dispatcher
	state      *session.State
	fs         *testutils.MockFilesystem
	buffer     *output.CaptureBuffer
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	t.Helper()
	registry, err := builtin.NewRegistry()
	require.NoError(t, err)

	buffer := output.NewCaptureBuffer()
	fs := testutils.NewMockFilesystem()
	return &dispatchFixture{
		dispatcher: NewDispatcher(registry, fs, output.NewPrinter(output.WithWriter(buffer), output.PlainText())),
		state:      session.New("/start"),
		fs:         fs,
		buffer:     buffer,
	}
}

func TestDispatcher_EmptyTokensIsNoop(t *testing.T) {
	f := newDispatchFixture(t)

	require.NoError(t, f.dispatcher.Dispatch(context.Background(), nil, f.state))
	require.NoError(t, f.dispatcher.Dispatch(context.Background(), []string{}, f.state))

	assert.Empty(t, f.buffer.String())
	assert.Equal(t, "/start", f.state.CurrentDirectory())
	assert.Empty(t, f.state.History())
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	for _, name := range []string{"foo", "CD", "Exit", "/usr/bin/ls", "help?"} {
		t.Run(name, func(t *testing.T) {
			f := newDispatchFixture(t)

			err := f.dispatcher.Dispatch(context.Background(), []string{name, "/tmp"}, f.state)

			require.NoError(t, err)
			assert.Equal(t, name+": Unknown command\n", f.buffer.String())
			assert.Equal(t, "/start", f.state.CurrentDirectory())
			assert.Empty(t, f.state.History())
			assert.Empty(t, f.fs.Calls())
		})
	}
}

func TestDispatcher_RendersCommandErrors(t *testing.T) {
	f := newDispatchFixture(t)

	require.NoError(t, f.dispatcher.Dispatch(context.Background(), []string{"cd", "/nope"}, f.state))
	require.NoError(t, f.dispatcher.Dispatch(context.Background(), []string{"ls"}, f.state))
	require.NoError(t, f.dispatcher.Dispatch(context.Background(), []string{"cd", "a", "b"}, f.state))

	assert.Equal(t, []string{
		"cd: /nope: path does not exist",
		"ls: too few arguments",
		"cd: too many arguments",
	}, f.buffer.Lines())
	assert.Equal(t, "/start", f.state.CurrentDirectory())
}

func TestDispatcher_PassesFullTokens(t *testing.T) {
	f := newDispatchFixture(t)
	f.fs.AddDir("/tmp")

	require.NoError(t, f.dispatcher.Dispatch(context.Background(), []string{"cd", "/tmp"}, f.state))

	assert.Equal(t, "/tmp", f.state.CurrentDirectory())
	assert.Equal(t, []string{"exists /tmp"}, f.fs.Calls())
	assert.Empty(t, f.buffer.String())
}

func TestDispatcher_Exit(t *testing.T) {
	f := newDispatchFixture(t)

	err := f.dispatcher.Dispatch(context.Background(), []string{"exit"}, f.state)

	assert.ErrorIs(t, err, varostypes.ErrExit)
	assert.Empty(t, f.buffer.String())
}

type failingCommand struct{}

func (failingCommand) ID() varostypes.CommandID { return varostypes.Help }
func (failingCommand) Name() string             { return "help" }
func (failingCommand) Description() string      { return "fails" }
func (failingCommand) Usage() string            { return "help" }
func (failingCommand) Execute(_ []string, _ varostypes.Env) error {
	return errors.New("boom")
}

func TestDispatcher_UnexpectedErrorIsRendered(t *testing.T) {
	registry := commands.NewRegistry()
	require.NoError(t, registry.Register(failingCommand{}))
	buffer := output.NewCaptureBuffer()
	d := NewDispatcher(registry, testutils.NewMockFilesystem(), output.NewPrinter(output.WithWriter(buffer), output.PlainText()))

	err := d.Dispatch(context.Background(), []string{"help"}, session.New("/"))

	require.NoError(t, err)
	assert.Equal(t, "boom\n", buffer.String())
}
