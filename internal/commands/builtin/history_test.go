package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"varos/internal/testutils"
	"varos/pkg/varostypes"
)

func TestHistoryCommand_Metadata(t *testing.T) {
	cmd := &HistoryCommand{}
	assert.Equal(t, "history", cmd.Name())
	assert.Equal(t, varostypes.History, cmd.ID())
	assert.Equal(t, "show command history", cmd.Description())
}

func TestHistoryCommand_Execute_Empty(t *testing.T) {
	te := testutils.NewTestEnv("/", nil)

	require.NoError(t, (&HistoryCommand{}).Execute([]string{"history"}, te.Env))
	assert.Empty(t, te.Buffer.String())
}

func TestHistoryCommand_Execute_PrintsRawLinesInOrder(t *testing.T) {
	te := testutils.NewTestEnv("/", nil)
	te.State.AppendHistory("cd /var")
	te.State.AppendHistory("  ls   /var  ")
	te.State.AppendHistory("bogus")

	require.NoError(t, (&HistoryCommand{}).Execute([]string{"history"}, te.Env))
	assert.Equal(t, "cd /var\n  ls   /var  \nbogus\n", te.Buffer.String())
}

func TestHistoryCommand_Execute_IgnoresArguments(t *testing.T) {
	te := testutils.NewTestEnv("/", nil)
	te.State.AppendHistory("help")

	require.NoError(t, (&HistoryCommand{}).Execute([]string{"history", "extra", "args"}, te.Env))
	assert.Equal(t, []string{"help"}, te.Buffer.Lines())
	assert.Equal(t, 1, te.State.HistoryLen())
}
