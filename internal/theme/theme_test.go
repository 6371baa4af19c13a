package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailable(t *testing.T) {
	assert.Equal(t, []string{"default", "plain"}, Available())
}

func TestLoad(t *testing.T) {
	for _, name := range []string{"default", "plain"} {
		t.Run(name, func(t *testing.T) {
			th, err := Load(name)
			require.NoError(t, err)
			assert.Equal(t, name, th.Name)
			assert.True(t, th.IsAvailable())
			assert.NotEmpty(t, th.Description)
		})
	}
}

func TestLoad_DefaultWhenEmpty(t *testing.T) {
	th, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, th.Name)
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme neon")
	assert.Contains(t, err.Error(), "default, plain")
}

func TestParse(t *testing.T) {
	data := []byte(`
name: custom
styles:
  error:
    foreground: "#FF0000"
    bold: true
  prompt:
    foreground:
      light: "#000000"
      dark: "#FFFFFF"
    underline: true
`)
	th, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "custom", th.Name)

	errStyle, ok := th.Style("error")
	require.True(t, ok)
	assert.True(t, errStyle.GetBold())
	assert.Equal(t, lipgloss.Color("#FF0000"), errStyle.GetForeground())

	promptStyle, ok := th.Style("prompt")
	require.True(t, ok)
	assert.True(t, promptStyle.GetUnderline())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}, promptStyle.GetForeground())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("name: [unclosed"))
	assert.Error(t, err)

	_, err = Parse([]byte("styles: {}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}

func TestTheme_UnknownSemanticIsUnstyled(t *testing.T) {
	th, err := Load("plain")
	require.NoError(t, err)
	assert.Equal(t, "text", th.GetStyle("nonexistent").Render("text"))

	_, ok := th.Style("nonexistent")
	assert.False(t, ok)
}

func TestTheme_SetAvailable(t *testing.T) {
	th, err := Load("default")
	require.NoError(t, err)

	th.SetAvailable(false)
	assert.False(t, th.IsAvailable())
}
