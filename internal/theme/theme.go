// Package theme loads the embedded VAROS themes and turns them into lipgloss
// styles for the output printer.
package theme

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"varos/internal/output"
)

//go:embed themes/*.yaml
var themeFiles embed.FS

// DefaultName is the theme used when none is configured.
const DefaultName = "default"

// File is the YAML layout of one theme file.
type File struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description,omitempty"`
	Styles      map[string]StyleConfig `yaml:"styles"`
}

// StyleConfig defines the visual styling of one semantic element.
// Foreground and Background accept a color string or a {light, dark} map.
type StyleConfig struct {
	Foreground interface{} `yaml:"foreground,omitempty"`
	Background interface{} `yaml:"background,omitempty"`
	Bold       *bool       `yaml:"bold,omitempty"`
	Italic     *bool       `yaml:"italic,omitempty"`
	Underline  *bool       `yaml:"underline,omitempty"`
}

// Theme is a named set of lipgloss styles keyed by semantic type.
// It implements output.StyleProvider.
type Theme struct {
	Name        string
	Description string
	styles      map[string]lipgloss.Style
	available   bool
}

var _ output.StyleProvider = (*Theme)(nil)

// Load returns the embedded theme called name.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	data, err := themeFiles.ReadFile("themes/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown theme %s (available: %s)", name, strings.Join(Available(), ", "))
	}
	return Parse(data)
}

// Parse decodes a theme from YAML.
func Parse(data []byte) (*Theme, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	if file.Name == "" {
		return nil, fmt.Errorf("theme file has no name")
	}

	t := &Theme{
		Name:        file.Name,
		Description: file.Description,
		styles:      make(map[string]lipgloss.Style, len(file.Styles)),
		available:   true,
	}
	for semantic, cfg := range file.Styles {
		t.styles[semantic] = createStyle(cfg)
	}
	return t, nil
}

// Available returns the names of the embedded themes, sorted.
func Available() []string {
	entries, err := themeFiles.ReadDir("themes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// SetAvailable toggles whether the theme offers styles to the printer.
// The shell disables it when stdout cannot render colors.
func (t *Theme) SetAvailable(available bool) {
	t.available = available
}

// GetStyle implements output.StyleProvider. Unknown semantics render unstyled.
func (t *Theme) GetStyle(semantic string) output.TextStyle {
	style, _ := t.Style(semantic)
	return textStyle{style: style}
}

// Style returns the lipgloss style for semantic and whether the theme
// defines one.
func (t *Theme) Style(semantic string) (lipgloss.Style, bool) {
	style, ok := t.styles[semantic]
	if !ok {
		return lipgloss.NewStyle(), false
	}
	return style, true
}

// IsAvailable implements output.StyleProvider.
func (t *Theme) IsAvailable() bool {
	return t.available
}

// textStyle adapts the variadic lipgloss Render to output.TextStyle.
type textStyle struct {
	style lipgloss.Style
}

func (s textStyle) Render(text string) string {
	return s.style.Render(text)
}

func createStyle(cfg StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if cfg.Foreground != nil {
		if color := parseColor(cfg.Foreground); color != nil {
			style = style.Foreground(color)
		}
	}
	if cfg.Background != nil {
		if color := parseColor(cfg.Background); color != nil {
			style = style.Background(color)
		}
	}

	if cfg.Bold != nil && *cfg.Bold {
		style = style.Bold(true)
	}
	if cfg.Italic != nil && *cfg.Italic {
		style = style.Italic(true)
	}
	if cfg.Underline != nil && *cfg.Underline {
		style = style.Underline(true)
	}

	return style
}

// parseColor parses a color string or a {light, dark} adaptive color map.
func parseColor(value interface{}) lipgloss.TerminalColor {
	switch v := value.(type) {
	case string:
		return lipgloss.Color(v)
	case map[string]interface{}:
		light, hasLight := v["light"].(string)
		dark, hasDark := v["dark"].(string)
		if hasLight && hasDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}
		}
	}
	return nil
}
