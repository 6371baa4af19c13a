// Package output provides the console output system for VAROS.
// Styling is injected through StyleProvider so the printer itself stays free of
// theme dependencies.
package output

// StyleProvider is implemented by theme.Theme to provide styled rendering.
// The output package depends only on this interface.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the provider can style text right now.
	IsAvailable() bool
}

// TextStyle represents the capability to render text with styling.
type TextStyle interface {
	Render(text string) string
}

// Mode defines the output modes the printer can operate in.
type Mode int

const (
	// ModeAuto styles output when a StyleProvider is available
	ModeAuto Mode = iota

	// ModePlain forces plain text output
	ModePlain
)

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain represents command output such as ls entries.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticError represents user-visible error messages.
	SemanticError SemanticType = "error"
	// SemanticBanner represents the startup banner.
	SemanticBanner SemanticType = "banner"
	// SemanticPrompt represents the input prompt.
	SemanticPrompt SemanticType = "prompt"
)
