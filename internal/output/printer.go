package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer is the output handler for everything the user sees on stdout.
// Plain rendering writes text unchanged so messages stay byte-exact.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	silent        bool

	mu sync.Mutex
}

// NewPrinter creates a new Printer with the given options.
// By default, it writes to os.Stdout in ModeAuto.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Print outputs text without a trailing newline.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf outputs formatted text without a trailing newline.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text followed by a newline.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info outputs informational text.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Error outputs a user-visible error message.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Banner outputs the startup banner.
func (p *Printer) Banner(text string) {
	p.output(SemanticBanner, text, true)
}

// Prompt outputs the input prompt with no trailing newline.
func (p *Printer) Prompt(text string) {
	p.output(SemanticPrompt, text, false)
}

// Render returns text as it would be written for semantic, without writing it.
func (p *Printer) Render(semantic SemanticType, text string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.render(semantic, text)
}

func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	finalText := p.render(semantic, text)
	if addNewline && !strings.HasSuffix(finalText, "\n") {
		finalText += "\n"
	}

	_, _ = fmt.Fprint(p.writer, finalText) // Ignore write errors for output operations
}

func (p *Printer) render(semantic SemanticType, text string) string {
	if p.mode == ModePlain || !p.isStylable() {
		return text
	}
	return p.styleProvider.GetStyle(string(semantic)).Render(text)
}

func (p *Printer) isStylable() bool {
	return p.mode != ModePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

// SetWriter changes the output writer.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// Writer returns the current output writer.
func (p *Printer) Writer() io.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writer
}

// SetStyleProvider changes the style provider. Pass nil to disable styling.
func (p *Printer) SetStyleProvider(provider StyleProvider) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.styleProvider = provider
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isStylable()
}

// String returns a string representation for debugging.
func (p *Printer) String() string {
	hasStyles := "no"
	if p.IsStylable() {
		hasStyles = "yes"
	}
	return fmt.Sprintf("Printer{mode: %v, styles: %s, writer: %T}", p.mode, hasStyles, p.writer)
}
