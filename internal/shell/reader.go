package shell

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"varos/internal/output"
)

// LineReader shows a prompt and blocks until one input line is available.
// It returns io.EOF once input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// StdinIsTerminal reports whether stdin is an interactive terminal.
func StdinIsTerminal() bool {
	return readline.IsTerminal(int(os.Stdin.Fd()))
}

// BufferedReader reads newline-delimited lines from any io.Reader and writes
// the prompt through a printer. It serves pipes, files and tests.
type BufferedReader struct {
	reader  *bufio.Reader
	printer *output.Printer
	done    bool
}

// NewBufferedReader creates a reader over r that prompts on printer.
func NewBufferedReader(r io.Reader, printer *output.Printer) *BufferedReader {
	return &BufferedReader{
		reader:  bufio.NewReader(r),
		printer: printer,
	}
}

// ReadLine prints prompt and returns the next line without its line ending.
// A final line lacking a newline is still returned before io.EOF. When input
// ends at a prompt a newline is written so the terminal is left clean.
func (b *BufferedReader) ReadLine(prompt string) (string, error) {
	if b.done {
		return "", io.EOF
	}
	b.printer.Prompt(prompt)

	line, err := b.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		b.done = true
		if line == "" {
			b.printer.Println("")
			return "", io.EOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Close implements LineReader.
func (b *BufferedReader) Close() error {
	return nil
}

// ReadlineReader reads lines from the terminal with line editing. Its
// history lives in memory only.
type ReadlineReader struct {
	rl      *readline.Instance
	printer *output.Printer
}

// NewReadlineReader creates a terminal reader. Prompts are rendered with the
// printer's styles.
func NewReadlineReader(printer *output.Printer) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdout:          printer.Writer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineReader{rl: rl, printer: printer}, nil
}

// ReadLine shows prompt and returns the edited line. Ctrl-C yields an empty
// line and Ctrl-D yields io.EOF.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(r.printer.Render(output.SemanticPrompt, prompt))
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

// Close restores the terminal.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
