package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// IsTerminal checks if stdout is a terminal.
func IsTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}

// SupportsColor returns true if stdout is a terminal that can render colors.
func SupportsColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !IsTerminal() {
		return false
	}
	return lipgloss.ColorProfile() != termenv.Ascii
}
