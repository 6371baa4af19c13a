package shell

import (
	"fmt"
	"strings"

	"varos/pkg/varostypes"
)

// Banner renders the startup box naming every registered command.
func Banner(cmds []varostypes.Command) string {
	lines := []string{
		"WELCOME TO VAROS TERMINAL!",
		"Supported commands are:",
	}

	nameWidth := 0
	for _, cmd := range cmds {
		if n := len(cmd.Name()) + 1; n > nameWidth {
			nameWidth = n
		}
	}
	for i, cmd := range cmds {
		lines = append(lines, fmt.Sprintf("%d)%-*s %s", i+1, nameWidth, cmd.Name()+":", cmd.Description()))
	}

	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}

	border := strings.Repeat("=", width+6)
	var sb strings.Builder
	sb.WriteString(border)
	sb.WriteString("\n")
	for _, l := range lines {
		fmt.Fprintf(&sb, "== %-*s ==\n", width, l)
	}
	sb.WriteString(border)
	return sb.String()
}
