// Package parser splits raw VAROS input lines into tokens.
package parser

// Tokenize returns the maximal runs of word and path characters in line, in
// input order. Every other byte separates tokens and is dropped. There is no
// quoting or escaping, and the command name is not distinguished here.
func Tokenize(line string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(line); i++ {
		if isTokenByte(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, line[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, line[start:])
	}
	return tokens
}

// isTokenByte reports whether c belongs to the token alphabet [A-Za-z0-9_/?].
func isTokenByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '/', c == '?':
		return true
	}
	return false
}
