// Package text provides text manipulation functions.
package text

import "strings"

// Dedent removes a common indent from all lines in a string,
// allowing multi-line strings to be written inline with the code
// that uses them:
//
//	const s = text.Dedent(`
//		foo
//		  bar
//	`)
//
// The result is "foo\n  bar".
//
// The indent is taken from the first non-blank line.
// Lines that do not carry it are reproduced as is.
// A leading blank line and a trailing blank line are dropped.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	// Drop a trailing blank line:
	// the closing quote usually sits on its own line.
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}

	var indent string
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent = line[:len(line)-len(trimmed)]
		break
	}

	var out []string
	for i, line := range lines {
		// Skip a leading blank line left by the opening quote.
		if i == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, strings.TrimPrefix(line, indent))
	}
	return strings.Join(out, "\n")
}
