// Package token splits a raw command line into argument tokens.
package token

import "strings"

// Parse splits line into tokens, honoring double quotes and backslash
// escapes. It is total: malformed input never fails, an unterminated quote
// simply consumes the rest of the line as one token.
//
// Rules, applied per character in order:
//   - A quote at a token boundary (empty accumulator) opens quoting and is
//     dropped from the output.
//   - An unescaped quote while quoting closes the token.
//   - An unescaped space outside quotes is a token boundary; runs of spaces
//     collapse.
//   - Everything else is accumulated verbatim. This includes the backslash
//     itself: `a\ b` parses to one token `a\ b`, with the backslash kept.
//
// End of input always flushes the accumulator, so a line ending at a token
// boundary carries a trailing empty token and Parse("") is [""]. Callers
// that only want arguments should drop empty tokens.
func Parse(line string) []string {
	var tokens []string
	var acc strings.Builder
	inQuotes := false
	var prev rune

	for _, c := range line {
		switch {
		case c == '"' && acc.Len() == 0:
			inQuotes = true
		case c == '"' && prev != '\\' && inQuotes:
			tokens = append(tokens, acc.String())
			acc.Reset()
			inQuotes = false
		case c == ' ' && prev != '\\' && !inQuotes:
			if acc.Len() > 0 {
				tokens = append(tokens, acc.String())
				acc.Reset()
			}
		default:
			acc.WriteRune(c)
			prev = c
		}
	}

	return append(tokens, acc.String())
}

// Args is Parse with empty tokens removed; what a shell actually executes.
func Args(line string) []string {
	var args []string
	for _, t := range Parse(line) {
		if t != "" {
			args = append(args, t)
		}
	}
	return args
}
