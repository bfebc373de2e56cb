package shell

import "strings"

// Fields splits line on runs of the space character. Unlike
// strings.Fields it does not treat other whitespace as a separator;
// the shell's grammar is spaces only, with no quoting or escapes.
func Fields(line string) []string {
	var tokens []string
	for _, tok := range strings.Split(line, " ") {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Remainder returns the maximal substring of line starting at the
// first non-space character after the first n tokens, with interior
// and trailing whitespace preserved verbatim. It returns the empty
// string when nothing follows.
func Remainder(line string, n int) string {
	i := 0
	for ; n > 0; n-- {
		for i < len(line) && line[i] == ' ' {
			i++
		}
		for i < len(line) && line[i] != ' ' {
			i++
		}
	}
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return line[i:]
}
