package texpatch

// isLetter returns true for a letter allowed in a command name
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n', '\t', '\r':
		return true
	default:
		return false
	}
}

// isLineBreak reports whether command name forces a line break
func isLineBreak(name string) bool {
	return name == "\\\\" || name == "\\newline"
}
