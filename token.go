package texpatch

type Kind int

const (
	TextToken Kind = iota
	CommandToken
	NewlineToken
	EqualsToken
	CommentToken
	EscapeToken
	EnvironmentStartToken
	EnvironmentEndToken
)

var kindNames = [...]string{
	TextToken:             "text",
	CommandToken:          "command",
	NewlineToken:          "newline",
	EqualsToken:           "equals",
	CommentToken:          "comment",
	EscapeToken:           "escape",
	EnvironmentStartToken: "environment-start",
	EnvironmentEndToken:   "environment-end",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Token is a highlighted span of patch notation. Start and End are character
// offsets, End is exclusive.
type Token struct {
	Kind  Kind
	Value string // raw text of the span
	Name  string // command or environment name, without backslash or braces
	Start int
	End   int
}
