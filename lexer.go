package texpatch

import (
	"io"
	"strings"
)

// Lexer splits patch notation into highlight tokens: commands, line breaks,
// equals signs, comments and environment markers. Everything else is text.
type Lexer struct {
	r      io.RuneReader
	marker []rune
	back   []rune // pushed back runes, the last one is read first
	pos    int
}

// NewLexer creates a lexer. marker is the comment marker, % when empty.
func NewLexer(r io.RuneReader, marker string) *Lexer {
	if marker == "" {
		marker = "%"
	}

	return &Lexer{r: r, marker: []rune(marker)}
}

// Tokenize reads all tokens from src.
func Tokenize(src, marker string) ([]Token, error) {
	l := NewLexer(strings.NewReader(src), marker)

	var tokens []Token
	for {
		t, err := l.Token()
		if err == io.EOF {
			return tokens, nil
		}

		if err != nil {
			return nil, err
		}

		tokens = append(tokens, t)
	}
}

// Token returns the next token or io.EOF.
func (l *Lexer) Token() (Token, error) {
	start := l.pos

	char, err := l.read()
	if err != nil {
		return Token{}, err
	}

	if char == l.marker[0] {
		ok, err := l.match(l.marker[1:])
		if err != nil {
			return Token{}, err
		}

		if ok {
			return l.readComment(start)
		}
	}

	switch char {
	case '\\':
		return l.readBackslash(start)
	case '=':
		return l.token(EqualsToken, "=", "", start), nil
	case '&':
		next, err := l.read()
		if err != nil && err != io.EOF {
			return Token{}, err
		}

		if err == nil {
			if next == '=' {
				return l.token(EqualsToken, "&=", "", start), nil
			}

			l.unread(next)
		}

		return l.readText(start, []rune{char})
	default:
		return l.readText(start, []rune{char})
	}
}

func (l *Lexer) token(kind Kind, value, name string, start int) Token {
	return Token{Kind: kind, Value: value, Name: name, Start: start, End: l.pos}
}

func (l *Lexer) readText(start int, runes []rune) (Token, error) {
	if runes[len(runes)-1] == '\n' {
		return l.token(TextToken, string(runes), "", start), nil
	}

	for {
		read, err := l.read()
		if err == io.EOF {
			return l.token(TextToken, string(runes), "", start), nil
		}

		if err != nil {
			return Token{}, err
		}

		if l.isSpecial(read) {
			l.unread(read)
			return l.token(TextToken, string(runes), "", start), nil
		}

		runes = append(runes, read)

		if read == '\n' {
			return l.token(TextToken, string(runes), "", start), nil
		}
	}
}

// readComment reads the rest of the line after a comment marker. The line
// break itself is left for the next token.
func (l *Lexer) readComment(start int) (Token, error) {
	runes := append([]rune(nil), l.marker...)
	for {
		read, err := l.read()
		if err == io.EOF {
			return l.token(CommentToken, string(runes), "", start), nil
		}

		if err != nil {
			return Token{}, err
		}

		if read == '\n' {
			l.unread(read)
			return l.token(CommentToken, string(runes), "", start), nil
		}

		runes = append(runes, read)
	}
}

func (l *Lexer) readBackslash(start int) (Token, error) {
	r, err := l.read()
	if err == io.EOF {
		return l.token(TextToken, "\\", "", start), nil
	}

	if err != nil {
		return Token{}, err
	}

	if r == '\\' {
		return l.token(NewlineToken, "\\\\", "", start), nil
	}

	// a letter means it's a named command \xyz
	if isLetter(r) {
		l.unread(r)
		return l.readCommand(start)
	}

	// escaped special character, eg. \% or \{
	return l.token(EscapeToken, string([]rune{'\\', r}), "", start), nil
}

func (l *Lexer) readCommand(start int) (Token, error) {
	name, err := l.word(false)
	if err != nil {
		return Token{}, err
	}

	if name == "begin" || name == "end" {
		raw, env, err := l.environment()
		if err != nil {
			return Token{}, err
		}

		if env != "" {
			kind := EnvironmentStartToken
			if name == "end" {
				kind = EnvironmentEndToken
			}

			return l.token(kind, "\\"+name+raw, env, start), nil
		}
	}

	kind := CommandToken
	if isLineBreak("\\" + name) {
		kind = NewlineToken
	}

	return l.token(kind, "\\"+name, name, start), nil
}

// environment reads "{name}" after \begin or \end, skipping whitespaces in
// front of the brace. Nothing is consumed unless the whole group is present.
func (l *Lexer) environment() (raw string, name string, err error) {
	var consumed []rune

	for {
		r, err := l.read()
		if err == io.EOF {
			l.unreadAll(consumed)
			return "", "", nil
		}

		if err != nil {
			return "", "", err
		}

		consumed = append(consumed, r)
		if isWhitespace(r) {
			continue
		}

		if r != '{' {
			l.unreadAll(consumed)
			return "", "", nil
		}

		break
	}

	name, err = l.word(true)
	if err != nil {
		return "", "", err
	}

	consumed = append(consumed, []rune(name)...)

	r, err := l.read()
	if err != nil && err != io.EOF {
		return "", "", err
	}

	if err == io.EOF || r != '}' || name == "" {
		if err == nil {
			l.unread(r)
		}

		l.unreadAll(consumed)
		return "", "", nil
	}

	consumed = append(consumed, r)
	return string(consumed), name, nil
}

// word reads sequence of letters, environment names may also contain *
func (l *Lexer) word(star bool) (string, error) {
	var runes []rune
	for {
		read, err := l.read()
		if err == io.EOF {
			return string(runes), nil
		}

		if err != nil {
			return "", err
		}

		if !isLetter(read) && !(star && read == '*') {
			l.unread(read)
			return string(runes), nil
		}

		runes = append(runes, read)
	}
}

// match consumes rest if it follows, otherwise leaves the input untouched
func (l *Lexer) match(rest []rune) (bool, error) {
	var consumed []rune
	for _, want := range rest {
		r, err := l.read()
		if err == io.EOF {
			l.unreadAll(consumed)
			return false, nil
		}

		if err != nil {
			return false, err
		}

		consumed = append(consumed, r)
		if r != want {
			l.unreadAll(consumed)
			return false, nil
		}
	}

	return true, nil
}

// isSpecial returns true if a symbol may start a token other than text
func (l *Lexer) isSpecial(r rune) bool {
	switch r {
	case '\\', '=', '&':
		return true
	default:
		return r == l.marker[0]
	}
}

func (l *Lexer) read() (rune, error) {
	if n := len(l.back); n > 0 {
		r := l.back[n-1]
		l.back = l.back[:n-1]
		l.pos++
		return r, nil
	}

	r, _, err := l.r.ReadRune()
	if err != nil {
		return 0, err
	}

	l.pos++
	return r, nil
}

func (l *Lexer) unread(r rune) {
	l.back = append(l.back, r)
	l.pos--
}

func (l *Lexer) unreadAll(runes []rune) {
	for i := len(runes) - 1; i >= 0; i-- {
		l.unread(runes[i])
	}
}
