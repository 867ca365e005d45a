package texpatch_test

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/eolymp/go-texpatch"
)

func TestLexer(t *testing.T) {
	tok := func(kind texpatch.Kind, value, name string, start, end int) texpatch.Token {
		return texpatch.Token{Kind: kind, Value: value, Name: name, Start: start, End: end}
	}

	tt := []struct {
		name   string
		marker string
		input  string
		output []texpatch.Token
	}{
		{
			name:  "equals",
			input: "a = b",
			output: []texpatch.Token{
				tok(texpatch.TextToken, "a ", "", 0, 2),
				tok(texpatch.EqualsToken, "=", "", 2, 3),
				tok(texpatch.TextToken, " b", "", 3, 5),
			},
		},
		{
			name:  "ampersand equals",
			input: "x &= y",
			output: []texpatch.Token{
				tok(texpatch.TextToken, "x ", "", 0, 2),
				tok(texpatch.EqualsToken, "&=", "", 2, 4),
				tok(texpatch.TextToken, " y", "", 4, 6),
			},
		},
		{
			name:  "lone ampersand",
			input: "a & b",
			output: []texpatch.Token{
				tok(texpatch.TextToken, "a ", "", 0, 2),
				tok(texpatch.TextToken, "& b", "", 2, 5),
			},
		},
		{
			name:  "command",
			input: "\\frac{a}{b}",
			output: []texpatch.Token{
				tok(texpatch.CommandToken, "\\frac", "frac", 0, 5),
				tok(texpatch.TextToken, "{a}{b}", "", 5, 11),
			},
		},
		{
			name:  "command followed by equals",
			input: "\\alpha=1",
			output: []texpatch.Token{
				tok(texpatch.CommandToken, "\\alpha", "alpha", 0, 6),
				tok(texpatch.EqualsToken, "=", "", 6, 7),
				tok(texpatch.TextToken, "1", "", 7, 8),
			},
		},
		{
			name:  "line break",
			input: "a\\\\\nb",
			output: []texpatch.Token{
				tok(texpatch.TextToken, "a", "", 0, 1),
				tok(texpatch.NewlineToken, "\\\\", "", 1, 3),
				tok(texpatch.TextToken, "\n", "", 3, 4),
				tok(texpatch.TextToken, "b", "", 4, 5),
			},
		},
		{
			name:  "newline command",
			input: "\\newline",
			output: []texpatch.Token{
				tok(texpatch.NewlineToken, "\\newline", "newline", 0, 8),
			},
		},
		{
			name:  "percent comment",
			input: "x % note\ny",
			output: []texpatch.Token{
				tok(texpatch.TextToken, "x ", "", 0, 2),
				tok(texpatch.CommentToken, "% note", "", 2, 8),
				tok(texpatch.TextToken, "\n", "", 8, 9),
				tok(texpatch.TextToken, "y", "", 9, 10),
			},
		},
		{
			name:   "custom comment marker",
			marker: "//",
			input:  "a // b\n",
			output: []texpatch.Token{
				tok(texpatch.TextToken, "a ", "", 0, 2),
				tok(texpatch.CommentToken, "// b", "", 2, 6),
				tok(texpatch.TextToken, "\n", "", 6, 7),
			},
		},
		{
			name:   "partial comment marker",
			marker: "//",
			input:  "a / b",
			output: []texpatch.Token{
				tok(texpatch.TextToken, "a ", "", 0, 2),
				tok(texpatch.TextToken, "/ b", "", 2, 5),
			},
		},
		{
			name:   "escaped comment marker",
			marker: "//",
			input:  "\\//",
			output: []texpatch.Token{
				tok(texpatch.EscapeToken, "\\/", "", 0, 2),
				tok(texpatch.TextToken, "/", "", 2, 3),
			},
		},
		{
			name:  "escaped percent",
			input: "\\%",
			output: []texpatch.Token{
				tok(texpatch.EscapeToken, "\\%", "", 0, 2),
			},
		},
		{
			name:  "environment",
			input: "\\begin{align}x\\end{align}",
			output: []texpatch.Token{
				tok(texpatch.EnvironmentStartToken, "\\begin{align}", "align", 0, 13),
				tok(texpatch.TextToken, "x", "", 13, 14),
				tok(texpatch.EnvironmentEndToken, "\\end{align}", "align", 14, 25),
			},
		},
		{
			name:  "starred environment",
			input: "\\begin{align*}",
			output: []texpatch.Token{
				tok(texpatch.EnvironmentStartToken, "\\begin{align*}", "align*", 0, 14),
			},
		},
		{
			name:  "begin without environment",
			input: "\\begin x",
			output: []texpatch.Token{
				tok(texpatch.CommandToken, "\\begin", "begin", 0, 6),
				tok(texpatch.TextToken, " x", "", 6, 8),
			},
		},
		{
			name:  "unterminated environment",
			input: "\\end{ali",
			output: []texpatch.Token{
				tok(texpatch.CommandToken, "\\end", "end", 0, 4),
				tok(texpatch.TextToken, "{ali", "", 4, 8),
			},
		},
		{
			name:  "trailing backslash",
			input: "\\",
			output: []texpatch.Token{
				tok(texpatch.TextToken, "\\", "", 0, 1),
			},
		},
		{
			name:  "offsets count characters",
			input: "α=β",
			output: []texpatch.Token{
				tok(texpatch.TextToken, "α", "", 0, 1),
				tok(texpatch.EqualsToken, "=", "", 1, 2),
				tok(texpatch.TextToken, "β", "", 2, 3),
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			lexer := texpatch.NewLexer(strings.NewReader(tc.input), tc.marker)

			var got []texpatch.Token

			for {
				token, err := lexer.Token()
				if err == io.EOF {
					break
				}

				if err != nil {
					t.Fatalf("Unable to read token: %v", err)
				}

				got = append(got, token)
			}

			want := tc.output

			if !reflect.DeepEqual(want, got) {
				t.Errorf("Tokens do not match:\n want %#v\n  got %#v\n", want, got)
			}
		})
	}
}

func TestFolds(t *testing.T) {
	tokens, err := texpatch.Tokenize("\\begin{a}\\begin{b}x\\end{b}\\end{a}\\end{c}", "")
	if err != nil {
		t.Fatal(err)
	}

	want := []texpatch.Fold{
		{Name: "b", Start: 9, End: 26},
		{Name: "a", Start: 0, End: 33},
	}

	if got := texpatch.Folds(tokens); !reflect.DeepEqual(want, got) {
		t.Errorf("Folds do not match:\n want %#v\n  got %#v\n", want, got)
	}
}

func TestKindString(t *testing.T) {
	if got := texpatch.EnvironmentStartToken.String(); got != "environment-start" {
		t.Errorf("Kind name does not match: got %q", got)
	}

	if got := texpatch.Kind(99).String(); got != "unknown" {
		t.Errorf("Kind name does not match: got %q", got)
	}
}
