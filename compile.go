package texpatch

import "strings"

// unit is one output character together with the index of the source
// character it came from. Header characters carry -1, footer characters carry
// the source length.
type unit struct {
	r   rune
	src int
}

// Compile expands patch notation into LaTeX according to cfg.
func Compile(cfg Config, source string) string {
	out, _ := CompileWithMap(cfg, source)
	return out
}

// CompileWithMap expands patch notation like Compile and also returns a map
// from every output position back to the source.
func CompileWithMap(cfg Config, source string) (string, *SourceMap) {
	runes := []rune(source)

	units := make([]unit, len(runes))
	for i, r := range runes {
		units[i] = unit{r: r, src: i}
	}

	if cfg.CommentMarker != "" {
		units = rewriteComments(units, []rune(cfg.CommentMarker))
	}

	if cfg.AutoNewlines {
		units = insertNewlines(units)
	}

	if cfg.BaseEnvironment != "" {
		units = wrap(units, cfg.header(), cfg.footer(), len(runes))
	}

	if cfg.EqualsSignToAmpersandEquals {
		units = rewriteEquals(units)
	}

	var b strings.Builder
	b.Grow(len(units))
	for _, u := range units {
		b.WriteRune(u.r)
	}

	return b.String(), newSourceMap(units, len(runes))
}

// rewriteComments escapes literal % and turns every marker which is not
// preceded by a backslash into %. The lookbehind checks the escaped text, not
// the text produced by earlier replacements.
func rewriteComments(units []unit, marker []rune) []unit {
	escaped := make([]unit, 0, len(units))
	for _, u := range units {
		if u.r == '%' {
			escaped = append(escaped, unit{r: '\\', src: u.src})
		}

		escaped = append(escaped, u)
	}

	out := make([]unit, 0, len(escaped))
	for i := 0; i < len(escaped); {
		if hasPrefix(escaped[i:], marker) && (i == 0 || escaped[i-1].r != '\\') {
			// attributed to the last marker character, so the whole marker is
			// consumed before its % counts as output
			out = append(out, unit{r: '%', src: escaped[i+len(marker)-1].src})
			i += len(marker)
			continue
		}

		out = append(out, escaped[i])
		i++
	}

	return out
}

// insertNewlines puts \\ in front of every newline unless the line already
// contains an unescaped %.
func insertNewlines(units []unit) []unit {
	out := make([]unit, 0, len(units))
	comment := false
	slashes := 0

	for _, u := range units {
		if u.r == '\n' {
			if !comment {
				out = append(out, unit{r: '\\', src: u.src}, unit{r: '\\', src: u.src})
			}

			out = append(out, u)
			comment = false
			slashes = 0
			continue
		}

		if u.r == '%' && slashes%2 == 0 {
			comment = true
		}

		if u.r == '\\' {
			slashes++
		} else {
			slashes = 0
		}

		out = append(out, u)
	}

	return out
}

func wrap(units []unit, header, footer string, end int) []unit {
	out := make([]unit, 0, len(units)+len(header)+len(footer))
	for _, r := range header {
		out = append(out, unit{r: r, src: -1})
	}

	out = append(out, units...)

	for _, r := range footer {
		out = append(out, unit{r: r, src: end})
	}

	return out
}

func rewriteEquals(units []unit) []unit {
	out := make([]unit, 0, len(units))
	for _, u := range units {
		if u.r == '=' {
			out = append(out, unit{r: '&', src: u.src})
		}

		out = append(out, u)
	}

	return out
}

func hasPrefix(units []unit, prefix []rune) bool {
	if len(units) < len(prefix) {
		return false
	}

	for i, r := range prefix {
		if units[i].r != r {
			return false
		}
	}

	return true
}
