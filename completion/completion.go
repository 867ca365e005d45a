// Package completion turns command names and snippet templates into
// autocomplete items for an editor.
package completion

import (
	"strconv"
	"strings"

	"github.com/eolymp/go-texpatch/signature"
)

type Kind int

const (
	FunctionKind Kind = iota
	SnippetKind
)

func (k Kind) String() string {
	switch k {
	case FunctionKind:
		return "function"
	case SnippetKind:
		return "snippet"
	default:
		return "unknown"
	}
}

// Item is one autocomplete suggestion. Completion is triggered by a backslash
// which the editor has already inserted, so InsertText never starts with one.
type Item struct {
	Label      string `json:"label"`
	InsertText string `json:"insertText"`
	Kind       Kind   `json:"kind"`
	SortText   string `json:"sortText,omitempty"`
}

// DefaultSnippets are templates offered on top of plain command names.
var DefaultSnippets = []string{"frac{}{}", "sqrt{}", "sqrt[]{}", "text{}"}

// snippetSortText makes editors list snippets above plain commands
const snippetSortText = "0"

// Snippet numbers the placeholders of template: every { and [ is followed by
// the next tab stop, eg. "frac{}{}" becomes "frac{$1}{$2}".
func Snippet(template string) string {
	var b strings.Builder
	n := 1

	for _, c := range template {
		b.WriteRune(c)

		if c == '{' || c == '[' {
			b.WriteString("$" + strconv.Itoa(n))
			n++
		}
	}

	return b.String()
}

// Items returns a function item for every name followed by a snippet item for
// every template.
func Items(names []string, snippets []string) []Item {
	items := make([]Item, 0, len(names)+len(snippets))
	for _, name := range names {
		items = append(items, Item{Label: "\\" + name, InsertText: name, Kind: FunctionKind})
	}

	for _, template := range snippets {
		items = append(items, Item{
			Label:      "\\" + template,
			InsertText: Snippet(template),
			Kind:       SnippetKind,
			SortText:   snippetSortText,
		})
	}

	return items
}

// ShapeItems returns a snippet item for every shape with parameters recorded in
// t, in lexical order of names. Optional [..] groups come first, as they do in
// LaTeX.
func ShapeItems(t *signature.Table) []Item {
	var items []Item
	for _, name := range t.SortedNames() {
		for _, s := range t.Shapes(name) {
			if s.Brackets == 0 && s.Braces == 0 {
				continue
			}

			template := name + strings.Repeat("[]", s.Brackets) + strings.Repeat("{}", s.Braces)
			items = append(items, Item{
				Label:      "\\" + template,
				InsertText: Snippet(template),
				Kind:       SnippetKind,
				SortText:   snippetSortText,
			})
		}
	}

	return items
}
