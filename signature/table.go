// Package signature derives, for every backslash command mentioned in a
// reference document, the parameter shapes it is used with.
package signature

import "sort"

// Shape is one observed parameter pattern: how many [..] groups and how many
// {..} groups follow the command.
type Shape struct {
	Brackets int `json:"bracketParameters"`
	Braces   int `json:"curlyBracketParameters"`
}

// Table maps command names (without backslash) to their distinct shapes.
// Names and shapes keep the order in which they were first seen. A Table is
// not safe for concurrent modification.
type Table struct {
	names  []string
	shapes map[string][]Shape
}

func NewTable() *Table {
	return &Table{shapes: map[string][]Shape{}}
}

// Add records shape for name and reports whether it was new.
func (t *Table) Add(name string, shape Shape) bool {
	shapes, ok := t.shapes[name]
	if !ok {
		t.names = append(t.names, name)
	}

	for _, s := range shapes {
		if s == shape {
			return false
		}
	}

	t.shapes[name] = append(shapes, shape)
	return true
}

// Shapes returns the shapes recorded for name, nil for an unknown name.
func (t *Table) Shapes(name string) []Shape {
	shapes := t.shapes[name]
	if shapes == nil {
		return nil
	}

	return append([]Shape(nil), shapes...)
}

func (t *Table) Has(name string) bool {
	_, ok := t.shapes[name]
	return ok
}

// Names returns command names in first-seen order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// SortedNames returns command names in lexical order.
func (t *Table) SortedNames() []string {
	names := t.Names()
	sort.Strings(names)
	return names
}

func (t *Table) Len() int {
	return len(t.names)
}

// Merge adds every shape of other to t.
func (t *Table) Merge(other *Table) {
	for _, name := range other.names {
		for _, s := range other.shapes[name] {
			t.Add(name, s)
		}
	}
}

// Equal reports whether both tables hold the same names with the same sets of
// shapes, ignoring order.
func (t *Table) Equal(other *Table) bool {
	if t.Len() != other.Len() {
		return false
	}

	for name, shapes := range t.shapes {
		theirs, ok := other.shapes[name]
		if !ok || len(theirs) != len(shapes) {
			return false
		}

		for _, s := range shapes {
			found := false
			for _, o := range theirs {
				if s == o {
					found = true
					break
				}
			}

			if !found {
				return false
			}
		}
	}

	return true
}
