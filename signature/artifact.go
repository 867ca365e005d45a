package signature

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// WriteNames writes the command names of t as a JSON array, sorted so that the
// same reference documents always produce the same file.
func WriteNames(w io.Writer, t *Table) error {
	names := t.SortedNames()
	if names == nil {
		names = []string{}
	}

	if err := json.NewEncoder(w).Encode(names); err != nil {
		return fmt.Errorf("write names: %w", err)
	}

	return nil
}

// ReadNames reads a JSON array of command names as written by WriteNames.
func ReadNames(r io.Reader) ([]string, error) {
	var names []string
	if err := json.NewDecoder(r).Decode(&names); err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}

	return names, nil
}

type format struct {
	Name             string  `json:"name"`
	ParameterOptions []Shape `json:"parameterOptions"`
}

// WriteFormats writes every command together with its shapes, sorted by name.
func WriteFormats(w io.Writer, t *Table) error {
	formats := make([]format, 0, t.Len())
	for _, name := range t.SortedNames() {
		formats = append(formats, format{Name: name, ParameterOptions: t.shapes[name]})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(formats); err != nil {
		return fmt.Errorf("write formats: %w", err)
	}

	return nil
}

// ReadFormats reads a table written by WriteFormats.
func ReadFormats(r io.Reader) (*Table, error) {
	var formats []format
	if err := json.NewDecoder(r).Decode(&formats); err != nil {
		return nil, fmt.Errorf("read formats: %w", err)
	}

	t := NewTable()
	for _, f := range formats {
		if f.Name == "" {
			return nil, errors.New("read formats: command name is empty")
		}

		for _, s := range f.ParameterOptions {
			t.Add(f.Name, s)
		}
	}

	return t, nil
}
