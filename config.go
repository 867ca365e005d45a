package texpatch

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// Config selects which patch rules Compile applies. The zero value applies none
// and Compile returns the source unchanged.
//
// Rules run in a fixed order, and the order is part of the contract:
//
//  1. CommentMarker rewrite
//  2. AutoNewlines insertion
//  3. BaseEnvironment wrapping
//  4. EqualsSignToAmpersandEquals rewrite
//
// The wrapper is added after newline insertion, so its own line breaks never
// receive a \\ marker. The equals rewrite runs last and also rewrites an equals
// sign inside the environment name.
type Config struct {
	// AutoNewlines inserts \\ before every newline unless an unescaped % appears
	// earlier on the same line.
	AutoNewlines bool `toml:"autoNewlines"`

	// CommentMarker is an alternative comment token. When set, literal % is
	// escaped and every marker not preceded by \ becomes %. Empty means unset.
	CommentMarker string `toml:"commentMarker"`

	// BaseEnvironment wraps the output in \begin{...} and \end{...}. Empty means unset.
	BaseEnvironment string `toml:"baseEnvironment"`

	// EqualsSignToAmpersandEquals replaces every = with &=.
	EqualsSignToAmpersandEquals bool `toml:"equalsSignToAmpersandEquals"`
}

// DecodeConfig reads a TOML document into Config. Unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	var cfg Config
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func (c Config) header() string {
	if c.BaseEnvironment == "" {
		return ""
	}

	return "\\begin{" + c.BaseEnvironment + "}\n"
}

func (c Config) footer() string {
	if c.BaseEnvironment == "" {
		return ""
	}

	return "\n\\end{" + c.BaseEnvironment + "}"
}
