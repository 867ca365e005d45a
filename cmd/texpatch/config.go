package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/eolymp/go-texpatch"
	"github.com/spf13/cobra"
)

// ConfigError reports a patch rule source which could not be used.
type ConfigError struct {
	Path string // file path or environment variable
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

const (
	envAutoNewlines    = "TEXPATCH_AUTO_NEWLINES"
	envCommentMarker   = "TEXPATCH_COMMENT_MARKER"
	envBaseEnvironment = "TEXPATCH_BASE_ENVIRONMENT"
	envEquals          = "TEXPATCH_EQUALS_TO_AMPERSAND"
)

// resolveConfig layers patch rules: TOML file, then environment, then flags
// given explicitly on the command line.
func resolveConfig(cmd *cobra.Command, o *options) (texpatch.Config, error) {
	var cfg texpatch.Config

	if o.configPath != "" {
		f, err := os.Open(o.configPath)
		if err != nil {
			return cfg, &ConfigError{Path: o.configPath, Err: err}
		}
		defer f.Close()

		cfg, err = texpatch.DecodeConfig(f)
		if err != nil {
			return cfg, &ConfigError{Path: o.configPath, Err: err}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("auto-newlines") {
		cfg.AutoNewlines = o.autoNewlines
	}

	if flags.Changed("comment-marker") {
		cfg.CommentMarker = o.commentMarker
	}

	if flags.Changed("base-environment") {
		cfg.BaseEnvironment = o.baseEnvironment
	}

	if flags.Changed("equals-to-ampersand") {
		cfg.EqualsSignToAmpersandEquals = o.equals
	}

	o.logger.Debug("patch rules resolved",
		"autoNewlines", cfg.AutoNewlines,
		"commentMarker", cfg.CommentMarker,
		"baseEnvironment", cfg.BaseEnvironment,
		"equalsSignToAmpersandEquals", cfg.EqualsSignToAmpersandEquals,
	)

	return cfg, nil
}

func applyEnv(cfg *texpatch.Config) error {
	for name, dst := range map[string]*bool{
		envAutoNewlines: &cfg.AutoNewlines,
		envEquals:       &cfg.EqualsSignToAmpersandEquals,
	} {
		val, ok := os.LookupEnv(name)
		if !ok {
			continue
		}

		b, err := strconv.ParseBool(val)
		if err != nil {
			return &ConfigError{Path: name, Err: err}
		}

		*dst = b
	}

	if val, ok := os.LookupEnv(envCommentMarker); ok {
		cfg.CommentMarker = val
	}

	if val, ok := os.LookupEnv(envBaseEnvironment); ok {
		cfg.BaseEnvironment = val
	}

	return nil
}
