package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	debug      bool

	autoNewlines    bool
	commentMarker   string
	baseEnvironment string
	equals          bool

	logger *slog.Logger
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:           "texpatch",
		Short:         "Expand patch notation into LaTeX and prepare autocomplete data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			o.logger = newLogger(cmd.ErrOrStderr(), o.debug)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&o.configPath, "config", "c", "", "Path to TOML file with patch rules")
	rootCmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&o.autoNewlines, "auto-newlines", false, "Insert \\\\ before newlines outside comments")
	rootCmd.PersistentFlags().StringVar(&o.commentMarker, "comment-marker", "", "Alternative comment marker rewritten to %")
	rootCmd.PersistentFlags().StringVar(&o.baseEnvironment, "base-environment", "", "Environment wrapped around the output")
	rootCmd.PersistentFlags().BoolVar(&o.equals, "equals-to-ampersand", false, "Rewrite = to &=")

	rootCmd.AddCommand(
		newCompileCmd(o),
		newMapCmd(o),
		newTokensCmd(o),
		newSignaturesCmd(o),
	)

	return rootCmd
}

// newLogger writes plain key=value lines without time and level noise
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
