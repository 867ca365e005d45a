package main

import (
	"fmt"
	"strconv"

	"github.com/eolymp/go-texpatch"
	"github.com/spf13/cobra"
)

func newTokensCmd(o *options) *cobra.Command {
	var folds bool

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print highlight tokens of patch notation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, o)
			if err != nil {
				return err
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			src, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			tokens, err := texpatch.Tokenize(src, cfg.CommentMarker)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if folds {
				for _, f := range texpatch.Folds(tokens) {
					fmt.Fprintf(out, "%s\t%d\t%d\n", f.Name, f.Start, f.End)
				}

				return nil
			}

			for _, t := range tokens {
				fmt.Fprintf(out, "%s\t%d\t%d\t%s\n", t.Kind, t.Start, t.End, strconv.Quote(t.Value))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&folds, "folds", false, "Print foldable environments instead of tokens")

	return cmd
}
