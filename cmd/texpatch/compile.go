package main

import (
	"fmt"

	"github.com/eolymp/go-texpatch"
	"github.com/spf13/cobra"
)

func newCompileCmd(o *options) *cobra.Command {
	var cacheSize int

	cmd := &cobra.Command{
		Use:   "compile [files...]",
		Short: "Expand patch notation into LaTeX",
		Long:  "Expand patch notation into LaTeX. Reads stdin when no file or \"-\" is given; several files are written one after another.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, o)
			if err != nil {
				return err
			}

			compiler, err := texpatch.NewCompiler(cfg, cacheSize)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{"-"}
			}

			for i, path := range args {
				src, err := readInput(cmd, path)
				if err != nil {
					return err
				}

				res := compiler.Compile(src)
				o.logger.Debug("compiled", "input", path, "source", res.Map.SourceLen(), "output", res.Map.OutputLen())

				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}

				fmt.Fprint(cmd.OutOrStdout(), res.Text)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&cacheSize, "cache-size", 64, "Number of compiled inputs kept in memory")

	return cmd
}
