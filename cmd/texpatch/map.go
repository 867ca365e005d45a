package main

import (
	"errors"
	"fmt"

	"github.com/eolymp/go-texpatch"
	"github.com/spf13/cobra"
)

func newMapCmd(o *options) *cobra.Command {
	var (
		offsets []int
		forward bool
	)

	cmd := &cobra.Command{
		Use:   "map [file]",
		Short: "Map offsets in the compiled output back to the source",
		Long:  "Map character offsets in the compiled output back to the source, one result per line. With --forward, map source offsets to the output instead.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(offsets) == 0 {
				return errors.New("at least one --offset is required")
			}

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

			compiler, err := texpatch.NewCompiler(cfg, 1)
			if err != nil {
				return err
			}

			for _, offset := range offsets {
				var mapped int
				if forward {
					mapped = compiler.Compile(src).Map.OutputOffset(offset)
				} else {
					mapped = compiler.SourceOffset(src, offset)
				}

				o.logger.Debug("mapped offset", "from", offset, "to", mapped, "forward", forward)
				fmt.Fprintln(cmd.OutOrStdout(), mapped)
			}

			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&offsets, "offset", "o", nil, "Character offset to map (repeatable)")
	cmd.Flags().BoolVar(&forward, "forward", false, "Map source offsets to output offsets")

	return cmd
}
