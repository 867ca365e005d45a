package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eolymp/go-texpatch/completion"
	"github.com/eolymp/go-texpatch/signature"
	"github.com/spf13/cobra"
)

// maxDocumentSize bounds fetched reference documents, the extractor scans
// everything it is given
const maxDocumentSize = 8 << 20

func newSignaturesCmd(o *options) *cobra.Command {
	var (
		url         string
		noFetch     bool
		macros      bool
		out         string
		formats     string
		completions string
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "signatures [files...]",
		Short: "Extract command names and parameter shapes from reference documents",
		Long:  "Extract command names and parameter shapes from the KaTeX support table, the built-in KaTeX macros and any given files, and write the names as a JSON array.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var docs []string

			if !noFetch {
				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				defer cancel()

				doc, err := fetchDocument(ctx, http.DefaultClient, url)
				if err != nil {
					return err
				}

				o.logger.Debug("fetched support table", "url", url, "size", len(doc))
				docs = append(docs, doc)
			}

			if macros {
				docs = append(docs, signature.BuiltinMacros)
			}

			for _, path := range args {
				doc, err := readInput(cmd, path)
				if err != nil {
					return err
				}

				docs = append(docs, doc)
			}

			table := signature.Extract(docs...)
			o.logger.Info("extracted signatures", "documents", len(docs), "commands", table.Len())

			if err := writeOutput(cmd, out, func(w io.Writer) error {
				return signature.WriteNames(w, table)
			}); err != nil {
				return err
			}

			if formats != "" {
				if err := writeOutput(cmd, formats, func(w io.Writer) error {
					return signature.WriteFormats(w, table)
				}); err != nil {
					return err
				}
			}

			if completions != "" {
				items := completion.Items(table.SortedNames(), completion.DefaultSnippets)
				items = append(items, completion.ShapeItems(table)...)

				if err := writeOutput(cmd, completions, func(w io.Writer) error {
					return json.NewEncoder(w).Encode(items)
				}); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", signature.SupportTableURL, "Location of the KaTeX support table")
	cmd.Flags().BoolVar(&noFetch, "no-fetch", false, "Do not download the support table")
	cmd.Flags().BoolVar(&macros, "builtin-macros", true, "Scan the built-in KaTeX macro definitions")
	cmd.Flags().StringVar(&out, "out", "texFunctionNames.json", "Where to write command names, - for stdout")
	cmd.Flags().StringVar(&formats, "formats", "", "Where to write names with parameter shapes")
	cmd.Flags().StringVar(&completions, "completions", "", "Where to write autocomplete items")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for downloading the support table")

	return cmd
}

func fetchDocument(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request for %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("error fetching %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", url, err)
	}

	return string(data), nil
}
