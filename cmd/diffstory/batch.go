package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/diffstory/patchfmt"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const maxBatchConcurrency = 8

// NewBatchCmd builds the "batch" subcommand, which diffs many file
// pairs concurrently and prints each patch in input order.
func NewBatchCmd() *cobra.Command {
	var (
		context_ int
		style    string
	)

	cmd := &cobra.Command{
		Use:   "batch old1:new1 [old2:new2 ...]",
		Short: "Diff several file pairs concurrently and print each patch in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmtStyle, err := parseStyle(style)
			if err != nil {
				return err
			}

			pairs := make([][2]string, len(args))
			for i, arg := range args {
				old, newPath, ok := strings.Cut(arg, ":")
				if !ok {
					return fmt.Errorf("diffstory: batch argument %q must be OLD:NEW", arg)
				}
				pairs[i] = [2]string{old, newPath}
			}

			results, err := runBatch(cmd.Context(), pairs, fmtStyle, context_)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				if _, err := out.Write(r); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&context_, "context", "c", 3, "number of context lines")
	cmd.Flags().StringVarP(&style, "style", "s", "unified", "output style: unified or context")

	return cmd
}

// runBatch diffs each pair concurrently, bounded by maxBatchConcurrency,
// and returns their formatted output in the same order as pairs.
func runBatch(ctx context.Context, pairs [][2]string, style patchfmt.Style, contextLines int) ([][]byte, error) {
	results := make([][]byte, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxBatchConcurrency)

	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			var buf bytes.Buffer
			app := &App{
				File0Path: pair[0],
				File1Path: pair[1],
				Style:     style,
				Context:   contextLines,
				Output:    &buf,
			}
			if err := app.Run(); err != nil && err != ErrNoChanges {
				return fmt.Errorf("diffstory: %s vs %s: %w", pair[0], pair[1], err)
			}
			results[i] = buf.Bytes()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
