package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/diffstory/patchfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type appKey struct{}

func withLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, appKey{}, logger)
}

func loggerFrom(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(appKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// NewRootCmd builds the diffstory command tree.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		logFile    string
		context_   int
		style      string
	)

	root := &cobra.Command{
		Use:           "diffstory file0 file1",
		Short:         "Format the differences between two files as a context or unified patch",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(logFile, logLevel)
			cmd.SetContext(withLogger(context.Background(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("context") {
				cfg.Context = context_
			}
			if cmd.Flags().Changed("style") {
				cfg.Style = style
			}

			fmtStyle, err := parseStyle(cfg.Style)
			if err != nil {
				return err
			}

			app := &App{
				File0Path: args[0],
				File1Path: args[1],
				Style:     fmtStyle,
				Context:   cfg.Context,
				Output:    cmd.OutOrStdout(),
			}

			logger := loggerFrom(cmd.Context())
			logger.Debug("running diff", zap.String("file0", args[0]), zap.String("file1", args[1]))

			if err := app.Run(); err != nil {
				if err == ErrNoChanges {
					return nil
				}
				return err
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	root.Flags().IntVarP(&context_, "context", "c", 3, "number of context lines")
	root.Flags().StringVarP(&style, "style", "s", "unified", "output style: unified or context")

	root.AddCommand(NewBatchCmd())

	return root
}

func parseStyle(s string) (patchfmt.Style, error) {
	switch s {
	case "unified", "u":
		return patchfmt.Unified, nil
	case "context", "c":
		return patchfmt.Context, nil
	default:
		return 0, fmt.Errorf("diffstory: unknown style %q (want \"unified\" or \"context\")", s)
	}
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
