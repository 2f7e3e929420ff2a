package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"krokindex/internal/catalog"
	"krokindex/internal/config"
	"krokindex/internal/export"
	"krokindex/internal/logging"
)

type buildOptions struct {
	offline bool
	output  string
}

func (o *buildOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.offline, "offline", false, "Skip the remote GitHub listing")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Catalog artifact path (overrides paths.output)")
}

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var opts buildOptions
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the catalog and write the JSON artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, ctx, opts)
		},
	}
	opts.register(cmd)
	return cmd
}

func runBuild(cmd *cobra.Command, ctx *commandContext, opts buildOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	output, err := resolveOutput(cfg, opts.output)
	if err != nil {
		return err
	}
	logger, err := ctx.logger(cmd)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	lock, err := catalog.AcquireLock(output)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release build lock", logging.Error(err))
		}
	}()

	runCtx := cmd.Context()
	if runCtx == nil {
		runCtx = context.Background()
	}

	builder := catalog.NewBuilder(cfg, logger, catalog.WithOffline(opts.offline))
	result, err := builder.Build(runCtx)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	if err := catalog.WriteJSON(output, result.Entries); err != nil {
		return err
	}
	if cfg.Export.SQLitePath != "" {
		if err := export.WriteSQLite(runCtx, cfg.Export.SQLitePath, result.RunID, result.Entries); err != nil {
			return fmt.Errorf("export sqlite: %w", err)
		}
		logger.Info("sqlite mirror written",
			logging.String(logging.FieldPath, cfg.Export.SQLitePath),
			logging.String(logging.FieldCorrelationID, result.RunID),
		)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Build complete: indexed %d files into %s\n", len(result.Entries), output)
	if result.Stats.Skipped > 0 {
		fmt.Fprintf(out, "Skipped %d files with an unexpected layout (see log)\n", result.Stats.Skipped)
	}
	if result.Stats.RemoteUnavailable {
		fmt.Fprintln(out, "Remote listing unavailable; catalog contains local sources only")
	}
	return nil
}

func resolveOutput(cfg *config.Config, flagValue string) (string, error) {
	flagValue = strings.TrimSpace(flagValue)
	if flagValue == "" {
		return cfg.Paths.Output, nil
	}
	expanded, err := config.ExpandPath(flagValue)
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	return expanded, nil
}
