package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var opts buildOptions

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "krokindex",
		Short:         "Build the Krok exam PDF catalog",
		Long:          "Build the Krok exam PDF catalog from the remote listing and the local source trees.\nRunning without a subcommand is the same as `krokindex build`.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, ctx, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	opts.register(rootCmd)

	rootCmd.AddCommand(newBuildCommand(ctx))
	rootCmd.AddCommand(newSummaryCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
