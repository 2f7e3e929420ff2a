package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"krokindex/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check paths and remote access before a build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cmd.Context(), cfg, nil)

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Name, checkStatus(r), r.Detail})
			}
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows, nil, tableStyleFor(out)))

			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%d required checks failed", len(failed))
			}
			fmt.Fprintln(out, "Ready to build")
			return nil
		},
	}
}

func checkStatus(r preflight.Result) string {
	switch {
	case r.Passed:
		return "ok"
	case r.Optional:
		return "warn"
	default:
		return "fail"
	}
}
