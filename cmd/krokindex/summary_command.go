package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"krokindex/internal/catalog"
)

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "summary [catalog.json]",
		Short:       "Show entry counts of a catalog artifact",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := summaryPath(ctx, args)
			if err != nil {
				return err
			}
			entries, err := catalog.ReadJSON(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeSummary(out, path, entries)
			return nil
		},
	}
}

func summaryPath(ctx *commandContext, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.Paths.Output, nil
}

type countRow struct {
	source   string
	examType string
	level    string
	count    int
}

// summarize groups entries by source, exam type and level, keeping the
// order in which each group first appears.
func summarize(entries []catalog.Entry) []countRow {
	index := make(map[[3]string]int)
	var rows []countRow
	for _, e := range entries {
		key := [3]string{e.Source, e.ExamType, e.Level}
		if i, ok := index[key]; ok {
			rows[i].count++
			continue
		}
		index[key] = len(rows)
		rows = append(rows, countRow{source: e.Source, examType: e.ExamType, level: e.Level, count: 1})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return sourceRank(rows[i].source) < sourceRank(rows[j].source)
	})
	return rows
}

func sourceRank(source string) int {
	switch source {
	case catalog.SourceRemote:
		return 0
	case catalog.SourceRegular:
		return 1
	case catalog.SourceOlder:
		return 2
	default:
		return 3
	}
}

func writeSummary(out io.Writer, path string, entries []catalog.Entry) {
	fmt.Fprintf(out, "Catalog: %s\n", path)
	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries")
		return
	}
	rows := summarize(entries)
	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, []string{row.source, row.examType, row.level, strconv.Itoa(row.count)})
	}
	headers := []string{"Source", "Exam type", "Level", "Files"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}
	fmt.Fprintln(out, renderTable(headers, tableRows, aligns, tableStyleFor(out)))
	fmt.Fprintf(out, "Total: %d\n", len(entries))
}
