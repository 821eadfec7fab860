package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/ukaji3/exchart-go/pkg/exchart"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

var previewRows int

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the columns and first rows of a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().IntVarP(&previewRows, "rows", "n", 5, "Number of rows to preview")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	sess := exchart.NewSession(exchart.DefaultOptions())
	ds, err := sess.UploadFile(args[0])
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderSummary(ds, sess.Config().Snapshot(), previewRows))
	return err
}

func renderSummary(ds *models.Dataset, cfg models.ChartConfig, n int) string {
	cols := make([]string, len(ds.Columns))
	for i, c := range ds.Columns {
		cols[i] = columnStyle.Render(c)
	}

	lines := []string{
		titleStyle.Render(ds.Filename),
		field("id", ds.ID),
		field("size", fmt.Sprintf("%d bytes", ds.FileSize)),
		field("rows", fmt.Sprintf("%d", len(ds.Rows))),
		field("columns", strings.Join(cols, ", ")),
	}
	if cfg.XAxis != "" {
		lines = append(lines, field("default", fmt.Sprintf("%s: %s vs %s", cfg.Kind, cfg.XAxis, cfg.YAxis)))
	}

	if n > len(ds.Rows) {
		n = len(ds.Rows)
	}
	if n > 0 {
		lines = append(lines, "")
		for _, row := range ds.Rows[:n] {
			lines = append(lines, previewRow(row))
		}
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func previewRow(r models.Record) string {
	parts := make([]string, 0, len(r.Keys))
	for _, k := range r.Keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, cast.ToString(r.Values[k])))
	}
	return strings.Join(parts, "  ")
}
