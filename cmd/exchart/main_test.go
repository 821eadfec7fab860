package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/exchart-go/internal/config"
	"github.com/ukaji3/exchart-go/internal/logger"
)

func writeSheet(t *testing.T, dir, name string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeSales(t *testing.T, dir string) string {
	t.Helper()
	return writeSheet(t, dir, "sales.xlsx", [][]any{
		{"Month", "Sales", "Cost"},
		{"Jan", 120, 80},
		{"Feb", 95, 70},
		{"Mar", 140, 90},
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "exchart dev\n", out)
}

func TestChart_Defaults(t *testing.T) {
	path := writeSales(t, t.TempDir())

	out, err := execute(t, "chart", path)
	require.NoError(t, err)

	var rec struct {
		Config struct {
			Kind  string `json:"kind"`
			XAxis string `json:"x_axis"`
			YAxis string `json:"y_axis"`
			Title string `json:"title"`
		} `json:"config"`
		Series struct {
			Labels   []any `json:"labels"`
			Datasets []struct {
				Label string    `json:"label"`
				Data  []float64 `json:"data"`
			} `json:"datasets"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rec))

	assert.Equal(t, "bar", rec.Config.Kind)
	assert.Equal(t, "Month", rec.Config.XAxis)
	assert.Equal(t, "Sales", rec.Config.YAxis)
	assert.Equal(t, "Sales by Month", rec.Config.Title)
	assert.Equal(t, []any{"Jan", "Feb", "Mar"}, rec.Series.Labels)
	require.Len(t, rec.Series.Datasets, 1)
	assert.Equal(t, "Sales", rec.Series.Datasets[0].Label)
	assert.Equal(t, []float64{120, 95, 140}, rec.Series.Datasets[0].Data)
}

func TestChart_FlagsAndYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeSales(t, dir)
	outPath := filepath.Join(dir, "chart.yaml")

	_, err := execute(t, "chart", path, "--kind", "line", "--y", "Cost", "--title", "Costs", "--format", "yaml", "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: line")
	assert.Contains(t, string(data), "y_axis: Cost")
	assert.Contains(t, string(data), "title: Costs")
}

func TestChart_PNG(t *testing.T) {
	dir := t.TempDir()
	path := writeSales(t, dir)
	pngPath := filepath.Join(dir, "chart.png")

	_, err := execute(t, "chart", path, "--png", pngPath)
	require.NoError(t, err)

	data, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestChart_Errors(t *testing.T) {
	dir := t.TempDir()
	path := writeSales(t, dir)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown column", []string{"chart", path, "--x", "Region"}},
		{"unknown kind", []string{"chart", path, "--kind", "radar"}},
		{"bad format", []string{"chart", path, "--format", "xml"}},
		{"unsupported extension", []string{"chart", filepath.Join(dir, "sales.csv")}},
		{"missing file", []string{"chart", filepath.Join(dir, "missing.xlsx")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestInspect(t *testing.T) {
	path := writeSales(t, t.TempDir())

	out, err := execute(t, "inspect", path, "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "sales.xlsx")
	assert.Contains(t, out, "Month")
	assert.Contains(t, out, "Month=Jan")
	assert.Contains(t, out, "Month=Feb")
	assert.NotContains(t, out, "Month=Mar")
}

func TestConfig_InitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exchart", "config.toml")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, path)

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "config", "init"})
	assert.Error(t, cmd.Execute(), "init must not overwrite without --force")

	var out bytes.Buffer
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "config", "show"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "legend_position")
	assert.Contains(t, out.String(), "top")
}

func TestSettingsApplyToChart(t *testing.T) {
	dir := t.TempDir()
	path := writeSales(t, dir)
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[output]\nformat = \"yaml\"\n[display]\nlegend_position = \"bottom\"\n"), 0600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "chart", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "position: bottom")
	assert.Contains(t, out.String(), "kind: bar")
}

func TestWatchLoop_IngestsAndSkips(t *testing.T) {
	dir := t.TempDir()
	good := writeSales(t, dir)
	bad := filepath.Join(dir, "broken.xlsx")
	require.NoError(t, os.WriteFile(bad, []byte("not a workbook"), 0644))

	settings = config.Defaults()
	format, pretty, chartKind = "", false, "pie"
	defer func() { chartKind = "" }()

	cmd := &cobra.Command{}
	addOutputFlags(cmd)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	paths := make(chan string, 2)
	paths <- bad
	paths <- good
	close(paths)

	require.False(t, logger.IsVerbose())
	require.NoError(t, watchLoop(context.Background(), cmd, newSession(), paths))

	assert.Contains(t, errOut.String(), "skipping "+bad)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "pie", rec["config"].(map[string]any)["kind"])
}

func TestWatchLoop_VerboseSections(t *testing.T) {
	good := writeSales(t, t.TempDir())

	settings = config.Defaults()
	format, pretty, chartKind = "", false, ""

	var logs bytes.Buffer
	logger.SetVerbose(true)
	logger.SetOutput(&logs)
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	cmd := &cobra.Command{}
	addOutputFlags(cmd)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	paths := make(chan string, 1)
	paths <- good
	close(paths)

	require.NoError(t, watchLoop(context.Background(), cmd, newSession(), paths))
	assert.Contains(t, logs.String(), "=== sales.xlsx ===")
	assert.Contains(t, logs.String(), "[INFO] uploaded sales.xlsx")
}

func TestChart_PieWithoutPositiveValuesStillPrints(t *testing.T) {
	dir := t.TempDir()
	path := writeSheet(t, dir, "bad.xlsx", [][]any{
		{"Region", "Sales"},
		{"North", "bad"},
		{"South", "bad"},
	})
	pngPath := filepath.Join(dir, "pie.png")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--config", filepath.Join(dir, "none.toml"), "chart", path, "--kind", "pie", "--png", pngPath})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, errOut.String(), "warning:")
	assert.NoFileExists(t, pngPath)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "pie", rec["config"].(map[string]any)["kind"])
}

func TestChart_PNGAllNonNumeric(t *testing.T) {
	dir := t.TempDir()
	path := writeSheet(t, dir, "bad.xlsx", [][]any{
		{"Region", "Sales"},
		{"North", "bad"},
		{"South", "bad"},
	})
	pngPath := filepath.Join(dir, "bar.png")

	out, err := execute(t, "chart", path, "--png", pngPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"data":[0,0]`)
	assert.FileExists(t, pngPath)
}
