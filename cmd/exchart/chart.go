package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ukaji3/exchart-go/internal/logger"
	"github.com/ukaji3/exchart-go/pkg/exchart"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/ukaji3/exchart-go/pkg/exchart/output"
	"github.com/ukaji3/exchart-go/pkg/exchart/render"
)

var (
	chartKind  string
	xAxis      string
	yAxis      string
	chartTitle string
	format     string
	pretty     bool
	pngPath    string
	outputPath string
)

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart <file>",
		Short: "Build a chart from a spreadsheet",
		Long: `Build chart series from the first sheet of a spreadsheet.
Without --x and --y the first two columns are used.`,
		Args: cobra.ExactArgs(1),
		RunE: runChart,
	}

	cmd.Flags().StringVarP(&chartKind, "kind", "k", "", "Chart kind: bar, line, pie, scatter (default: bar)")
	cmd.Flags().StringVar(&xAxis, "x", "", "Column for the x axis")
	cmd.Flags().StringVar(&yAxis, "y", "", "Column for the y axis")
	cmd.Flags().StringVar(&chartTitle, "title", "", "Chart title")
	addOutputFlags(cmd)
	cmd.Flags().StringVar(&pngPath, "png", "", "Also render the chart to this PNG file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or yaml (default from config)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
}

func runChart(cmd *cobra.Command, args []string) error {
	logger.Section(filepath.Base(args[0]))
	sess := newSession()

	ds, err := sess.UploadFile(args[0])
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	if err := configure(sess); err != nil {
		return err
	}
	if err := sess.Config().Validate(ds.Columns); err != nil {
		return err
	}

	rec, err := sess.Generate()
	if err != nil {
		return fmt.Errorf("chart failed: %w", err)
	}

	if pngPath != "" {
		err := writePNG(pngPath, rec)
		switch {
		case errors.Is(err, render.ErrNoPositiveValues):
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s not written: %v\n", pngPath, err)
		case err != nil:
			return fmt.Errorf("render failed: %w", err)
		}
	}

	data, err := encodeRecord(cmd, rec)
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	return writeLine(cmd.OutOrStdout(), data)
}

func newSession() *exchart.Session {
	return exchart.NewSession(exchart.Options{
		LegendPosition: settings.Display.LegendPosition,
	})
}

// configure applies the chart flags over the upload defaults.
func configure(sess *exchart.Session) error {
	cfg := sess.Config()
	if chartKind != "" {
		if err := cfg.SetKindName(chartKind); err != nil {
			return err
		}
	}
	if xAxis != "" {
		cfg.SetXAxis(xAxis)
	}
	if yAxis != "" {
		cfg.SetYAxis(yAxis)
	}
	if chartTitle != "" {
		cfg.SetTitle(chartTitle)
	}
	return nil
}

func encodeRecord(cmd *cobra.Command, rec *models.ChartRecord) ([]byte, error) {
	name := format
	if name == "" {
		name = settings.Output.Format
	}
	f, err := output.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	p := settings.Output.Pretty
	if cmd.Flags().Changed("pretty") {
		p = pretty
	}

	data, err := output.Encode(rec, f, p)
	if err != nil {
		return nil, fmt.Errorf("serialization failed: %w", err)
	}
	return data, nil
}

// writePNG renders rec to path. Nothing is left at path on failure.
func writePNG(path string, rec *models.ChartRecord) error {
	var buf bytes.Buffer
	size := render.Size{Width: settings.Render.Width, Height: settings.Render.Height}
	if err := render.PNG(&buf, rec.Config.Kind, rec.Series, rec.Options, size); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func writeLine(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
