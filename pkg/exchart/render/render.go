// Package render draws built series to PNG using go-chart.
// It only draws: labels are formatted as text and nothing else is
// recomputed from the series.
package render

import (
	"errors"
	"io"
	"math"

	"github.com/spf13/cast"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

var (
	// ErrEmptySeries indicates a series with nothing to draw.
	ErrEmptySeries = errors.New("series has no data")

	// ErrNoPositiveValues indicates a pie whose values are all zero or negative.
	// The series itself is valid; it just has no slice to draw.
	ErrNoPositiveValues = errors.New("pie has no positive values")
)

// Size is the image size in pixels.
type Size struct {
	Width  int
	Height int
}

// DefaultSize is used when a dimension is zero.
var DefaultSize = Size{Width: 800, Height: 480}

func (s Size) orDefault() Size {
	if s.Width <= 0 {
		s.Width = DefaultSize.Width
	}
	if s.Height <= 0 {
		s.Height = DefaultSize.Height
	}
	return s
}

// PNG renders s as a chart of the given kind.
func PNG(w io.Writer, kind models.ChartKind, s *models.Series, opts models.DisplayOptions, size Size) error {
	if s == nil || len(s.Datasets) == 0 {
		return ErrEmptySeries
	}
	size = size.orDefault()

	title := ""
	if opts.Plugins.Title.Display {
		title = opts.Plugins.Title.Text
	}

	d := s.Datasets[0]
	switch kind {
	case models.ChartPie:
		return renderPie(w, s.Labels, d, title, size)
	case models.ChartScatter:
		return renderScatter(w, d, title, opts, size)
	case models.ChartLine:
		return renderLine(w, s.Labels, d, title, opts, size)
	default:
		return renderBar(w, s.Labels, d, title, size)
	}
}

func toDrawing(c models.Color) drawing.Color {
	return drawing.Color{
		R: c.R,
		G: c.G,
		B: c.B,
		A: uint8(math.Round(math.Max(0, math.Min(1, c.A)) * 255)),
	}
}

// flatRange returns an explicit range when every value is equal, since
// go-chart refuses to scale a zero-width range. It returns nil otherwise.
func flatRange(values []float64) chart.Range {
	if len(values) == 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo < hi {
		return nil
	}
	if lo == 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	return &chart.ContinuousRange{Min: math.Min(0, lo), Max: math.Max(0, hi)}
}

func labelAt(labels []any, i int) string {
	if i >= len(labels) {
		return ""
	}
	return cast.ToString(labels[i])
}

func renderBar(w io.Writer, labels []any, d models.SeriesDataset, title string, size Size) error {
	if len(d.Values) == 0 {
		return ErrEmptySeries
	}
	bars := make([]chart.Value, len(d.Values))
	for i, v := range d.Values {
		bars[i] = chart.Value{
			Label: labelAt(labels, i),
			Value: v,
			Style: chart.Style{
				FillColor:   toDrawing(d.BackgroundColor.At(i)),
				StrokeColor: toDrawing(d.BorderColor.At(i)),
				StrokeWidth: float64(d.BorderWidth),
			},
		}
	}

	bc := chart.BarChart{
		Title:  title,
		Width:  size.Width,
		Height: size.Height,
		Bars:   bars,
		YAxis:  chart.YAxis{Range: flatRange(d.Values)},
	}
	return bc.Render(chart.PNG, w)
}

func renderPie(w io.Writer, labels []any, d models.SeriesDataset, title string, size Size) error {
	if len(d.Values) == 0 {
		return ErrEmptySeries
	}
	positive := false
	for _, v := range d.Values {
		if v > 0 {
			positive = true
			break
		}
	}
	if !positive {
		return ErrNoPositiveValues
	}

	values := make([]chart.Value, len(d.Values))
	for i, v := range d.Values {
		values[i] = chart.Value{
			Label: labelAt(labels, i),
			Value: v,
			Style: chart.Style{
				FillColor:   toDrawing(d.BackgroundColor.At(i)),
				StrokeColor: toDrawing(d.BorderColor.At(i)),
				StrokeWidth: float64(d.BorderWidth),
			},
		}
	}

	pc := chart.PieChart{
		Title:  title,
		Width:  size.Width,
		Height: size.Height,
		Values: values,
	}
	return pc.Render(chart.PNG, w)
}

func renderLine(w io.Writer, labels []any, d models.SeriesDataset, title string, opts models.DisplayOptions, size Size) error {
	if len(d.Values) == 0 {
		return ErrEmptySeries
	}
	xs := make([]float64, len(d.Values))
	ticks := make([]chart.Tick, len(d.Values))
	for i := range d.Values {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: labelAt(labels, i)}
	}
	if len(ticks) == 1 {
		ticks = []chart.Tick{{Value: -1}, ticks[0], {Value: 1}}
	}

	style := chart.Style{
		StrokeColor: toDrawing(d.BorderColor.At(0)),
		StrokeWidth: float64(d.BorderWidth),
	}
	if d.Fill != nil && *d.Fill {
		style.FillColor = toDrawing(d.BackgroundColor.At(0))
	}

	ch := chart.Chart{
		Title:  title,
		Width:  size.Width,
		Height: size.Height,
		XAxis:  chart.XAxis{Ticks: ticks},
		YAxis:  chart.YAxis{Range: flatRange(d.Values)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    d.Label,
				XValues: xs,
				YValues: d.Values,
				Style:   style,
			},
		},
	}
	addLegend(&ch, opts)
	return ch.Render(chart.PNG, w)
}

func renderScatter(w io.Writer, d models.SeriesDataset, title string, opts models.DisplayOptions, size Size) error {
	if len(d.Points) == 0 {
		return ErrEmptySeries
	}
	xs := make([]float64, len(d.Points))
	ys := make([]float64, len(d.Points))
	for i, p := range d.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	ch := chart.Chart{
		Title:  title,
		Width:  size.Width,
		Height: size.Height,
		XAxis:  chart.XAxis{Range: flatRange(xs)},
		YAxis:  chart.YAxis{Range: flatRange(ys)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    d.Label,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    5,
					DotColor:    toDrawing(d.BackgroundColor.At(0)),
				},
			},
		},
	}
	addLegend(&ch, opts)
	return ch.Render(chart.PNG, w)
}

// addLegend attaches a legend unless the position is empty.
func addLegend(ch *chart.Chart, opts models.DisplayOptions) {
	if opts.Plugins.Legend.Position == "" {
		return
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
}
