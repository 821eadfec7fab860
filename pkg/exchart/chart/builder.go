package chart

import "github.com/ukaji3/exchart-go/pkg/exchart/models"

// DefaultBorderWidth is the border width of bar, line and pie datasets.
const DefaultBorderWidth = 2

// reshaper maps dataset rows to a series for one chart kind.
type reshaper func(rows []models.Record, cfg models.ChartConfig, p Palette) *models.Series

// reshaperFor returns the reshaping function for kind. Unknown kinds
// take the categorical bar shape.
func reshaperFor(kind models.ChartKind) reshaper {
	switch kind {
	case models.ChartLine:
		return buildLine
	case models.ChartPie:
		return buildPie
	case models.ChartScatter:
		return buildScatter
	default:
		return buildBar
	}
}

// Build maps a dataset and configuration to a renderer-ready series.
// It returns nil when ds is nil or either axis is unset; callers treat
// that as "chart generation disabled". Axes absent from the dataset are
// not an error: labels become nil and values become 0.
func Build(ds *models.Dataset, cfg models.ChartConfig) *models.Series {
	if ds == nil || cfg.XAxis == "" || cfg.YAxis == "" {
		return nil
	}
	return reshaperFor(cfg.Kind)(ds.Rows, cfg, DefaultPalette)
}

// labelsAndValues reads raw x labels and coerced y values from every row.
func labelsAndValues(rows []models.Record, cfg models.ChartConfig) ([]any, []float64) {
	labels := make([]any, len(rows))
	values := make([]float64, len(rows))
	for i, row := range rows {
		labels[i], _ = row.Get(cfg.XAxis)
		y, _ := row.Get(cfg.YAxis)
		values[i] = ToNumber(y)
	}
	return labels, values
}

func buildBar(rows []models.Record, cfg models.ChartConfig, p Palette) *models.Series {
	return buildCategorical(rows, cfg, p, true)
}

func buildLine(rows []models.Record, cfg models.ChartConfig, p Palette) *models.Series {
	return buildCategorical(rows, cfg, p, false)
}

func buildCategorical(rows []models.Record, cfg models.ChartConfig, p Palette, fill bool) *models.Series {
	labels, values := labelsAndValues(rows, cfg)
	return &models.Series{
		Labels: labels,
		Datasets: []models.SeriesDataset{{
			Label:           cfg.YAxis,
			Values:          values,
			BackgroundColor: models.SingleColor(p.First()),
			BorderColor:     models.SingleColor(p.First().Opaque()),
			BorderWidth:     DefaultBorderWidth,
			Fill:            &fill,
		}},
	}
}

func buildPie(rows []models.Record, cfg models.ChartConfig, p Palette) *models.Series {
	labels, values := labelsAndValues(rows, cfg)
	fills := p.Cycle(len(rows))
	return &models.Series{
		Labels: labels,
		Datasets: []models.SeriesDataset{{
			Values:          values,
			BackgroundColor: models.ColorSet{Colors: fills, PerItem: true},
			BorderColor:     models.ColorSet{Colors: Borders(fills), PerItem: true},
			BorderWidth:     DefaultBorderWidth,
		}},
	}
}

func buildScatter(rows []models.Record, cfg models.ChartConfig, p Palette) *models.Series {
	points := make([]models.Point, len(rows))
	for i, row := range rows {
		x, _ := row.Get(cfg.XAxis)
		y, _ := row.Get(cfg.YAxis)
		points[i] = models.Point{X: ToNumber(x), Y: ToNumber(y)}
	}
	return &models.Series{
		Datasets: []models.SeriesDataset{{
			Label:           cfg.Title,
			Points:          points,
			BackgroundColor: models.SingleColor(p.First()),
			BorderColor:     models.SingleColor(p.First().Opaque()),
		}},
	}
}
