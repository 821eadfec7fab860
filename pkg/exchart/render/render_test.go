package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/ukaji3/exchart-go/pkg/exchart/chart"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

func sampleDataset() *models.Dataset {
	rows := []models.Record{}
	for i, region := range []string{"North", "South", "East", "West"} {
		r := models.NewRecord()
		r.Set("Region", region)
		r.Set("Sales", int64((i+1)*10))
		rows = append(rows, r)
	}
	return &models.Dataset{Columns: []string{"Region", "Sales"}, Rows: rows}
}

func TestPNG_AllKinds(t *testing.T) {
	ds := sampleDataset()
	for _, kind := range models.ChartKinds {
		t.Run(string(kind), func(t *testing.T) {
			cfg := models.ChartConfig{Kind: kind, XAxis: "Sales", YAxis: "Sales", Title: "Sales"}
			if kind != models.ChartScatter {
				cfg.XAxis = "Region"
			}
			s := chart.Build(ds, cfg)
			require.NotNil(t, s)

			var buf bytes.Buffer
			require.NoError(t, PNG(&buf, kind, s, chart.DisplayOptionsFor(cfg), Size{Width: 320, Height: 240}))

			img, err := png.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, 320, img.Bounds().Dx())
			assert.Equal(t, 240, img.Bounds().Dy())
		})
	}
}

func TestPNG_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, PNG(&buf, models.ChartBar, nil, models.DisplayOptions{}, Size{}), ErrEmptySeries)

	empty := &models.Series{Labels: []any{}, Datasets: []models.SeriesDataset{{Values: []float64{}}}}
	assert.ErrorIs(t, PNG(&buf, models.ChartPie, empty, models.DisplayOptions{}, Size{}), ErrEmptySeries)
}

func regionSales(sales ...any) *models.Dataset {
	rows := []models.Record{}
	for i, v := range sales {
		r := models.NewRecord()
		r.Set("Region", []string{"North", "South", "East", "West"}[i])
		r.Set("Sales", v)
		rows = append(rows, r)
	}
	return &models.Dataset{Columns: []string{"Region", "Sales"}, Rows: rows}
}

func TestPNG_FlatValues(t *testing.T) {
	tests := []struct {
		name string
		kind models.ChartKind
		ds   *models.Dataset
	}{
		{"bar non-numeric", models.ChartBar, regionSales("bad", "bad")},
		{"bar single row", models.ChartBar, regionSales(int64(100))},
		{"line non-numeric", models.ChartLine, regionSales("bad", "bad")},
		{"line single row", models.ChartLine, regionSales(int64(100))},
		{"scatter non-numeric", models.ChartScatter, regionSales("bad", "bad")},
		{"scatter single point", models.ChartScatter, regionSales(int64(7))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.ChartConfig{Kind: tt.kind, XAxis: "Region", YAxis: "Sales", Title: "Sales"}
			if tt.kind == models.ChartScatter {
				cfg.XAxis = "Sales"
			}
			s := chart.Build(tt.ds, cfg)
			require.NotNil(t, s)

			var buf bytes.Buffer
			require.NoError(t, PNG(&buf, tt.kind, s, chart.DisplayOptionsFor(cfg), Size{Width: 320, Height: 240}))
			_, err := png.Decode(&buf)
			require.NoError(t, err)
		})
	}
}

func TestPNG_PieWithoutPositiveValues(t *testing.T) {
	cfg := models.ChartConfig{Kind: models.ChartPie, XAxis: "Region", YAxis: "Sales", Title: "Sales"}
	s := chart.Build(regionSales("bad", int64(-3)), cfg)
	require.NotNil(t, s)

	var buf bytes.Buffer
	err := PNG(&buf, models.ChartPie, s, chart.DisplayOptionsFor(cfg), Size{})
	assert.ErrorIs(t, err, ErrNoPositiveValues)
	assert.Zero(t, buf.Len())
}

func TestFlatRange(t *testing.T) {
	assert.Nil(t, flatRange(nil))
	assert.Nil(t, flatRange([]float64{1, 2}))
	assert.Equal(t, &gochart.ContinuousRange{Min: 0, Max: 1}, flatRange([]float64{0, 0}))
	assert.Equal(t, &gochart.ContinuousRange{Min: 0, Max: 5}, flatRange([]float64{5}))
	assert.Equal(t, &gochart.ContinuousRange{Min: -2, Max: 0}, flatRange([]float64{-2, -2}))
}

func TestSizeDefaults(t *testing.T) {
	assert.Equal(t, DefaultSize, Size{}.orDefault())
	assert.Equal(t, Size{Width: 10, Height: DefaultSize.Height}, Size{Width: 10}.orDefault())
}

func TestToDrawing(t *testing.T) {
	c := toDrawing(models.Color{R: 59, G: 130, B: 246, A: 0.8})
	assert.Equal(t, uint8(59), c.R)
	assert.Equal(t, uint8(204), c.A)
	assert.Equal(t, uint8(255), toDrawing(models.Color{A: 1}).A)
}
