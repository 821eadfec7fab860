package models

import "time"

// ChartKind is the closed set of supported chart kinds.
type ChartKind string

const (
	// ChartBar is a categorical bar chart.
	ChartBar ChartKind = "bar"
	// ChartLine is a categorical line chart without area fill.
	ChartLine ChartKind = "line"
	// ChartPie is a proportional pie chart.
	ChartPie ChartKind = "pie"
	// ChartScatter plots coordinate pairs.
	ChartScatter ChartKind = "scatter"
)

// ChartKinds lists every chart kind in display order.
var ChartKinds = []ChartKind{ChartBar, ChartLine, ChartPie, ChartScatter}

// ChartConfig describes how a dataset should be charted.
type ChartConfig struct {
	// Kind is the chart kind.
	Kind ChartKind `json:"kind"`
	// XAxis is the column used for labels (or x coordinates). Empty means unset.
	XAxis string `json:"x_axis,omitempty"`
	// YAxis is the column used for values (or y coordinates). Empty means unset.
	YAxis string `json:"y_axis,omitempty"`
	// Title is the free-form chart title.
	Title string `json:"title"`
}

// ChartRecord is a configuration frozen into a generated series.
type ChartRecord struct {
	// ID uniquely identifies the generated chart.
	ID string `json:"id"`
	// DatasetID is the dataset the series was built from.
	DatasetID string `json:"dataset_id"`
	// Config is the configuration at generation time.
	Config ChartConfig `json:"config"`
	// Series is the renderer-ready series.
	Series *Series `json:"series"`
	// Options is the display options bag handed to the renderer.
	Options DisplayOptions `json:"options"`
	// CreatedAt is the generation timestamp.
	CreatedAt time.Time `json:"created_at"`
}
