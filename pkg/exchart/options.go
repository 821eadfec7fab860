// Package exchart turns uploaded spreadsheets into chart-ready series.
package exchart

// Options configures session behavior.
type Options struct {
	// History specifies whether generated charts are recorded.
	// If nil, defaults to true.
	History *bool
	// LegendPosition overrides the legend position in generated display options.
	// Empty keeps the default ("top").
	LegendPosition string
}

// DefaultOptions returns default session options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldKeepHistory returns whether to record generated charts.
func (o Options) ShouldKeepHistory() bool {
	if o.History != nil {
		return *o.History
	}
	return true
}
