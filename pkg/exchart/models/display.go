package models

// LegendOptions positions the chart legend.
type LegendOptions struct {
	Position string `json:"position"`
}

// TitleOptions controls the chart title.
type TitleOptions struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

// PluginOptions groups legend and title options.
type PluginOptions struct {
	Legend LegendOptions `json:"legend"`
	Title  TitleOptions  `json:"title"`
}

// DisplayOptions is the options bag passed to the renderer alongside a Series.
type DisplayOptions struct {
	// Responsive lets the renderer resize with its container.
	Responsive bool `json:"responsive"`
	// Plugins holds legend and title options.
	Plugins PluginOptions `json:"plugins"`
}
