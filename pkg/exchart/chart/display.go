package chart

import "github.com/ukaji3/exchart-go/pkg/exchart/models"

// LegendTop is the default legend position.
const LegendTop = "top"

// DisplayOptionsFor returns the renderer options bag for cfg.
func DisplayOptionsFor(cfg models.ChartConfig) models.DisplayOptions {
	return models.DisplayOptions{
		Responsive: true,
		Plugins: models.PluginOptions{
			Legend: models.LegendOptions{Position: LegendTop},
			Title: models.TitleOptions{
				Display: true,
				Text:    cfg.Title,
			},
		},
	}
}
