package ports

import (
	"html/template"

	"hrdash/domain/stats"
)

// HistogramRequest describes a distribution chart with its density overlay
type HistogramRequest struct {
	XLabel    string
	YLabel    string
	Color     string // hex, e.g. "#87CEEB"
	Histogram stats.Histogram
}

// BarsRequest describes a horizontal count chart, bars in table order
type BarsRequest struct {
	XLabel      string
	Palette     string // sequential palette name: "Blues" or "Reds"
	Frequencies stats.FrequencyTable
}

// ChartRendererPort renders charts as embeddable markup
type ChartRendererPort interface {
	Histogram(req HistogramRequest) (template.HTML, error)
	HorizontalBars(req BarsRequest) (template.HTML, error)
}
