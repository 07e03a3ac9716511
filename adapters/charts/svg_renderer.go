package charts

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"math"
	"strings"

	"hrdash/internal/errors"
	"hrdash/ports"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Partition colors
const (
	SkyBlue = "#87CEEB"
	Salmon  = "#FA8072"
)

// sequential palettes, darkest first
var palettes = map[string][2]string{
	"Blues": {"#1F4E79", "#9ECAE1"},
	"Reds":  {"#7F1D1D", "#FCAE91"},
}

// SVGRenderer renders histograms with go-chart and horizontal bar charts from a template
type SVGRenderer struct {
	width  int
	height int
	bars   *template.Template
}

// NewSVGRenderer creates a renderer producing charts of the given size
func NewSVGRenderer(width, height int) *SVGRenderer {
	return &SVGRenderer{
		width:  width,
		height: height,
		bars:   template.Must(template.New("bars").Parse(barsTemplate)),
	}
}

var _ ports.ChartRendererPort = (*SVGRenderer)(nil)

// Histogram draws the buckets as a histogram series and the density as a line
func (r *SVGRenderer) Histogram(req ports.HistogramRequest) (template.HTML, error) {
	h := req.Histogram
	if len(h.Bins) == 0 {
		return "", errors.InvalidInput("histogram has no bins")
	}

	centers := make([]float64, len(h.Bins))
	counts := make([]float64, len(h.Bins))
	yMax := 0.0
	for i, b := range h.Bins {
		centers[i] = (b.Lower + b.Upper) / 2
		counts[i] = float64(b.Count)
		yMax = math.Max(yMax, counts[i])
	}

	base := hexColor(req.Color)
	series := []chart.Series{
		chart.HistogramSeries{
			Name: "count",
			Style: chart.Style{
				FillColor:   base.WithAlpha(190),
				StrokeColor: base,
				StrokeWidth: 1,
			},
			InnerSeries: chart.ContinuousSeries{XValues: centers, YValues: counts},
		},
	}

	if len(h.Density) > 0 {
		xs := make([]float64, len(h.Density))
		ys := make([]float64, len(h.Density))
		for i, p := range h.Density {
			xs[i], ys[i] = p.X, p.Y
			yMax = math.Max(yMax, p.Y)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "density",
			Style:   chart.Style{StrokeColor: shade(base, 0.55), StrokeWidth: 2},
			XValues: xs,
			YValues: ys,
		})
	}

	graph := chart.Chart{
		Width:  r.width,
		Height: r.height,
		XAxis: chart.XAxis{
			Name:  html.EscapeString(req.XLabel),
			Range: &chart.ContinuousRange{Min: h.Min, Max: h.Max},
		},
		YAxis: chart.YAxis{
			Name:  html.EscapeString(req.YLabel),
			Range: &chart.ContinuousRange{Min: 0, Max: yMax * 1.1},
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return "", errors.RenderError("failed to render histogram", err)
	}
	return template.HTML(buf.String()), nil
}

type barView struct {
	Label string
	Count int
	Y     int
	Width float64
	Color string
}

type barsView struct {
	Width      int
	Height     int
	LabelWidth int
	RowHeight  int
	PlotWidth  float64
	AxisY      int
	XLabel     string
	Bars       []barView
}

// HorizontalBars draws one bar per category, top to bottom in table order,
// shaded from the darkest palette color down to the lightest
func (r *SVGRenderer) HorizontalBars(req ports.BarsRequest) (template.HTML, error) {
	if len(req.Frequencies) == 0 {
		return "", errors.InvalidInput("no categories to draw")
	}
	stops, ok := palettes[req.Palette]
	if !ok {
		return "", errors.InvalidInput(fmt.Sprintf("unknown palette %q", req.Palette))
	}

	const rowHeight, labelWidth, margin = 28, 180, 40
	view := barsView{
		Width:      r.width,
		LabelWidth: labelWidth,
		RowHeight:  rowHeight,
		PlotWidth:  float64(r.width - labelWidth - margin),
		XLabel:     req.XLabel,
	}

	maxCount := req.Frequencies[0].Count
	for _, f := range req.Frequencies {
		if f.Count > maxCount {
			maxCount = f.Count
		}
	}

	dark, light := hexColor(stops[0]), hexColor(stops[1])
	for i, f := range req.Frequencies {
		t := 0.0
		if len(req.Frequencies) > 1 {
			t = float64(i) / float64(len(req.Frequencies)-1)
		}
		view.Bars = append(view.Bars, barView{
			Label: f.Value,
			Count: f.Count,
			Y:     i*rowHeight + 10,
			Width: view.PlotWidth * float64(f.Count) / float64(maxCount),
			Color: toHex(blend(dark, light, t)),
		})
	}
	view.AxisY = len(view.Bars)*rowHeight + 14
	view.Height = view.AxisY + 30

	var buf bytes.Buffer
	if err := r.bars.Execute(&buf, view); err != nil {
		return "", errors.RenderError("failed to render bar chart", err)
	}
	return template.HTML(buf.String()), nil
}

const barsTemplate = `<svg xmlns="http://www.w3.org/2000/svg" class="bars" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}" role="img">
{{- $lw := .LabelWidth}}
{{- range .Bars}}
<g class="bar">
<text x="{{$lw}}" dx="-8" y="{{.Y}}" dy="15" text-anchor="end" font-size="12">{{.Label}}</text>
<rect x="{{$lw}}" y="{{.Y}}" width="{{printf "%.2f" .Width}}" height="20" fill="{{.Color}}"><title>{{.Label}}: {{.Count}}</title></rect>
<text x="{{$lw}}" dx="{{printf "%.2f" .Width}}" y="{{.Y}}" dy="15" font-size="11">&#160;{{.Count}}</text>
</g>
{{- end}}
<line x1="{{$lw}}" x2="{{$lw}}" y1="4" y2="{{.AxisY}}" stroke="#555"/>
<text x="{{$lw}}" y="{{.AxisY}}" dy="20" font-size="12">{{.XLabel}}</text>
</svg>`

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func toHex(c drawing.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// blend linearly interpolates from a (t=0) to b (t=1)
func blend(a, b drawing.Color, t float64) drawing.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// shade darkens c by factor (0 = black, 1 = unchanged)
func shade(c drawing.Color, factor float64) drawing.Color {
	return blend(drawing.Color{A: 255}, c, factor)
}
