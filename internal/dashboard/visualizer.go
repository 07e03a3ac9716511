package dashboard

import (
	"fmt"
	"runtime/debug"
	"time"

	"hrdash/adapters/charts"
	"hrdash/domain/dataset"
	"hrdash/internal"
	"hrdash/internal/errors"
	"hrdash/internal/metrics"
	"hrdash/internal/profiling"
	"hrdash/ports"

	"github.com/go-gota/gota/series"
	"github.com/google/uuid"
)

// partitionStyle is the fixed presentation of each side
type partitionStyle struct {
	title   string
	color   string
	palette string
}

var styles = map[string]partitionStyle{
	dataset.AttritionNo:  {title: "No Attrition", color: charts.SkyBlue, palette: "Blues"},
	dataset.AttritionYes: {title: "Yes Attrition", color: charts.Salmon, palette: "Reds"},
}

// Visualizer builds the feature view for one interaction. It keeps no state
// between calls and never modifies the dataset.
type Visualizer struct {
	charts ports.ChartRendererPort
	bins   int
	log    *internal.Logger
}

// NewVisualizer creates a visualizer drawing histograms with the given bucket count
func NewVisualizer(renderer ports.ChartRendererPort, bins int) *Visualizer {
	return &Visualizer{
		charts: renderer,
		bins:   bins,
		log:    internal.DefaultLogger.With("Visualizer"),
	}
}

// Render partitions ds by Attrition and builds side-by-side charts and
// statistics for feature. An empty feature selects the first option. Only an
// unknown feature is returned as an error; every other failure is reported
// inside the ViewModel.
func (v *Visualizer) Render(ds *dataset.Dataset, feature string, showRaw bool) (*ViewModel, error) {
	options := ds.FeatureOptions()
	if feature == "" && len(options) > 0 {
		feature = options[0]
	}
	if !ds.IsSelectable(feature) {
		return nil, errors.InvalidInput(fmt.Sprintf("unknown feature %q", feature))
	}

	vm := &ViewModel{
		ID:          uuid.NewString(),
		Title:       PageTitle,
		Description: PageDescription,
		Feature:     feature,
		Options:     options,
		ShowRaw:     showRaw,
		Source:      ds.Source,
		Notices:     ds.Notices,
	}

	start := time.Now()
	outcome := v.build(vm, ds, showRaw)
	metrics.Renders.WithLabelValues(string(vm.Kind), outcome).Inc()
	metrics.RenderDuration.WithLabelValues(string(vm.Kind)).Observe(time.Since(start).Seconds())

	v.log.Debug("view %s feature=%s kind=%s outcome=%s in %s", vm.ID, feature, vm.Kind, outcome, time.Since(start))
	return vm, nil
}

type partition struct {
	label  string
	rows   int
	values series.Series
}

// build classifies and partitions the feature, renders the panels and attaches
// the raw view. A panic at any step ends in the generic error on vm.
func (v *Visualizer) build(vm *ViewModel, ds *dataset.Dataset, showRaw bool) (outcome string) {
	defer func() {
		if r := recover(); r != nil {
			outcome = v.recovered(vm, r)
		}
	}()

	vm.Kind = ds.Kind(vm.Feature)

	partitions := [2]partition{}
	for i, label := range dataset.PartitionLabels {
		frame := ds.Partition(label)
		partitions[i] = partition{label: label, rows: frame.Nrow(), values: frame.Col(vm.Feature)}
	}

	vm.Debug = Debug{
		Rows:            ds.Rows(),
		Columns:         len(ds.Columns()),
		AttritionCounts: ds.AttritionCounts(),
		AttritionType:   ds.ColumnType(dataset.AttritionColumn),
		PartitionSizes: map[string]int{
			partitions[0].label: partitions[0].rows,
			partitions[1].label: partitions[1].rows,
		},
		FeatureKind: vm.Kind,
	}

	outcome = v.renderPanels(vm, partitions)

	if showRaw {
		columns, rows := ds.RawView(vm.Feature)
		vm.Raw = &RawTable{Columns: columns, Rows: rows}
	}
	return outcome
}

// recovered replaces any partial output with the generic error and the panic diagnostics
func (v *Visualizer) recovered(vm *ViewModel, r interface{}) string {
	v.log.Error("view %s panicked rendering %s: %v", vm.ID, vm.Feature, r)
	vm.Panels = nil
	vm.Error = genericRenderError
	vm.ErrorDetail = fmt.Sprintf("%v\n\n%s", r, debug.Stack())
	return "panic"
}

// renderPanels fills vm.Panels. A panic or renderer error stops the render and
// leaves the generic message plus diagnostics on vm; the raw view is still built.
func (v *Visualizer) renderPanels(vm *ViewModel, partitions [2]partition) (outcome string) {
	defer func() {
		if r := recover(); r != nil {
			outcome = v.recovered(vm, r)
		}
	}()

	present := [2]int{profiling.NonMissing(partitions[0].values), profiling.NonMissing(partitions[1].values)}
	if present[0] == 0 && present[1] == 0 {
		vm.Error = fmt.Sprintf("No data for feature '%s'. Please choose another feature.", vm.Feature)
		return "empty"
	}

	panels := make([]Panel, len(partitions))
	for i, p := range partitions {
		panel, err := v.renderPanel(vm.Feature, vm.Kind, p, present[i])
		if err != nil {
			v.log.Error("view %s failed rendering %s for %s: %v", vm.ID, vm.Feature, p.label, err)
			vm.Error = genericRenderError
			vm.ErrorDetail = fmt.Sprintf("[%s] %v", errors.GetCode(err), err)
			return "error"
		}
		panels[i] = panel
	}
	vm.Panels = panels
	return "ok"
}

// renderPanel builds one side. Its output depends only on that side's values.
func (v *Visualizer) renderPanel(feature string, kind dataset.FeatureKind, p partition, present int) (Panel, error) {
	style := styles[p.label]
	panel := Panel{
		Label:   p.label,
		Title:   style.title,
		Color:   style.color,
		Rows:    p.rows,
		Present: present,
	}

	if present == 0 {
		panel.Notice = &dataset.Notice{Level: dataset.NoticeInfo, Message: fmt.Sprintf("No data for '%s'.", style.title)}
		panel.StatsNotice = &dataset.Notice{Level: dataset.NoticeInfo, Message: "No data to analyze."}
		return panel, nil
	}

	if kind == dataset.KindNumeric {
		return v.numericPanel(panel, feature, style, profiling.NumericValues(p.values))
	}
	return v.categoricalPanel(panel, style, profiling.CategoricalValues(p.values))
}

func (v *Visualizer) numericPanel(panel Panel, feature string, style partitionStyle, values []float64) (Panel, error) {
	hist, err := profiling.BuildHistogram(values, v.bins)
	if err != nil {
		return panel, errors.Wrap(err, "failed to bucket values")
	}
	panel.Chart, err = v.charts.Histogram(ports.HistogramRequest{
		XLabel:    feature,
		YLabel:    "Count",
		Color:     style.color,
		Histogram: hist,
	})
	if err != nil {
		return panel, err
	}

	summary, err := profiling.Describe(values)
	if err != nil {
		return panel, errors.Wrap(err, "failed to describe values")
	}
	panel.Summary = &summary
	return panel, nil
}

func (v *Visualizer) categoricalPanel(panel Panel, style partitionStyle, values []string) (Panel, error) {
	table := profiling.Frequencies(values)
	if len(table) == 0 {
		panel.Notice = &dataset.Notice{Level: dataset.NoticeInfo, Message: fmt.Sprintf("No category data for '%s'.", style.title)}
		panel.StatsNotice = &dataset.Notice{Level: dataset.NoticeInfo, Message: "No data to analyze."}
		return panel, nil
	}

	chart, err := v.charts.HorizontalBars(ports.BarsRequest{
		XLabel:      "Count",
		Palette:     style.palette,
		Frequencies: table,
	})
	if err != nil {
		return panel, err
	}
	panel.Chart = chart
	panel.Frequencies = table
	return panel, nil
}
