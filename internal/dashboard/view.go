package dashboard

import (
	"html/template"

	"hrdash/domain/dataset"
	"hrdash/domain/stats"
)

// Page copy
const (
	PageTitle       = "HR Analytics Dashboard"
	PageDescription = "This dashboard visualizes employee data by feature, split by **attrition** status."

	genericRenderError = "Error while building the visualization."
)

// Panel is one side of the comparison: a chart plus its statistics
type Panel struct {
	Label       string               `json:"label"` // Attrition value of the partition
	Title       string               `json:"title"`
	Color       string               `json:"color"`
	Rows        int                  `json:"rows"` // partition size
	Present     int                  `json:"present"`
	Notice      *dataset.Notice      `json:"notice,omitempty"` // shown instead of a chart
	Chart       template.HTML        `json:"chart,omitempty"`
	StatsNotice *dataset.Notice      `json:"stats_notice,omitempty"`
	Summary     *stats.Summary       `json:"summary,omitempty"`
	Frequencies stats.FrequencyTable `json:"frequencies,omitempty"`
}

// Debug is the diagnostic block shown in the sidebar
type Debug struct {
	Rows            int                 `json:"rows"`
	Columns         int                 `json:"columns"`
	AttritionCounts map[string]int      `json:"attrition_counts"`
	AttritionType   string              `json:"attrition_type"`
	PartitionSizes  map[string]int      `json:"partition_sizes"`
	FeatureKind     dataset.FeatureKind `json:"feature_kind"`
}

// RawTable is the unfiltered (feature, Attrition) view
type RawTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ViewModel is everything one interaction displays. Panels is always [No, Yes]
// when present; it is nil when Error is set.
type ViewModel struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Feature     string              `json:"feature"`
	Kind        dataset.FeatureKind `json:"kind"`
	Options     []string            `json:"options"`
	ShowRaw     bool                `json:"show_raw"`
	Source      dataset.Source      `json:"source"`
	Notices     []dataset.Notice    `json:"notices,omitempty"`
	Debug       Debug               `json:"debug"`
	Panels      []Panel             `json:"panels,omitempty"`
	Error       string              `json:"error,omitempty"`
	ErrorDetail string              `json:"error_detail,omitempty"`
	Raw         *RawTable           `json:"raw,omitempty"`
}

// Failed reports whether the interaction ended in an error state
func (vm *ViewModel) Failed() bool {
	return vm.Error != ""
}
