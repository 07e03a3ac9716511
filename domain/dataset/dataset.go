package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Dataset is the normalized, read-only employee table shared across requests.
// Callers must not mutate Frame.
type Dataset struct {
	Frame         dataframe.DataFrame
	Source        Source
	Normalization NormalizationReport
	Notices       []Notice
}

// Rows returns the number of records
func (d *Dataset) Rows() int {
	return d.Frame.Nrow()
}

// Columns returns the column names in schema order
func (d *Dataset) Columns() []string {
	return d.Frame.Names()
}

// HasColumn reports whether the schema contains name
func (d *Dataset) HasColumn(name string) bool {
	for _, col := range d.Frame.Names() {
		if col == name {
			return true
		}
	}
	return false
}

// ColumnType returns the dataframe element type of a column ("int", "float", "string", "bool")
func (d *Dataset) ColumnType(name string) string {
	if !d.HasColumn(name) {
		return ""
	}
	return string(d.Frame.Col(name).Type())
}

// Kind classifies a column over the whole dataset, never per partition
func (d *Dataset) Kind(feature string) FeatureKind {
	return KindOf(d.Frame.Col(feature))
}

// KindOf classifies a series by its element type
func KindOf(s series.Series) FeatureKind {
	switch s.Type() {
	case series.Int, series.Float:
		return KindNumeric
	default:
		return KindCategorical
	}
}

// FeatureOptions lists the selectable features in schema order
func (d *Dataset) FeatureOptions() []string {
	var options []string
	for _, name := range d.Frame.Names() {
		if !excludedFeatures[name] {
			options = append(options, name)
		}
	}
	return options
}

// IsSelectable reports whether feature is one of FeatureOptions
func (d *Dataset) IsSelectable(feature string) bool {
	return !excludedFeatures[feature] && d.HasColumn(feature)
}

// Partition returns the records whose Attrition equals label. It is recomputed
// on every call; a label with no records yields a zero-row frame with the same schema.
func (d *Dataset) Partition(label string) dataframe.DataFrame {
	var rows []int
	for i, v := range d.Frame.Col(AttritionColumn).Records() {
		if v == label {
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 {
		return d.emptyFrame()
	}
	return d.Frame.Subset(rows)
}

func (d *Dataset) emptyFrame() dataframe.DataFrame {
	names := d.Frame.Names()
	types := d.Frame.Types()
	columns := make([]series.Series, len(names))
	for i, name := range names {
		columns[i] = series.New([]string{}, types[i], name)
	}
	return dataframe.New(columns...)
}

// AttritionCounts counts records per Attrition label
func (d *Dataset) AttritionCounts() map[string]int {
	counts := map[string]int{AttritionNo: 0, AttritionYes: 0}
	for _, v := range d.Frame.Col(AttritionColumn).Records() {
		counts[v]++
	}
	return counts
}

// RawView returns the unfiltered (feature, Attrition) columns as string rows
func (d *Dataset) RawView(feature string) (columns []string, rows [][]string) {
	columns = []string{feature, AttritionColumn}
	values := d.Frame.Col(feature).Records()
	labels := d.Frame.Col(AttritionColumn).Records()
	rows = make([][]string, len(values))
	for i := range values {
		rows[i] = []string{values[i], labels[i]}
	}
	return columns, rows
}
