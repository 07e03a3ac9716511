package dataset

import (
	"strings"

	domain "hrdash/domain/dataset"
	"hrdash/internal/errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/spf13/cast"
)

// missingMarkers are read as missing values when a frame is built from records
var missingMarkers = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "<nil>"}

// FrameFromRecords builds a typed frame from header+rows, detecting column types.
// A header without rows yields a zero-row frame of string columns.
func FrameFromRecords(records Records) (dataframe.DataFrame, error) {
	var df dataframe.DataFrame
	if len(records) == 1 {
		df = emptyFrame(records[0])
	} else {
		df = dataframe.LoadRecords(records,
			dataframe.HasHeader(true),
			dataframe.DetectTypes(true),
			dataframe.NaNValues(missingMarkers),
		)
	}
	if df.Err != nil {
		return df, errors.DataSourceError("failed to build data frame", df.Err)
	}
	return df, nil
}

func emptyFrame(header []string) dataframe.DataFrame {
	columns := make([]series.Series, len(header))
	for i, name := range header {
		columns[i] = series.New([]string{}, series.String, name)
	}
	return dataframe.New(columns...)
}

// Normalize rewrites the Attrition column so every value is "Yes" or "No".
// Numeric 1 and 0 become "Yes" and "No"; every other value, including missing
// ones, is coerced to "No" and counted as invalid. Normalize is idempotent and
// never drops rows.
func Normalize(df dataframe.DataFrame) (dataframe.DataFrame, domain.NormalizationReport, error) {
	report := domain.NormalizationReport{Rows: df.Nrow()}
	if !hasColumn(df, domain.AttritionColumn) {
		return df, report, errors.InvalidInput("dataset has no " + domain.AttritionColumn + " column")
	}

	col := df.Col(domain.AttritionColumn)
	records := col.Records()
	missing := col.IsNaN()

	labels := make([]string, len(records))
	for i, raw := range records {
		if missing[i] {
			labels[i] = domain.AttritionNo
			report.Invalid++
			continue
		}
		label, converted, ok := normalizeLabel(raw)
		labels[i] = label
		if converted {
			report.Converted++
		}
		if !ok {
			report.Invalid++
		}
	}

	out := df.Mutate(series.New(labels, series.String, domain.AttritionColumn))
	if out.Err != nil {
		return df, report, errors.Wrap(out.Err, "failed to rewrite Attrition column")
	}
	return out, report, nil
}

// normalizeLabel maps one raw value. converted is set for numeric codes, ok is
// false when the value had to be coerced.
func normalizeLabel(raw string) (label string, converted bool, ok bool) {
	value := strings.TrimSpace(raw)
	switch value {
	case domain.AttritionYes, domain.AttritionNo:
		return value, false, true
	}

	if f, err := cast.ToFloat64E(value); err == nil {
		switch f {
		case 1:
			return domain.AttritionYes, true, true
		case 0:
			return domain.AttritionNo, true, true
		}
	}
	return domain.AttritionNo, false, false
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, col := range df.Names() {
		if col == name {
			return true
		}
	}
	return false
}
