package profiling

import (
	"math"
	"sort"

	domainStats "hrdash/domain/stats"

	"github.com/go-gota/gota/series"
)

// Frequencies counts each distinct value, most frequent first. Ties keep the
// order in which values first appear.
func Frequencies(values []string) domainStats.FrequencyTable {
	index := make(map[string]int, len(values))
	table := domainStats.FrequencyTable{}
	for _, v := range values {
		if i, ok := index[v]; ok {
			table[i].Count++
			continue
		}
		index[v] = len(table)
		table = append(table, domainStats.Frequency{Value: v, Count: 1})
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})
	return table
}

// NumericValues returns the non-missing values of a numeric series
func NumericValues(s series.Series) []float64 {
	raw := s.Float()
	out := make([]float64, 0, len(raw))
	for _, v := range raw {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// CategoricalValues returns the non-missing values of a series as strings
func CategoricalValues(s series.Series) []string {
	records := s.Records()
	missing := s.IsNaN()
	out := make([]string, 0, len(records))
	for i, v := range records {
		if !missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// NonMissing counts the values of s that are present
func NonMissing(s series.Series) int {
	n := 0
	for _, missing := range s.IsNaN() {
		if !missing {
			n++
		}
	}
	return n
}
