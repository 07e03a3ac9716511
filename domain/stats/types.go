package stats

import (
	"encoding/json"
	"math"
)

// Summary is the describe() block of one numeric partition
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"` // sample standard deviation, NaN for a single value
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// Row is one labelled line of a summary table
type Row struct {
	Label string
	Value float64
}

// Rows returns the summary in describe() order
func (s Summary) Rows() []Row {
	return []Row{
		{"count", float64(s.Count)},
		{"mean", s.Mean},
		{"std", s.StdDev},
		{"min", s.Min},
		{"25%", s.Q25},
		{"50%", s.Median},
		{"75%", s.Q75},
		{"max", s.Max},
	}
}

// MarshalJSON writes NaN and infinite statistics as null
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"count":  s.Count,
		"mean":   finite(s.Mean),
		"std":    finite(s.StdDev),
		"min":    finite(s.Min),
		"q25":    finite(s.Q25),
		"median": finite(s.Median),
		"q75":    finite(s.Q75),
		"max":    finite(s.Max),
	})
}

func finite(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

// Bin is one histogram bucket covering [Lower, Upper)
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Point is one sample of a density curve, already scaled to bucket counts
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Histogram is a bucketed distribution with an optional density overlay
type Histogram struct {
	Bins     []Bin   `json:"bins"`
	BinWidth float64 `json:"bin_width"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Total    int     `json:"total"`
	Density  []Point `json:"density,omitempty"`
}

// MaxCount returns the tallest bucket
func (h Histogram) MaxCount() int {
	m := 0
	for _, b := range h.Bins {
		if b.Count > m {
			m = b.Count
		}
	}
	return m
}

// Frequency is the count of one distinct category
type Frequency struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FrequencyTable is ordered by descending count
type FrequencyTable []Frequency

// Total sums all counts
func (t FrequencyTable) Total() int {
	total := 0
	for _, f := range t {
		total += f.Count
	}
	return total
}
