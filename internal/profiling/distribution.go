package profiling

import (
	"math"
	"sort"

	domainStats "hrdash/domain/stats"
	"hrdash/internal/errors"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DensityPoints is how many points the density overlay is sampled at
const DensityPoints = 200

// Describe computes count, mean, sample std, min, quartiles and max
func Describe(values []float64) (domainStats.Summary, error) {
	summary := domainStats.Summary{Count: len(values)}
	if len(values) == 0 {
		return summary, errors.InvalidInput("no values to describe")
	}

	data := stats.Float64Data(values)
	var err error
	if summary.Mean, err = stats.Mean(data); err != nil {
		return summary, err
	}
	if summary.Min, err = stats.Min(data); err != nil {
		return summary, err
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return summary, err
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return summary, err
	}

	summary.StdDev = math.NaN()
	if len(values) > 1 {
		if summary.StdDev, err = stats.StandardDeviationSample(data); err != nil {
			return summary, err
		}
	}

	sorted := sortedCopy(values)
	summary.Q25 = linearQuantile(sorted, 0.25)
	summary.Q75 = linearQuantile(sorted, 0.75)
	return summary, nil
}

// linearQuantile interpolates between the two closest ranks, matching describe()
func linearQuantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// BuildHistogram buckets values into equal-width bins over [min, max], the last
// bin closed on the right, and overlays a Gaussian KDE scaled to bucket counts.
// A constant input gets a unit-wide range centred on its value and no density.
func BuildHistogram(values []float64, bins int) (domainStats.Histogram, error) {
	if len(values) == 0 {
		return domainStats.Histogram{}, errors.InvalidInput("no values to bucket")
	}
	if bins <= 0 {
		return domainStats.Histogram{}, errors.InvalidInput("bin count must be positive")
	}

	sorted := sortedCopy(values)
	dataMin, dataMax := sorted[0], sorted[len(sorted)-1]
	lo, hi := dataMin, dataMax
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)

	hist := domainStats.Histogram{
		Bins:     make([]domainStats.Bin, bins),
		BinWidth: (hi - lo) / float64(bins),
		Min:      lo,
		Max:      hi,
		Total:    len(values),
	}
	for i := range hist.Bins {
		hist.Bins[i] = domainStats.Bin{Lower: edges[i], Upper: edges[i+1], Count: int(counts[i])}
	}

	if dataMin < dataMax {
		hist.Density = kernelDensity(sorted, dataMin, dataMax, hist.BinWidth)
	}
	return hist, nil
}

// kernelDensity evaluates a Gaussian KDE with Scott's bandwidth on [lo, hi].
// Values are multiplied by n*binWidth so the curve sits on the count axis.
func kernelDensity(sorted []float64, lo, hi, binWidth float64) []domainStats.Point {
	n := float64(len(sorted))
	sd := stat.StdDev(sorted, nil)
	if n < 2 || sd == 0 || math.IsNaN(sd) {
		return nil
	}
	bandwidth := sd * math.Pow(n, -0.2)

	xs := make([]float64, DensityPoints)
	floats.Span(xs, lo, hi)

	points := make([]domainStats.Point, len(xs))
	for i, x := range xs {
		sum := 0.0
		for _, v := range sorted {
			sum += distuv.UnitNormal.Prob((x - v) / bandwidth)
		}
		density := sum / (n * bandwidth)
		points[i] = domainStats.Point{X: x, Y: density * n * binWidth}
	}
	return points
}

func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}
