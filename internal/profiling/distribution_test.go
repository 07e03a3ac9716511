package profiling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	summary, err := Describe([]float64{4, 1, 3, 2})
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Count)
	assert.InDelta(t, 2.5, summary.Mean, 1e-12)
	assert.InDelta(t, 1.2909944487, summary.StdDev, 1e-9)
	assert.Equal(t, 1.0, summary.Min)
	assert.InDelta(t, 1.75, summary.Q25, 1e-12)
	assert.InDelta(t, 2.5, summary.Median, 1e-12)
	assert.InDelta(t, 3.25, summary.Q75, 1e-12)
	assert.Equal(t, 4.0, summary.Max)
}

func TestDescribe_SingleValue(t *testing.T) {
	summary, err := Describe([]float64{7})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Count)
	assert.True(t, math.IsNaN(summary.StdDev))
	assert.Equal(t, 7.0, summary.Q25)
	assert.Equal(t, 7.0, summary.Q75)

	encoded, err := summary.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"std":null`)
}

func TestDescribe_Empty(t *testing.T) {
	_, err := Describe(nil)
	assert.Error(t, err)
}

func TestBuildHistogram_CountsSumToTotal(t *testing.T) {
	values := make([]float64, 0, 500)
	for i := 0; i < 500; i++ {
		values = append(values, float64(18+i%47))
	}

	hist, err := BuildHistogram(values, 20)
	require.NoError(t, err)

	require.Len(t, hist.Bins, 20)
	total := 0
	for _, b := range hist.Bins {
		total += b.Count
	}
	assert.Equal(t, 500, total)
	assert.Equal(t, 500, hist.Total)
	assert.Equal(t, 18.0, hist.Bins[0].Lower)
	assert.Equal(t, 64.0, hist.Bins[19].Upper)
	assert.Len(t, hist.Density, DensityPoints)
}

func TestBuildHistogram_MaxLandsInLastBin(t *testing.T) {
	hist, err := BuildHistogram([]float64{0, 10}, 20)
	require.NoError(t, err)

	assert.Equal(t, 1, hist.Bins[0].Count)
	assert.Equal(t, 1, hist.Bins[19].Count)
}

func TestBuildHistogram_ConstantValues(t *testing.T) {
	hist, err := BuildHistogram([]float64{3, 3, 3}, 20)
	require.NoError(t, err)

	assert.Equal(t, 2.5, hist.Min)
	assert.Equal(t, 3.5, hist.Max)
	assert.Equal(t, 3, hist.MaxCount())
	assert.Nil(t, hist.Density)
}

func TestBuildHistogram_DensityIsScaledToCounts(t *testing.T) {
	values := make([]float64, 0, 2000)
	for i := 0; i < 2000; i++ {
		values = append(values, float64(i%100))
	}

	hist, err := BuildHistogram(values, 20)
	require.NoError(t, err)

	// a uniform sample puts about n*binWidth/range = 100 per bucket; the
	// density curve should sit near that level away from the edges
	mid := hist.Density[DensityPoints/2]
	assert.InDelta(t, 100, mid.Y, 15)
}

func TestBuildHistogram_InvalidInput(t *testing.T) {
	_, err := BuildHistogram(nil, 20)
	assert.Error(t, err)

	_, err = BuildHistogram([]float64{1}, 0)
	assert.Error(t, err)
}
