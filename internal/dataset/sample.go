package dataset

import (
	"math/rand"

	domain "hrdash/domain/dataset"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// SampleConfig configures the synthetic employee generator
type SampleConfig struct {
	Seed         int64   `json:"seed"`
	Size         int     `json:"size"`
	AttritionYes float64 `json:"attrition_yes"` // probability of "Yes"
}

// DefaultSampleConfig returns the demonstration defaults: 1000 rows, seed 42, 16% attrition
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{
		Seed:         42,
		Size:         1000,
		AttritionYes: 0.16,
	}
}

var (
	genders         = []string{"Male", "Female"}
	maritalStatuses = []string{"Single", "Married", "Divorced"}
	departments     = []string{"HR", "Sales", "Engineering", "Finance", "Marketing"}
	educationFields = []string{"Life Sciences", "Medical", "Marketing", "Technical Degree", "Other"}
	jobRoles        = []string{"Sales Executive", "Research Scientist", "Manager", "Healthcare Representative", "Developer"}
	businessTravel  = []string{"Travel_Rarely", "Travel_Frequently", "Non-Travel"}
)

// SampleGenerator produces a deterministic employee table for a seed
type SampleGenerator struct {
	config SampleConfig
	rng    *rand.Rand
}

// NewSampleGenerator creates a generator seeded from config
func NewSampleGenerator(config SampleConfig) *SampleGenerator {
	return &SampleGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// GenerateSample is shorthand for a default generator with the given seed and size
func GenerateSample(seed int64, size int) dataframe.DataFrame {
	config := DefaultSampleConfig()
	config.Seed = seed
	config.Size = size
	return NewSampleGenerator(config).Generate()
}

// Generate builds the 15-column sample frame. Columns are drawn one at a time in
// schema order, so the same seed always yields the same table.
func (g *SampleGenerator) Generate() dataframe.DataFrame {
	n := g.config.Size

	employeeNumbers := make([]int, n)
	for i := range employeeNumbers {
		employeeNumbers[i] = i + 1
	}

	return dataframe.New(
		series.New(employeeNumbers, series.Int, "EmployeeNumber"),
		series.New(g.intRange(18, 65), series.Int, "Age"),
		series.New(g.choice(genders), series.String, "Gender"),
		series.New(g.choice(maritalStatuses), series.String, "MaritalStatus"),
		series.New(g.choice(departments), series.String, "Department"),
		series.New(g.choice(educationFields), series.String, "EducationField"),
		series.New(g.choice(jobRoles), series.String, "JobRole"),
		series.New(g.choice(businessTravel), series.String, "BusinessTravel"),
		series.New(g.intRange(1000, 20000), series.Int, "MonthlyIncome"),
		series.New(g.intRange(0, 20), series.Int, "YearsAtCompany"),
		series.New(g.intRange(1, 5), series.Int, "JobSatisfaction"),
		series.New(g.intRange(1, 5), series.Int, "EnvironmentSatisfaction"),
		series.New(g.intRange(1, 5), series.Int, "WorkLifeBalance"),
		series.New(g.intRange(1, 30), series.Int, "DistanceFromHome"),
		series.New(g.attrition(), series.String, domain.AttritionColumn),
	)
}

// intRange draws n integers uniformly from [lo, hi)
func (g *SampleGenerator) intRange(lo, hi int) []int {
	out := make([]int, g.config.Size)
	for i := range out {
		out[i] = lo + g.rng.Intn(hi-lo)
	}
	return out
}

func (g *SampleGenerator) choice(options []string) []string {
	out := make([]string, g.config.Size)
	for i := range out {
		out[i] = options[g.rng.Intn(len(options))]
	}
	return out
}

func (g *SampleGenerator) attrition() []string {
	out := make([]string, g.config.Size)
	for i := range out {
		if g.rng.Float64() < g.config.AttritionYes {
			out[i] = domain.AttritionYes
		} else {
			out[i] = domain.AttritionNo
		}
	}
	return out
}
