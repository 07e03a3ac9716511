package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"hrdash/adapters/charts"
	domain "hrdash/domain/dataset"
	"hrdash/internal/dashboard"
	"hrdash/internal/dataset"
	"hrdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDatasetLoader is a mock implementation of ports.DatasetLoaderPort
type MockDatasetLoader struct {
	mock.Mock
}

func (m *MockDatasetLoader) Load(ctx context.Context) (*domain.Dataset, error) {
	args := m.Called(ctx)
	ds, _ := args.Get(0).(*domain.Dataset)
	return ds, args.Error(1)
}

func sampleLoader(t *testing.T) *MockDatasetLoader {
	t.Helper()
	frame, report, err := dataset.Normalize(dataset.GenerateSample(42, 300))
	require.NoError(t, err)

	loader := new(MockDatasetLoader)
	loader.On("Load", mock.Anything).Return(&domain.Dataset{
		Frame:         frame,
		Source:        domain.Source{Kind: domain.SourceSample, Seed: 42},
		Normalization: report,
		Notices: []domain.Notice{{
			Level:   domain.NoticeWarning,
			Message: "File 'employee_data_cleaned.csv' not found. Using sample data for demonstration.",
		}},
	}, nil)
	return loader
}

func failingLoader() *MockDatasetLoader {
	loader := new(MockDatasetLoader)
	loader.On("Load", mock.Anything).
		Return(nil, errors.DataSourceError("failed to read data.csv", os.ErrPermission))
	return loader
}

func newTestApp(t *testing.T, loader *MockDatasetLoader, config Config) *App {
	t.Helper()
	visualizer := dashboard.NewVisualizer(charts.NewSVGRenderer(640, 360), 20)
	app, err := NewApp(config, loader, visualizer)
	require.NoError(t, err)
	return app
}

func get(app *App, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIndex_DefaultFeature(t *testing.T) {
	app := newTestApp(t, sampleLoader(t), Config{})

	rec := get(app, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "<title>HR Analytics Dashboard</title>")
	assert.Contains(t, body, `<option value="Age" selected>`)
	assert.Contains(t, body, "Distribution of 'Age' by Attrition")
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, "Descriptive Statistics")
	assert.Contains(t, body, "<strong>attrition</strong>")
	assert.Contains(t, body, "not found. Using sample data for demonstration.")
	assert.NotContains(t, body, "Raw Data")
}

func TestIndex_CategoricalWithRawData(t *testing.T) {
	app := newTestApp(t, sampleLoader(t), Config{})

	rec := get(app, "/?feature=Department&raw=true")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<option value="Department" selected>`)
	assert.Contains(t, body, "Engineering")
	assert.Contains(t, body, "Raw Data")
	assert.Contains(t, body, "Feature type: Categorical")
}

func TestIndex_UnknownFeature(t *testing.T) {
	app := newTestApp(t, sampleLoader(t), Config{})

	rec := get(app, "/?feature=Salary")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), errors.CodeInvalidInput)
}

func TestIndex_LoaderFailure(t *testing.T) {
	app := newTestApp(t, failingLoader(), Config{})

	rec := get(app, "/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), errors.CodeDataSource)
	assert.Contains(t, rec.Body.String(), "failed to read data.csv")
}

func TestAPI_Features(t *testing.T) {
	app := newTestApp(t, sampleLoader(t), Config{})

	rec := get(app, "/api/features")

	require.Equal(t, http.StatusOK, rec.Code)
	var response FeaturesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Age", response.Default)
	assert.Len(t, response.Options, 13)
	assert.NotContains(t, response.Options, domain.AttritionColumn)
	assert.Equal(t, domain.KindNumeric, response.Kinds["MonthlyIncome"])
	assert.Equal(t, domain.KindCategorical, response.Kinds["JobRole"])
}

func TestAPI_View(t *testing.T) {
	app := newTestApp(t, sampleLoader(t), Config{})

	rec := get(app, "/api/view?feature=YearsAtCompany&raw=1")

	require.Equal(t, http.StatusOK, rec.Code)
	var vm dashboard.ViewModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	assert.Equal(t, "YearsAtCompany", vm.Feature)
	require.Len(t, vm.Panels, 2)
	assert.Equal(t, domain.AttritionNo, vm.Panels[0].Label)
	assert.Equal(t, domain.AttritionYes, vm.Panels[1].Label)
	require.NotNil(t, vm.Raw)
	assert.Len(t, vm.Raw.Rows, 300)
}

func TestAPI_ViewErrors(t *testing.T) {
	tests := []struct {
		name   string
		loader *MockDatasetLoader
		target string
		status int
		code   string
	}{
		{"unknown feature", sampleLoader(t), "/api/view?feature=Nope", http.StatusBadRequest, errors.CodeInvalidInput},
		{"excluded feature", sampleLoader(t), "/api/view?feature=EmployeeNumber", http.StatusBadRequest, errors.CodeInvalidInput},
		{"loader failure", failingLoader(), "/api/view", http.StatusInternalServerError, errors.CodeDataSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(newTestApp(t, tt.loader, Config{}), tt.target)

			assert.Equal(t, tt.status, rec.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.code, response.Code)
			assert.NotEmpty(t, response.RequestID)
		})
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, failingLoader(), Config{})

	rec := get(app, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
}

func TestMetrics(t *testing.T) {
	enabled := newTestApp(t, sampleLoader(t), Config{MetricsEnabled: true})
	require.Equal(t, http.StatusOK, get(enabled, "/").Code)

	rec := get(enabled, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hrdash_renders_total")

	disabled := newTestApp(t, sampleLoader(t), Config{})
	assert.Equal(t, http.StatusNotFound, get(disabled, "/metrics").Code)
}

func TestAPI_CORS(t *testing.T) {
	app := newTestApp(t, sampleLoader(t), Config{CORSAllowedOrigins: []string{"http://example.com"}})

	req := httptest.NewRequest(http.MethodGet, "/api/features", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	app.Handler().ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStaticAssets(t *testing.T) {
	app := newTestApp(t, sampleLoader(t), Config{})

	rec := get(app, "/static/css/dashboard.css")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".sidebar")
}
