package ui

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/spf13/cast"

	"hrdash/domain/dataset"
	"hrdash/internal/dashboard"
	"hrdash/internal/errors"
)

// indexPage is the data behind templates/index.html
type indexPage struct {
	View *dashboard.ViewModel
}

// errorPage is the data behind templates/error.html
type errorPage struct {
	Title     string
	Status    int
	Code      string
	Message   string
	RequestID string
}

// ErrorResponse is the JSON body of a failed API call
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// FeaturesResponse lists the selectable features
type FeaturesResponse struct {
	Options []string                       `json:"options"`
	Default string                         `json:"default"`
	Kinds   map[string]dataset.FeatureKind `json:"kinds"`
	Source  dataset.Source                 `json:"source"`
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// viewParams reads the feature selection and raw-data toggle from the query string
func viewParams(r *http.Request) (feature string, showRaw bool) {
	q := r.URL.Query()
	return q.Get("feature"), cast.ToBool(q.Get("raw"))
}

// buildView loads the dataset and renders the selected feature
func (a *App) buildView(r *http.Request) (*dashboard.ViewModel, error) {
	ds, err := a.loader.Load(r.Context())
	if err != nil {
		return nil, err
	}
	feature, showRaw := viewParams(r)
	return a.visualizer.Render(ds, feature, showRaw)
}

// handleIndex renders the dashboard page
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	vm, err := a.buildView(r)
	if err != nil {
		a.renderErrorPage(w, r, err)
		return
	}
	a.renderTemplate(w, http.StatusOK, "index.html", indexPage{View: vm})
}

// handleView returns the view model of one feature as JSON
func (a *App) handleView(w http.ResponseWriter, r *http.Request) {
	vm, err := a.buildView(r)
	if err != nil {
		a.renderErrorJSON(w, r, err)
		return
	}
	render.JSON(w, r, vm)
}

// handleFeatures returns the selectable features and the default selection
func (a *App) handleFeatures(w http.ResponseWriter, r *http.Request) {
	ds, err := a.loader.Load(r.Context())
	if err != nil {
		a.renderErrorJSON(w, r, err)
		return
	}

	options := ds.FeatureOptions()
	response := FeaturesResponse{
		Options: options,
		Kinds:   make(map[string]dataset.FeatureKind, len(options)),
		Source:  ds.Source,
	}
	if len(options) > 0 {
		response.Default = options[0]
	}
	for _, feature := range options {
		response.Kinds[feature] = ds.Kind(feature)
	}
	render.JSON(w, r, response)
}

// handleHealth reports liveness
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

func (a *App) renderErrorPage(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	a.logRequestError(r, status, err)
	a.renderTemplate(w, status, "error.html", errorPage{
		Title:     http.StatusText(status),
		Status:    status,
		Code:      errors.GetCode(err),
		Message:   err.Error(),
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func (a *App) renderErrorJSON(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	a.logRequestError(r, status, err)
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{
		Code:      errors.GetCode(err),
		Message:   err.Error(),
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func (a *App) logRequestError(r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		a.log.Error("%s %s: %v", r.Method, r.URL.Path, err)
		return
	}
	a.log.Warn("%s %s: %v", r.Method, r.URL.Path, err)
}
