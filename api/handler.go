// Package api exposes the dashboard and its data endpoints over HTTP.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/censusviz/censusviz/chart"
	"github.com/censusviz/censusviz/filter"
	"github.com/censusviz/censusviz/logger"
	"github.com/censusviz/censusviz/stats"
	"github.com/censusviz/censusviz/types"
)

// Options tunes the handler's render surfaces.
type Options struct {
	ChartHeight int
	PreviewRows int
}

// Handler serves the dashboard over the loaded census table. The table is
// read-only; every request derives its own filtered view, so no locking is
// needed.
type Handler struct {
	table       *types.Table
	chartHeight int
	previewRows int
}

// NewHandler creates a handler over the loaded table.
func NewHandler(table *types.Table, opts Options) *Handler {
	if opts.ChartHeight <= 0 {
		opts.ChartHeight = chart.DefaultHeight
	}
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = 5
	}
	return &Handler{
		table:       table,
		chartHeight: opts.ChartHeight,
		previewRows: opts.PreviewRows,
	}
}

// RegisterRoutes attaches the dashboard routes to r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Dashboard)
	r.Get("/chart", h.Chart)
	r.Route("/api", func(r chi.Router) {
		r.Get("/options", h.Options)
		r.Get("/records", h.Records)
		r.Get("/summary", h.Summary)
	})
}

// OptionsResponse describes the filterable values and bounds the UI builds
// its controls from.
type OptionsResponse struct {
	EducationNumMin int      `json:"education_num_min"`
	EducationNumMax int      `json:"education_num_max"`
	EducationLevels []string `json:"education_levels"`
	IncomeLabels    []string `json:"income_labels"`
	Dimensions      []string `json:"dimensions"`
	TotalRecords    int      `json:"total_records"`
}

// RecordsResponse carries the filtered preview. Count is the full filtered
// size; Records holds only the preview rows.
type RecordsResponse struct {
	RenderPass string         `json:"render_pass"`
	Count      int            `json:"count"`
	Empty      bool           `json:"empty"`
	Message    string         `json:"message,omitempty"`
	Records    []types.Record `json:"records"`
}

// SummaryResponse carries the describe block of the filtered table.
type SummaryResponse struct {
	RenderPass string        `json:"render_pass"`
	Empty      bool          `json:"empty"`
	Summary    stats.Summary `json:"summary"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// emptyFilterMessage is shown whenever a constraint set matches nothing.
// An empty result is a state, not an error.
const emptyFilterMessage = "no records match the current filters; relax the filters to see data"

// Options reports the distinct labels, bounds and dimensions of the loaded
// table.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	min, max := h.table.EducationNumBounds()

	dims := types.Dimensions()
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.String()
	}

	writeJSON(w, http.StatusOK, OptionsResponse{
		EducationNumMin: min,
		EducationNumMax: max,
		EducationLevels: h.table.DistinctEducationLevels(),
		IncomeLabels:    h.table.DistinctIncomeLabels(),
		Dimensions:      names,
		TotalRecords:    h.table.Len(),
	})
}

// Records returns the filtered preview for the request's constraints.
func (h *Handler) Records(w http.ResponseWriter, r *http.Request) {
	constraints, err := h.parseConstraints(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	filtered := filter.Apply(h.table, constraints)
	resp := RecordsResponse{
		RenderPass: uuid.NewString(),
		Count:      filtered.Len(),
		Records:    stats.Preview(filtered, h.previewRows),
	}
	if filtered.Len() == 0 {
		resp.Empty = true
		resp.Message = emptyFilterMessage
	}
	writeJSON(w, http.StatusOK, resp)
}

// Summary returns the describe block for the request's constraints.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	constraints, err := h.parseConstraints(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	filtered := filter.Apply(h.table, constraints)
	writeJSON(w, http.StatusOK, SummaryResponse{
		RenderPass: uuid.NewString(),
		Empty:      filtered.Len() == 0,
		Summary:    stats.Describe(filtered),
	})
}

// Chart renders the 3D scatter for the request's constraints. An empty
// filter result renders the no-data notice instead of a chart.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	constraints, err := h.parseConstraints(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	filtered := filter.Apply(h.table, constraints)
	if filtered.Len() == 0 {
		renderNotice(w, emptyFilterMessage)
		return
	}

	sc, err := chart.New(filtered, chart.Params{
		Dimension: constraints.ThirdDimension,
		Height:    h.chartHeight,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := sc.Render(w); err != nil {
		logger.ErrorContext(r.Context(), "chart render failed", "error", err)
	}
}

// parseConstraints builds the filter configuration from query parameters.
// Omitted parameters fall back to the defaults derived from the loaded
// table, so a bare request reconstructs the unfiltered view.
func (h *Handler) parseConstraints(r *http.Request) (filter.Constraints, error) {
	c := filter.Defaults(h.table)
	q := r.URL.Query()

	if v := q.Get("edu_min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("invalid edu_min %q", v)
		}
		c.EducationRange.Min = n
	}
	if v := q.Get("edu_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("invalid edu_max %q", v)
		}
		c.EducationRange.Max = n
	}
	if levels := q["education"]; len(levels) > 0 {
		c.EducationLevels = levels
	}
	if labels := q["income"]; len(labels) > 0 {
		c.IncomeLabels = labels
	}
	if v := q.Get("dim"); v != "" {
		d, err := types.ParseDimension(v)
		if err != nil {
			return c, err
		}
		c.ThirdDimension = d
	}

	return c, nil
}

// Helper functions
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}
