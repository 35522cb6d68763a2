package dashboard

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/de-tools/dummy-atlas/pkg/adapters"
	"github.com/de-tools/dummy-atlas/pkg/models/api"
	"github.com/de-tools/dummy-atlas/pkg/models/domain"
	"github.com/de-tools/dummy-atlas/pkg/runtime/chart"
	"github.com/de-tools/dummy-atlas/pkg/runtime/files"
	"github.com/de-tools/dummy-atlas/pkg/services/dataset"
	"github.com/de-tools/dummy-atlas/pkg/services/profiles"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	builder  dataset.Builder
	registry profiles.Registry
	defaults domain.Params
}

func NewHandler(builder dataset.Builder, registry profiles.Registry, defaults domain.Params) *Handler {
	return &Handler{
		builder:  builder,
		registry: registry,
		defaults: defaults,
	}
}

type dashboardView struct {
	Dataset    *domain.Dataset
	Categories []domain.Category
	Query      template.URL
	Revenue    string
	RevenueYoY string
	Customers  string
	EventDays  string
	Rows       []dataset.TableRow
	MinYears   int
	MaxYears   int
	MaxRows    int
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.build(w, r)
	if !ok {
		return
	}

	view := dashboardView{
		Dataset:    ds,
		Categories: domain.Categories,
		Query:      template.URL(queryString(ds.Params)),
		Revenue:    dataset.FormatYen(ds.Summary.LatestRevenue),
		RevenueYoY: dataset.FormatPercent(ds.Summary.LatestRevenueYoY),
		Customers:  fmt.Sprintf("%d名", ds.Summary.LatestCustomers),
		EventDays:  fmt.Sprintf("%d件", ds.Summary.EventDays),
		Rows:       dataset.TableRows(ds.Records),
		MinYears:   domain.MinYears,
		MaxYears:   domain.MaxYears,
		MaxRows:    domain.MaxMaxRows,
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "dashboard.html", view); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render dashboard")
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.write(w, r, buf.Bytes())
}

func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.build(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := chart.RenderRevenue(&buf, ds); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render chart")
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.write(w, r, buf.Bytes())
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var response []api.Category
	for _, p := range h.registry.ListProfiles(ctx) {
		response = append(response, adapters.MapDomainProfileToAPICategory(p))
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode categories")
	}
}

func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.build(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(adapters.MapDomainDatasetToAPI(ds))
	if err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("dataset_id", ds.ID).
			Msg("failed to encode dataset")
	}
}

func (h *Handler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, "csv", contentTypeCSV, files.WriteCSV)
}

func (h *Handler) DownloadXLSX(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, "xlsx", contentTypeXLSX, files.WriteXLSX)
}

func (h *Handler) download(
	w http.ResponseWriter,
	r *http.Request,
	ext, contentType string,
	write func(io.Writer, *domain.Dataset) error,
) {
	ds, ok := h.build(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, ds); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("format", ext).Msg("failed to export dataset")
		http.Error(w, "failed to export dataset", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", files.FileName(ds.Params.Category, ext)))
	h.write(w, r, buf.Bytes())
}

// build regenerates the dataset for the request, answering 400 on invalid parameters.
func (h *Handler) build(w http.ResponseWriter, r *http.Request) (*domain.Dataset, bool) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	params, err := parseParams(r, h.defaults)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	ds, err := h.builder.Build(ctx, params)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidParams) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
		logger.Error().Err(err).Str("category", string(params.Category)).Msg("failed to build dataset")
		http.Error(w, "failed to build dataset", http.StatusInternalServerError)
		return nil, false
	}
	return ds, true
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, body []byte) {
	if _, err := w.Write(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write response")
	}
}
