// Package handler contains the HTTP handlers (driving adapters).
// The facets handler doubles as the query-parameter normalizer the
// engine expects: it translates raw textual filter parameters into
// typed facet.Params before any domain code runs, so the engine never
// parses strings.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/hapkiduki/facet-go/internal/application/dto"
	"github.com/hapkiduki/facet-go/internal/application/port"
	"github.com/hapkiduki/facet-go/internal/application/service"
	"github.com/hapkiduki/facet-go/internal/domain/entity"
	"github.com/hapkiduki/facet-go/internal/domain/facet"
)

// Query parameter names understood by the facet API.
const (
	paramStockStatus = "stock_status"
	paramMinPrice    = "min_price"
	paramMaxPrice    = "max_price"
	paramRating      = "rating"

	// attrParamPrefix marks per-dimension term filters, e.g. attr_color=red,blue
	attrParamPrefix = "attr_"
)

// FacetsHandler serves the facet query endpoints.
type FacetsHandler struct {
	facets *service.FacetService
	logger port.Logger
}

// NewFacetsHandler creates a new FacetsHandler.
//
// Parameters:
//   - facets: the facet application service
//   - logger: structured logger
//
// Returns:
//   - *FacetsHandler: the handler instance
func NewFacetsHandler(facets *service.FacetService, logger port.Logger) *FacetsHandler {
	return &FacetsHandler{
		facets: facets,
		logger: logger,
	}
}

// Routes mounts the facet endpoints on a router.
//
// Returns:
//   - chi.Router: router with the facet routes
func (h *FacetsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Summary)
	r.Get("/price", h.PriceRange)
	r.Get("/stock", h.StockCounts)
	r.Get("/rating", h.RatingCounts)
	r.Get("/attributes/{dimension}", h.AttributeCounts)
	return r
}

// Summary handles GET /facets: every facet for one filter selection.
func (h *FacetsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	params, verrs := parseParams(r)
	if len(verrs) > 0 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewValidationErrorResponse[dto.FacetSummaryResponse](verrs))
		return
	}

	summary, err := h.facets.Summary(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.NewSuccessResponse(summary))
}

// PriceRange handles GET /facets/price.
func (h *FacetsHandler) PriceRange(w http.ResponseWriter, r *http.Request) {
	params, verrs := parseParams(r)
	if len(verrs) > 0 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewValidationErrorResponse[dto.PriceFacetResponse](verrs))
		return
	}

	result, err := h.facets.PriceRange(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.NewSuccessResponse(result))
}

// StockCounts handles GET /facets/stock.
func (h *FacetsHandler) StockCounts(w http.ResponseWriter, r *http.Request) {
	params, verrs := parseParams(r)
	if len(verrs) > 0 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewValidationErrorResponse[dto.StockFacetResponse](verrs))
		return
	}

	result, err := h.facets.StockCounts(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.NewSuccessResponse(result))
}

// RatingCounts handles GET /facets/rating.
func (h *FacetsHandler) RatingCounts(w http.ResponseWriter, r *http.Request) {
	params, verrs := parseParams(r)
	if len(verrs) > 0 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewValidationErrorResponse[dto.RatingFacetResponse](verrs))
		return
	}

	result, err := h.facets.RatingCounts(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.NewSuccessResponse(result))
}

// AttributeCounts handles GET /facets/attributes/{dimension}.
func (h *FacetsHandler) AttributeCounts(w http.ResponseWriter, r *http.Request) {
	dimension := chi.URLParam(r, "dimension")

	params, verrs := parseParams(r)
	if len(verrs) > 0 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewValidationErrorResponse[dto.AttributeFacetResponse](verrs))
		return
	}

	result, err := h.facets.AttributeCounts(r.Context(), params, dimension)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, dto.NewSuccessResponse(result))
}

// renderError maps domain errors to HTTP responses.
func (h *FacetsHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case facet.IsMalformedContext(err):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[any]("MALFORMED_FILTERS", err.Error()))
	case errors.Is(err, facet.ErrInvalidDimension):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, dto.NewErrorResponse[any]("UNKNOWN_DIMENSION", err.Error()))
	default:
		h.logger.WithContext(r.Context()).Error("Facet query failed", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, dto.NewErrorResponse[any]("INTERNAL_ERROR", "An unexpected error occurred"))
	}
}

// parseParams normalizes raw query parameters into typed filter params.
// Every malformed value is reported as a field-level validation error;
// the engine only ever sees fully-typed input.
func parseParams(r *http.Request) (facet.Params, []dto.ValidationError) {
	var verrs []dto.ValidationError

	query := r.URL.Query()
	params := facet.Params{
		Attributes: make(map[string][]string),
	}

	if raw := query.Get(paramStockStatus); raw != "" {
		for _, s := range splitList(raw) {
			status := entity.StockStatus(s)
			if !status.Valid() {
				verrs = append(verrs, dto.ValidationError{
					Field:   paramStockStatus,
					Message: "unknown stock status",
					Value:   s,
				})
				continue
			}
			params.StockStatuses = append(params.StockStatuses, status)
		}
	}

	if raw := query.Get(paramMinPrice); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			params.MinPrice = &v
		} else {
			verrs = append(verrs, dto.ValidationError{
				Field:   paramMinPrice,
				Message: "must be a number",
				Value:   raw,
			})
		}
	}

	if raw := query.Get(paramMaxPrice); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			params.MaxPrice = &v
		} else {
			verrs = append(verrs, dto.ValidationError{
				Field:   paramMaxPrice,
				Message: "must be a number",
				Value:   raw,
			})
		}
	}

	if raw := query.Get(paramRating); raw != "" {
		for _, s := range splitList(raw) {
			v, err := strconv.Atoi(s)
			if err != nil {
				verrs = append(verrs, dto.ValidationError{
					Field:   paramRating,
					Message: "must be an integer",
					Value:   s,
				})
				continue
			}
			params.Ratings = append(params.Ratings, v)
		}
	}

	for key, values := range query {
		if !strings.HasPrefix(key, attrParamPrefix) {
			continue
		}
		dimension := strings.TrimPrefix(key, attrParamPrefix)
		if dimension == "" {
			verrs = append(verrs, dto.ValidationError{
				Field:   key,
				Message: "attribute dimension name is empty",
			})
			continue
		}
		var terms []string
		for _, raw := range values {
			terms = append(terms, splitList(raw)...)
		}
		if len(terms) > 0 {
			params.Attributes[dimension] = terms
		}
	}

	return params, verrs
}

// splitList splits a comma-separated parameter, dropping empty entries.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
