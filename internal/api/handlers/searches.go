package handlers

import (
	"bytes"
	"business-finder/internal/api/dto"
	"business-finder/internal/domain"
	"business-finder/internal/platform/obs"
	"business-finder/internal/render"
	"business-finder/internal/services"
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
)

// Finder is the search pipeline the handler delegates to.
type Finder interface {
	Find(ctx context.Context, req services.FindBusinessesRequest) (*domain.SearchReport, error)
}

// SearchHandler exposes the business search form as JSON and XLSX endpoints.
type SearchHandler struct {
	Finder        Finder
	DefaultPolicy domain.ReviewPolicy
}

// Search runs one search and responds with the JSON report.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	report, ok := h.run(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewSearchResponse(report))
}

// Export runs one search and responds with the filtered results as an XLSX workbook.
func (h *SearchHandler) Export(w http.ResponseWriter, r *http.Request) {
	report, ok := h.run(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.WriteWorkbook(&buf, report.Results); err != nil {
		log.Printf("req_id=%s export workbook failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="businesses.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("req_id=%s export write failed: %v", obs.RequestID(r.Context()), err)
	}
}

// run decodes and validates the form, then executes the search.
// It writes the error response itself and reports false on failure.
func (h *SearchHandler) run(w http.ResponseWriter, r *http.Request) (*domain.SearchReport, bool) {
	var req dto.SearchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}

	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, r, http.StatusBadRequest, map[string]any{
			"error":  "invalid search request",
			"fields": errs,
		})
		return nil, false
	}

	filter, err := req.Filter(h.DefaultPolicy)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}

	report, err := h.Finder.Find(r.Context(), services.FindBusinessesRequest{
		Keyword:     req.Keyword,
		Location:    req.Location,
		RadiusMiles: req.Radius(),
		Filter:      filter,
	})
	if err != nil {
		var ge *domain.GeocodeError
		switch {
		case errors.As(err, &ge):
			writeError(w, r, http.StatusUnprocessableEntity, ge.UserMessage())
		case errors.Is(err, context.Canceled):
			log.Printf("req_id=%s search canceled: %v", obs.RequestID(r.Context()), err)
		default:
			log.Printf("req_id=%s search failed: %v", obs.RequestID(r.Context()), err)
			writeError(w, r, http.StatusBadGateway, "upstream provider error")
		}
		return nil, false
	}

	return report, true
}
