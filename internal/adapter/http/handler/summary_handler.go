package handler

import (
	"context"
	"net/http"

	"github.com/nesteggapp/nestegg/internal/analytics"
	"github.com/nesteggapp/nestegg/internal/usecase"
)

// SummaryService defines the behavior needed by SummaryHandler.
type SummaryService interface {
	GetSummary(ctx context.Context, input usecase.SummaryInput) (*analytics.PeriodSummary, error)
}

// SummaryHandler handles period summary HTTP requests.
type SummaryHandler struct {
	summaryUC SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryUC SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryUC: summaryUC}
}

// Get computes the period summary. Query parameters: range (1M, 3M, 6M,
// 1Y, YTD, Max; default 1M), reference (YYYY-MM-DD; default today), top
// (mover list length; default 2).
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	selectorParam := r.URL.Query().Get("range")
	if selectorParam == "" {
		selectorParam = string(analytics.OneMonth)
	}
	selector, err := analytics.ParseRangeSelector(selectorParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid range selector", err.Error())
		return
	}

	reference, err := parseDateQuery(r, "reference")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reference date", err.Error())
		return
	}

	summary, err := h.summaryUC.GetSummary(r.Context(), usecase.SummaryInput{
		Reference: reference,
		Selector:  selector,
		TopN:      parseIntQuery(r, "top", analytics.DefaultTopMovers),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
