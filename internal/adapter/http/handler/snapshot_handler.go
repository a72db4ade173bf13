package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nesteggapp/nestegg/internal/adapter/http/dto"
	"github.com/nesteggapp/nestegg/internal/domain"
	"github.com/nesteggapp/nestegg/internal/usecase"
)

// SnapshotService defines the behavior needed by SnapshotHandler.
type SnapshotService interface {
	SaveSnapshot(ctx context.Context, input usecase.SaveSnapshotInput) (*domain.NetWorthSnapshot, error)
	GetSnapshot(ctx context.Context, date time.Time) (*domain.NetWorthSnapshot, error)
	ListSnapshots(ctx context.Context) ([]domain.NetWorthSnapshot, error)
}

// SnapshotHandler handles net worth snapshot HTTP requests.
type SnapshotHandler struct {
	snapshotUC SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotUC SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotUC: snapshotUC}
}

// Save upserts the snapshot for the month containing the request date.
func (h *SnapshotHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid snapshot date", err.Error())
		return
	}

	snapshot, err := h.snapshotUC.SaveSnapshot(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to save snapshot", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SnapshotFromDomain(snapshot))
}

// Get retrieves the snapshot for a month addressed as YYYY-MM.
func (h *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	month, err := time.ParseInLocation("2006-01", chi.URLParam(r, "month"), time.UTC)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month", err.Error())
		return
	}

	snapshot, err := h.snapshotUC.GetSnapshot(r.Context(), month)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get snapshot", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SnapshotFromDomain(snapshot))
}

// List returns the full snapshot history.
func (h *SnapshotHandler) List(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.snapshotUC.ListSnapshots(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list snapshots", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SnapshotsFromDomain(snapshots))
}
