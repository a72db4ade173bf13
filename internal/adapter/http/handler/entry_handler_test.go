package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nesteggapp/nestegg/internal/domain"
	"github.com/nesteggapp/nestegg/internal/usecase"
)

type stubEntryService struct {
	created usecase.CreateEntryInput
	entry   *domain.LedgerEntry
	err     error
}

func (s *stubEntryService) CreateEntry(_ context.Context, input usecase.CreateEntryInput) (*domain.LedgerEntry, error) {
	s.created = input
	return s.entry, s.err
}

func (s *stubEntryService) UpdateEntry(_ context.Context, _ string, input usecase.CreateEntryInput) (*domain.LedgerEntry, error) {
	s.created = input
	return s.entry, s.err
}

func (s *stubEntryService) DeleteEntry(context.Context, string) error { return s.err }

func (s *stubEntryService) GetEntry(context.Context, string) (*domain.LedgerEntry, error) {
	return s.entry, s.err
}

func (s *stubEntryService) ListEntries(context.Context) ([]domain.LedgerEntry, error) {
	if s.entry == nil {
		return nil, s.err
	}
	return []domain.LedgerEntry{*s.entry}, s.err
}

func entryRouter(svc EntryService) http.Handler {
	h := NewEntryHandler(svc)
	r := chi.NewRouter()
	r.Post("/entries", h.Create)
	r.Get("/entries/{id}", h.Get)
	r.Delete("/entries/{id}", h.Delete)
	return r
}

func TestEntryHandler_Create(t *testing.T) {
	t.Run("records an entry from a valid payload", func(t *testing.T) {
		stub := &stubEntryService{entry: &domain.LedgerEntry{
			ID:              "entry-1",
			Kind:            domain.KindExpense,
			Date:            time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			Amount:          decimal.RequireFromString("42.50"),
			SourceAccountID: "acc-checking",
		}}

		body := `{"kind":"expense","date":"2025-03-14","amount":"42.50","source_account_id":"acc-checking"}`
		req := httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(body))
		rec := httptest.NewRecorder()
		entryRouter(stub).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, domain.KindExpense, stub.created.Kind)
		assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), stub.created.Date)
		assert.True(t, stub.created.Amount.Equal(decimal.RequireFromString("42.50")))
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		body := `{"kind":"expense","date":"14/03/2025","amount":"42.50"}`
		req := httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(body))
		rec := httptest.NewRecorder()
		entryRouter(&stubEntryService{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps validation errors to 400", func(t *testing.T) {
		stub := &stubEntryService{err: domain.ErrTransferWithCategory}

		body := `{"kind":"transfer","date":"2025-03-14","amount":"10","category_id":"cat-1","source_account_id":"a","destination_account_id":"b"}`
		req := httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(body))
		rec := httptest.NewRecorder()
		entryRouter(stub).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps archived references to 409", func(t *testing.T) {
		stub := &stubEntryService{err: domain.ErrAccountArchived}

		body := `{"kind":"expense","date":"2025-03-14","amount":"10","source_account_id":"acc-closed"}`
		req := httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(body))
		rec := httptest.NewRecorder()
		entryRouter(stub).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestEntryHandler_Get(t *testing.T) {
	t.Run("maps a missing entry to 404", func(t *testing.T) {
		stub := &stubEntryService{err: domain.ErrEntryNotFound}

		req := httptest.NewRequest(http.MethodGet, "/entries/missing", nil)
		rec := httptest.NewRecorder()
		entryRouter(stub).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEntryHandler_Delete(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/entries/entry-1", nil)
	rec := httptest.NewRecorder()
	entryRouter(&stubEntryService{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
