package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fintrack/internal/transport"

	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(ctx context.Context, query ListQuery) (*ListResult, error)
	Stats(ctx context.Context, startDate, endDate *time.Time) (*StatsResult, error)
	Get(ctx context.Context, id string) (*Transaction, error)
	Create(ctx context.Context, dto CreateTransactionDTO) (*Transaction, error)
	Update(ctx context.Context, id string, dto UpdateTransactionDTO) (*Transaction, error)
	Delete(ctx context.Context, id string) (*Transaction, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// ListTransactions handles GET /transactions with optional category, date
// range and sort parameters. The response pairs the page with its summary.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	query, appErr := ParseListQuery(r.URL.Query())
	if appErr != nil {
		h.HandleServiceError(w, appErr)
		return
	}

	result, err := h.Service.List(r.Context(), query)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, result)
}

// GetStats handles GET /transactions/stats/summary over an optional date range.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	startDate, appErr := parseDateParam(values, "startDate")
	if appErr != nil {
		h.HandleServiceError(w, appErr)
		return
	}
	endDate, appErr := parseDateParam(values, "endDate")
	if appErr != nil {
		h.HandleServiceError(w, appErr)
		return
	}

	result, err := h.Service.Stats(r.Context(), startDate, endDate)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, result)
}

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tx, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, tx.ToResponse())
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var dto CreateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Warn("CreateTransaction: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, "Transaction created successfully", tx.ToResponse())
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Warn("UpdateTransaction: invalid request body", "error", err, "transaction_id", id)
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Transaction updated successfully", tx.ToResponse())
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tx, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Transaction deleted successfully", tx.ToResponse())
}
