package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcastelo/palco/internal/report"
	"github.com/mcastelo/palco/internal/tracker"
	"github.com/mcastelo/palco/internal/transaction"
)

type Handler struct {
	svc *tracker.Service
}

func NewHandler(svc *tracker.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/expenses", h.createExpense)
	r.Patch("/{id}/paid", h.markPaid)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sel := report.SelectionFromQuery(r.URL.Query())
	txs := report.FilterTransactions(h.svc.Transactions(), sel)

	writeJSON(w, http.StatusOK, toResponseList(txs))
}

type createExpenseRequest struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Partner     string  `json:"partner"`
	IsRecurrent bool    `json:"isRecurrent"`
	Notes       string  `json:"notes"`
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.AddExpense(r.Context(), tracker.ExpenseParams{
		Date:        req.Date,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Partner:     req.Partner,
		IsRecurrent: req.IsRecurrent,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, tracker.ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
	err := h.svc.MarkPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
