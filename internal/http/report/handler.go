package report

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcastelo/palco/internal/dateutil"
	"github.com/mcastelo/palco/internal/report"
	"github.com/mcastelo/palco/internal/tracker"
)

const topPartnersLimit = 5

type Handler struct {
	svc *tracker.Service
}

func NewHandler(svc *tracker.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/consolidated", h.consolidated)
	r.Get("/seasonality", h.seasonality)
	r.Get("/funnel", h.funnel)
	r.Get("/partners", h.partners)
	r.Get("/agenda", h.agenda)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	sel := report.SelectionFromQuery(r.URL.Query())
	txs := report.FilterTransactions(h.svc.Transactions(), sel)

	writeJSON(w, report.Summarize(txs, dateutil.Today()))
}

type consolidatedResponse struct {
	Rows  []report.MonthRow `json:"rows"`
	Total report.MonthRow   `json:"total"`
}

func (h *Handler) consolidated(w http.ResponseWriter, r *http.Request) {
	sel := report.SelectionFromQuery(r.URL.Query())
	txs := report.FilterTransactions(h.svc.Transactions(), sel)

	rows, total := report.Consolidate(txs)

	writeJSON(w, consolidatedResponse{Rows: rows[:], Total: total})
}

func (h *Handler) seasonality(w http.ResponseWriter, r *http.Request) {
	// Seasonality sums across all years; only the period narrows it.
	sel := report.SelectionFromQuery(r.URL.Query())

	writeJSON(w, report.Seasonality(h.svc.Transactions(), sel.Period))
}

func (h *Handler) funnel(w http.ResponseWriter, r *http.Request) {
	sel := report.SelectionFromQuery(r.URL.Query())
	cs := report.FilterCastings(h.svc.Castings(), sel)

	writeJSON(w, report.FunnelOf(cs))
}

func (h *Handler) partners(w http.ResponseWriter, r *http.Request) {
	sel := report.SelectionFromQuery(r.URL.Query())
	cs := report.FilterCastings(h.svc.Castings(), sel)

	writeJSON(w, report.TopPartners(cs, topPartnersLimit))
}

func (h *Handler) agenda(w http.ResponseWriter, r *http.Request) {
	sel := report.SelectionFromQuery(r.URL.Query())
	events := report.Agenda(h.svc.Castings())

	writeJSON(w, report.FilterEvents(events, sel))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
