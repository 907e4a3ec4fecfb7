package insights

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcastelo/palco/internal/dateutil"
	"github.com/mcastelo/palco/internal/insights"
	"github.com/mcastelo/palco/internal/report"
	"github.com/mcastelo/palco/internal/tracker"
)

// Analyzer is the upstream AI client. Failures never surface here; the
// client degrades to a fallback string on its own.
type Analyzer interface {
	Analyze(ctx context.Context, p insights.Payload) string
}

type Handler struct {
	svc      *tracker.Service
	analyzer Analyzer
}

func NewHandler(svc *tracker.Service, analyzer Analyzer) *Handler {
	return &Handler{svc: svc, analyzer: analyzer}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/analyze", h.analyze)
}

type analyzeResponse struct {
	Text string `json:"text"`
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	sel := report.SelectionFromQuery(r.URL.Query())

	txs := report.FilterTransactions(h.svc.Transactions(), sel)
	cs := report.FilterCastings(h.svc.Castings(), sel)

	payload := insights.BuildPayload(
		cs,
		report.Summarize(txs, dateutil.Today()),
		report.TopPartners(cs, 5),
	)

	text := h.analyzer.Analyze(r.Context(), payload)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(analyzeResponse{Text: text}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
