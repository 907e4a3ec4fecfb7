package casting

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcastelo/palco/internal/casting"
	"github.com/mcastelo/palco/internal/report"
	"github.com/mcastelo/palco/internal/tracker"
)

type Handler struct {
	svc *tracker.Service
}

func NewHandler(svc *tracker.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
}

type saveCastingRequest struct {
	Client            string         `json:"client"`
	ProductionCompany string         `json:"productionCompany"`
	Agency            string         `json:"agency"`
	Booker            string         `json:"booker"`
	Exclusivity       string         `json:"exclusivity"`
	UsagePeriod       string         `json:"usagePeriod"`
	Notes             string         `json:"notes"`
	FeeJob            float64        `json:"feeJob"`
	DateJobPayment    string         `json:"dateJobPayment"`
	HasTestFee        bool           `json:"hasTestFee"`
	FeeTest           float64        `json:"feeTest"`
	DateTestPayment   string         `json:"dateTestPayment"`
	DateCasting       string         `json:"dateCasting"`
	DateTest          string         `json:"dateTest"`
	DateCallback      string         `json:"dateCallback"`
	DatePPM           string         `json:"datePPM"`
	DateFitting       string         `json:"dateFitting"`
	DateShooting      []string       `json:"dateShooting"`
	Status            casting.Status `json:"status"`
	IsEdited          bool           `json:"isEdited"`
}

func (req saveCastingRequest) toEntity() casting.Casting {
	c := casting.Casting{
		Client:            req.Client,
		ProductionCompany: req.ProductionCompany,
		Agency:            req.Agency,
		Booker:            req.Booker,
		Exclusivity:       req.Exclusivity,
		UsagePeriod:       req.UsagePeriod,
		Notes:             req.Notes,
		FeeJob:            req.FeeJob,
		DateJobPayment:    req.DateJobPayment,
		HasTestFee:        req.HasTestFee,
		FeeTest:           req.FeeTest,
		DateTestPayment:   req.DateTestPayment,
		DateCasting:       req.DateCasting,
		DateTest:          req.DateTest,
		DateCallback:      req.DateCallback,
		DatePPM:           req.DatePPM,
		DateFitting:       req.DateFitting,
		Status:            req.Status,
		IsEdited:          req.IsEdited,
	}

	if c.Status == "" {
		c.Status = casting.StatusInProgress
	}

	// Duplicate shoot dates are dropped silently.
	for _, d := range req.DateShooting {
		c.AddShootingDate(d)
	}

	return c
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req saveCastingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, created, err := h.svc.SaveCasting(r.Context(), nil, req.toEntity())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, saveCastingResponse{
		Casting:             toResponse(saved),
		CreatedTransactions: created,
	})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	prev, err := h.svc.CastingByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req saveCastingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	next := req.toEntity()
	next.ID = prev.ID

	saved, created, err := h.svc.SaveCasting(r.Context(), &prev, next)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saveCastingResponse{
		Casting:             toResponse(saved),
		CreatedTransactions: created,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sel := report.SelectionFromQuery(r.URL.Query())
	cs := report.FilterCastings(h.svc.Castings(), sel)

	writeJSON(w, http.StatusOK, toResponseList(cs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.CastingByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(c))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, casting.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, casting.ErrClientRequired),
		errors.Is(err, casting.ErrAgencyRequired),
		errors.Is(err, casting.ErrDateCastingRequired),
		errors.Is(err, casting.ErrNoShootingDates):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
