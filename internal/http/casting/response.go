package casting

import (
	"github.com/mcastelo/palco/internal/casting"
)

type castingResponse struct {
	ID                string         `json:"id"`
	Client            string         `json:"client"`
	ProductionCompany string         `json:"productionCompany,omitempty"`
	Agency            string         `json:"agency"`
	Booker            string         `json:"booker,omitempty"`
	Exclusivity       string         `json:"exclusivity,omitempty"`
	UsagePeriod       string         `json:"usagePeriod,omitempty"`
	Notes             string         `json:"notes,omitempty"`
	FeeJob            float64        `json:"feeJob"`
	DateJobPayment    string         `json:"dateJobPayment,omitempty"`
	HasTestFee        bool           `json:"hasTestFee"`
	FeeTest           float64        `json:"feeTest"`
	DateTestPayment   string         `json:"dateTestPayment,omitempty"`
	DateCasting       string         `json:"dateCasting"`
	DateTest          string         `json:"dateTest,omitempty"`
	DateCallback      string         `json:"dateCallback,omitempty"`
	DatePPM           string         `json:"datePPM,omitempty"`
	DateFitting       string         `json:"dateFitting,omitempty"`
	DateShooting      []string       `json:"dateShooting"`
	Status            casting.Status `json:"status"`
	IsEdited          bool           `json:"isEdited"`
}

func toResponse(c casting.Casting) castingResponse {
	return castingResponse{
		ID:                c.ID,
		Client:            c.Client,
		ProductionCompany: c.ProductionCompany,
		Agency:            c.Agency,
		Booker:            c.Booker,
		Exclusivity:       c.Exclusivity,
		UsagePeriod:       c.UsagePeriod,
		Notes:             c.Notes,
		FeeJob:            c.FeeJob,
		DateJobPayment:    c.DateJobPayment,
		HasTestFee:        c.HasTestFee,
		FeeTest:           c.FeeTest,
		DateTestPayment:   c.DateTestPayment,
		DateCasting:       c.DateCasting,
		DateTest:          c.DateTest,
		DateCallback:      c.DateCallback,
		DatePPM:           c.DatePPM,
		DateFitting:       c.DateFitting,
		DateShooting:      c.DateShooting,
		Status:            c.Status,
		IsEdited:          c.IsEdited,
	}
}

func toResponseList(cs []casting.Casting) []castingResponse {
	resp := make([]castingResponse, len(cs))
	for i, c := range cs {
		resp[i] = toResponse(c)
	}

	return resp
}

type saveCastingResponse struct {
	Casting             castingResponse `json:"casting"`
	CreatedTransactions int             `json:"createdTransactions"`
}
