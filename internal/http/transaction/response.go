package transaction

import (
	"github.com/mcastelo/palco/internal/transaction"
)

type transactionResponse struct {
	ID              string             `json:"id"`
	Date            string             `json:"date"`
	Description     string             `json:"description"`
	Amount          float64            `json:"amount"`
	Type            transaction.Type   `json:"type"`
	Category        string             `json:"category"`
	Partner         string             `json:"partner,omitempty"`
	Status          transaction.Status `json:"status"`
	OriginCastingID string             `json:"originCastingId,omitempty"`
	IsRecurrent     bool               `json:"isRecurrent,omitempty"`
	Notes           string             `json:"notes,omitempty"`
}

func toResponse(t transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:              t.ID,
		Date:            t.Date,
		Description:     t.Description,
		Amount:          t.Amount,
		Type:            t.Type,
		Category:        t.Category,
		Partner:         t.Partner,
		Status:          t.Status,
		OriginCastingID: t.OriginCastingID,
		IsRecurrent:     t.IsRecurrent,
		Notes:           t.Notes,
	}
}

func toResponseList(txs []transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, t := range txs {
		resp[i] = toResponse(t)
	}

	return resp
}
