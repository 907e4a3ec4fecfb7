package transaction

import "errors"

// Type represents the direction of a ledger entry. Amounts are always
// non-negative; direction is carried solely by the type.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Status represents the settlement state of a transaction. Overdue is a
// derived state, never stored: pending income past its due date.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
)

var ErrNotFound = errors.New("transaction not found")

// Transaction represents one ledger entry (income or expense). Date is a
// YYYY-MM-DD due/payment date.
type Transaction struct {
	ID          string
	Date        string
	Description string
	Amount      float64
	Type        Type
	Category    string
	Partner     string
	Status      Status

	// OriginCastingID links back to the casting that generated this entry
	// via derivation. Empty for manually entered expenses.
	OriginCastingID string

	// IsRecurrent marks a monthly expense. Informational only; it does not
	// trigger repeated entries.
	IsRecurrent bool
	Notes       string
}

// Overdue reports whether the transaction is pending income whose due date
// is strictly before today (YYYY-MM-DD). String comparison is date-order
// correct for this format.
func (t *Transaction) Overdue(today string) bool {
	return t.Type == TypeIncome && t.Status == StatusPending && t.Date < today
}
