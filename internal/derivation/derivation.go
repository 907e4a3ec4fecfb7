// Package derivation converts a casting's approval into the financial
// transactions the performer should expect. It fires exactly once per
// transition into the approved status; no flag is stored on the casting,
// so callers must pass the previous status explicitly to detect the edge.
package derivation

import (
	"fmt"

	"github.com/mcastelo/palco/internal/casting"
	"github.com/mcastelo/palco/internal/dateutil"
	"github.com/mcastelo/palco/internal/transaction"
)

const (
	CategoryJobFee  = "Cachê Publicidade"
	CategoryTestFee = "Cachê Teste"
)

// Fired reports whether saving a casting with the given previous status
// (nil on first save) and next status crosses the approval edge. Re-saves
// of an already-approved casting never re-derive, even if fees changed.
func Fired(prev *casting.Status, next casting.Status) bool {
	if next != casting.StatusApproved {
		return false
	}

	return prev == nil || *prev != casting.StatusApproved
}

// IDFunc produces ids for derived transactions. Injected so derivation
// stays deterministic under test.
type IDFunc func() string

// Derive produces the pending income transactions for a newly approved
// casting, job fee first. The payment dates are whatever is stored on the
// casting at approval time (user override or the precomputed default);
// only when absent is the fallback computed here.
func Derive(c casting.Casting, newID IDFunc) []transaction.Transaction {
	txs := make([]transaction.Transaction, 0, 2)

	jobDate := c.DateJobPayment
	if jobDate == "" {
		base := c.LastShootingDate()
		if base == "" {
			base = c.DateCasting
		}

		jobDate = dateutil.AddDays(base, 30)
	}

	txs = append(txs, transaction.Transaction{
		ID:              newID(),
		Date:            jobDate,
		Description:     fmt.Sprintf("Cachê Job: %s", c.Client),
		Amount:          c.FeeJob,
		Type:            transaction.TypeIncome,
		Category:        CategoryJobFee,
		Partner:         c.Agency,
		Status:          transaction.StatusPending,
		OriginCastingID: c.ID,
	})

	if c.HasTestFee && c.FeeTest > 0 {
		testDate := c.DateTestPayment
		if testDate == "" {
			base := c.DateTest
			if base == "" {
				base = c.DateCasting
			}

			testDate = dateutil.AddDays(base, 15)
		}

		txs = append(txs, transaction.Transaction{
			ID:              newID(),
			Date:            testDate,
			Description:     fmt.Sprintf("Cachê Teste: %s", c.Client),
			Amount:          c.FeeTest,
			Type:            transaction.TypeIncome,
			Category:        CategoryTestFee,
			Partner:         c.Agency,
			Status:          transaction.StatusPending,
			OriginCastingID: c.ID,
		})
	}

	return txs
}
