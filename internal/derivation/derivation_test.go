package derivation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcastelo/palco/internal/casting"
	"github.com/mcastelo/palco/internal/derivation"
	"github.com/mcastelo/palco/internal/transaction"
)

func sequentialIDs() derivation.IDFunc {
	n := 0

	return func() string {
		n++
		return fmt.Sprintf("tx-%d", n)
	}
}

func approvedCasting() casting.Casting {
	return casting.Casting{
		ID:           "c1",
		Client:       "Comercial Banco X",
		Agency:       "Agência Models",
		FeeJob:       5000,
		DateCasting:  "2024-02-10",
		DateShooting: []string{"2024-02-20", "2024-02-21"},
		Status:       casting.StatusApproved,
	}
}

func TestFired(t *testing.T) {
	inProgress := casting.StatusInProgress
	approved := casting.StatusApproved
	notApproved := casting.StatusNotApproved

	tests := []struct {
		name string
		prev *casting.Status
		next casting.Status
		want bool
	}{
		{name: "FirstSaveApproved", prev: nil, next: casting.StatusApproved, want: true},
		{name: "InProgressToApproved", prev: &inProgress, next: casting.StatusApproved, want: true},
		{name: "NotApprovedToApproved", prev: &notApproved, next: casting.StatusApproved, want: true},
		{name: "ResaveWhileApproved", prev: &approved, next: casting.StatusApproved, want: false},
		{name: "FirstSaveInProgress", prev: nil, next: casting.StatusInProgress, want: false},
		{name: "ApprovedToNotApproved", prev: &approved, next: casting.StatusNotApproved, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, derivation.Fired(tt.prev, tt.next))
		})
	}
}

func TestDerive_JobFeeOnly(t *testing.T) {
	c := approvedCasting()

	txs := derivation.Derive(c, sequentialIDs())
	require.Len(t, txs, 1)

	job := txs[0]
	assert.Equal(t, "2024-03-22", job.Date, "max shoot date + 30 days")
	assert.Equal(t, 5000.0, job.Amount)
	assert.Equal(t, transaction.TypeIncome, job.Type)
	assert.Equal(t, transaction.StatusPending, job.Status)
	assert.Equal(t, derivation.CategoryJobFee, job.Category)
	assert.Equal(t, "Agência Models", job.Partner)
	assert.Equal(t, "c1", job.OriginCastingID)
	assert.Contains(t, job.Description, "Comercial Banco X")
}

func TestDerive_WithTestFee(t *testing.T) {
	c := approvedCasting()
	c.HasTestFee = true
	c.FeeTest = 150
	c.DateTest = "2024-02-10"

	txs := derivation.Derive(c, sequentialIDs())
	require.Len(t, txs, 2)

	test := txs[1]
	assert.Equal(t, "2024-02-25", test.Date, "test date + 15 days")
	assert.Equal(t, 150.0, test.Amount)
	assert.Equal(t, derivation.CategoryTestFee, test.Category)
	assert.Equal(t, transaction.StatusPending, test.Status)
	assert.Equal(t, "c1", test.OriginCastingID)
}

func TestDerive_TestFeeFlagWithoutAmount(t *testing.T) {
	c := approvedCasting()
	c.HasTestFee = true
	c.FeeTest = 0

	txs := derivation.Derive(c, sequentialIDs())
	assert.Len(t, txs, 1, "zero test fee emits no test transaction")
}

func TestDerive_StoredDatesWin(t *testing.T) {
	c := approvedCasting()
	c.DateJobPayment = "2024-05-01"
	c.HasTestFee = true
	c.FeeTest = 120
	c.DateTestPayment = "2024-04-01"

	txs := derivation.Derive(c, sequentialIDs())
	require.Len(t, txs, 2)
	assert.Equal(t, "2024-05-01", txs[0].Date, "user override is not recomputed")
	assert.Equal(t, "2024-04-01", txs[1].Date)
}

func TestDerive_FallsBackToCastingDate(t *testing.T) {
	c := approvedCasting()
	c.DateShooting = nil

	txs := derivation.Derive(c, sequentialIDs())
	require.Len(t, txs, 1)
	assert.Equal(t, "2024-03-11", txs[0].Date, "casting date + 30 days")
}

func TestDerive_TestDateFallsBackToCastingDate(t *testing.T) {
	c := approvedCasting()
	c.HasTestFee = true
	c.FeeTest = 120
	c.DateTest = ""

	txs := derivation.Derive(c, sequentialIDs())
	require.Len(t, txs, 2)
	assert.Equal(t, "2024-02-25", txs[1].Date, "casting date + 15 days")
}
