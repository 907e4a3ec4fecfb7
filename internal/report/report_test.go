package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcastelo/palco/internal/casting"
	"github.com/mcastelo/palco/internal/dateutil"
	"github.com/mcastelo/palco/internal/report"
	"github.com/mcastelo/palco/internal/transaction"
)

func income(date string, amount float64, status transaction.Status) transaction.Transaction {
	return transaction.Transaction{
		Date: date, Amount: amount, Type: transaction.TypeIncome, Status: status,
	}
}

func expense(date string, amount float64) transaction.Transaction {
	return transaction.Transaction{
		Date: date, Amount: amount, Type: transaction.TypeExpense, Status: transaction.StatusPaid,
	}
}

func TestFilterTransactions(t *testing.T) {
	txs := []transaction.Transaction{
		income("2023-01-10", 100, transaction.StatusPaid),
		income("2024-02-10", 200, transaction.StatusPaid),
		income("2024-08-10", 300, transaction.StatusPaid),
	}

	t.Run("YearAndPeriod", func(t *testing.T) {
		got := report.FilterTransactions(txs, report.Selection{
			Year: 2024, Period: dateutil.PeriodSemester1,
		})
		require.Len(t, got, 1)
		assert.Equal(t, "2024-02-10", got[0].Date)
	})

	t.Run("AllYears", func(t *testing.T) {
		got := report.FilterTransactions(txs, report.Selection{
			Year: report.AllYears, Period: dateutil.PeriodYear,
		})
		require.Len(t, got, 3)
		assert.Equal(t, "2024-08-10", got[0].Date, "sorted descending by date")
		assert.Equal(t, "2023-01-10", got[2].Date)
	})
}

func TestFilterCastings(t *testing.T) {
	cs := []casting.Casting{
		{ID: "a", DateCasting: "2024-03-15"},
		{ID: "b", DateCasting: "2024-09-01"},
		{ID: "c", DateCasting: "2023-03-15"},
	}

	got := report.FilterCastings(cs, report.Selection{Year: 2024, Period: dateutil.PeriodYear})
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID, "sorted descending by casting date")
	assert.Equal(t, "a", got[1].ID)
}

func TestSummarize_Partition(t *testing.T) {
	txs := []transaction.Transaction{
		income("2024-01-10", 5000, transaction.StatusPaid),
		income("2024-02-10", 1200, transaction.StatusPending),
		income("2024-09-01", 800, transaction.StatusPending),
		expense("2024-01-15", 300),
	}

	s := report.Summarize(txs, "2024-06-01")

	assert.Equal(t, 5000.0, s.TotalIncome)
	assert.Equal(t, 2000.0, s.PendingIncome)
	assert.Equal(t, 1200.0, s.OverdueIncome, "only pending income strictly before today")
	assert.Equal(t, 300.0, s.TotalExpense)
	assert.Equal(t, s.TotalIncome-s.TotalExpense, s.Balance)
}

func TestSummarize_PaidIncomeNeverOverdue(t *testing.T) {
	overdue := income("2024-01-10", 1000, transaction.StatusPending)

	s := report.Summarize([]transaction.Transaction{overdue}, "2024-06-01")
	assert.Equal(t, 1000.0, s.PendingIncome)
	assert.Equal(t, 1000.0, s.OverdueIncome)

	overdue.Status = transaction.StatusPaid

	s = report.Summarize([]transaction.Transaction{overdue}, "2024-06-01")
	assert.Equal(t, 0.0, s.PendingIncome)
	assert.Equal(t, 0.0, s.OverdueIncome)
	assert.Equal(t, 1000.0, s.TotalIncome)
}

func TestSummarize_Empty(t *testing.T) {
	s := report.Summarize(nil, "2024-06-01")
	assert.Equal(t, report.Summary{}, s)
}

func TestConsolidate(t *testing.T) {
	txs := []transaction.Transaction{
		income("2024-02-25", 150, transaction.StatusPaid),
		income("2024-02-10", 5000, transaction.StatusPending),
		expense("2024-02-10", 45.90),
		expense("2024-01-15", 800),
	}

	rows, total := report.Consolidate(txs)

	feb := rows[1]
	assert.Equal(t, "fevereiro", feb.Label)
	assert.Equal(t, 150.0, feb.IncomePaid)
	assert.Equal(t, 5000.0, feb.IncomePending)
	assert.Equal(t, 45.90, feb.Expense)
	assert.Equal(t, 150.0+5000.0-45.90, feb.Balance)

	jan := rows[0]
	assert.Equal(t, 800.0, jan.Expense)
	assert.Equal(t, -800.0, jan.Balance)

	assert.Equal(t, 150.0, total.IncomePaid)
	assert.Equal(t, 5000.0, total.IncomePending)
	assert.Equal(t, 845.90, total.Expense)
	assert.Equal(t, feb.Balance+jan.Balance, total.Balance)
}

func TestSeasonality_IgnoresYearSumsAcrossYears(t *testing.T) {
	txs := []transaction.Transaction{
		income("2023-02-10", 1000, transaction.StatusPaid),
		income("2024-02-10", 2000, transaction.StatusPaid),
		income("2024-02-15", 500, transaction.StatusPending), // pending ignored
		income("2024-08-10", 700, transaction.StatusPaid),    // outside semester 1
	}

	got := report.Seasonality(txs, dateutil.PeriodSemester1)
	require.Len(t, got, 6)
	assert.Equal(t, 0, got[0].Month)
	assert.Equal(t, 3000.0, got[1].Income, "february sums both years, paid only")
}

func TestSeasonality_PeriodWindow(t *testing.T) {
	txs := []transaction.Transaction{
		income("2022-10-01", 400, transaction.StatusPaid),
	}

	got := report.Seasonality(txs, dateutil.PeriodQuarter4)
	require.Len(t, got, 3)
	assert.Equal(t, 9, got[0].Month)
	assert.Equal(t, 400.0, got[0].Income)
	assert.Equal(t, "outubro", got[0].Label)
}

func TestFunnelOf(t *testing.T) {
	cs := []casting.Casting{
		{Status: casting.StatusApproved, IsEdited: true},
		{Status: casting.StatusInProgress, IsEdited: true},
		{Status: casting.StatusNotApproved},
		{Status: casting.StatusApproved},
	}

	f := report.FunnelOf(cs)
	assert.Equal(t, 4, f.Total)
	assert.Equal(t, 2, f.Edited)
	assert.Equal(t, 2, f.Approved)
	assert.Equal(t, 1, f.NotApproved)
	assert.Equal(t, 50.0, f.ApprovalRate)
}

func TestFunnelOf_EmptyIsZeroNotNaN(t *testing.T) {
	f := report.FunnelOf(nil)
	assert.Equal(t, 0.0, f.ApprovalRate)
	assert.Equal(t, 0, f.Total)
}

func TestTopPartners(t *testing.T) {
	cs := []casting.Casting{
		{Agency: "Elenco Top", Status: casting.StatusApproved, FeeJob: 12000},
		{Agency: "Elenco Top", Status: casting.StatusNotApproved, FeeJob: 4000},
		{Agency: "Agência Models", Status: casting.StatusApproved, FeeJob: 5000},
		{Agency: "Public Casting", Status: casting.StatusNotApproved, FeeJob: 8000},
		{Agency: ""},
	}

	got := report.TopPartners(cs, 2)
	require.Len(t, got, 2)

	assert.Equal(t, "Elenco Top", got[0].Name)
	assert.Equal(t, 12000.0, got[0].TotalValue, "only approved fees count toward value")
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, 50.0, got[0].ApprovalRate)

	assert.Equal(t, "Agência Models", got[1].Name)
	assert.Equal(t, 100.0, got[1].ApprovalRate)
}
