// Package report implements the period filtering and aggregation behind
// every read view: dashboard stats, financial ledger, consolidated monthly
// table, seasonality series and the casting funnel. All functions are pure
// over the collections they are handed.
package report

import (
	"sort"

	"github.com/mcastelo/palco/internal/casting"
	"github.com/mcastelo/palco/internal/dateutil"
	"github.com/mcastelo/palco/internal/transaction"
)

// AllYears selects every year; any other value is an exact-match filter.
const AllYears = 0

// Selection narrows the collections to a year and a sub-period.
type Selection struct {
	Year   int
	Period dateutil.Period
}

func (s Selection) matches(dateStr string) bool {
	if s.Year != AllYears && dateutil.Year(dateStr) != s.Year {
		return false
	}

	return s.Period.Contains(dateutil.MonthIndex(dateStr))
}

// FilterTransactions returns the transactions inside the selection,
// sorted by date descending.
func FilterTransactions(txs []transaction.Transaction, sel Selection) []transaction.Transaction {
	out := make([]transaction.Transaction, 0, len(txs))

	for _, t := range txs {
		if sel.matches(t.Date) {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })

	return out
}

// FilterCastings returns the castings whose casting date falls inside the
// selection, sorted by casting date descending.
func FilterCastings(cs []casting.Casting, sel Selection) []casting.Casting {
	out := make([]casting.Casting, 0, len(cs))

	for _, c := range cs {
		if sel.matches(c.DateCasting) {
			out = append(out, c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].DateCasting > out[j].DateCasting })

	return out
}

// Summary aggregates the filtered ledger. Paid and pending income never
// overlap: TotalIncome counts paid income only, PendingIncome counts
// pending income only, and OverdueIncome is the pending slice already past
// its due date.
type Summary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpense  float64 `json:"totalExpense"`
	Balance       float64 `json:"balance"`
	PendingIncome float64 `json:"pendingIncome"`
	OverdueIncome float64 `json:"overdueIncome"`
}

// Summarize computes the summary statistics over an already-filtered
// transaction set. today is a YYYY-MM-DD string used for the overdue cut.
func Summarize(txs []transaction.Transaction, today string) Summary {
	var s Summary

	for _, t := range txs {
		switch t.Type {
		case transaction.TypeIncome:
			switch t.Status {
			case transaction.StatusPaid:
				s.TotalIncome += t.Amount
			case transaction.StatusPending:
				s.PendingIncome += t.Amount
				if t.Date < today {
					s.OverdueIncome += t.Amount
				}
			}
		case transaction.TypeExpense:
			if t.Status == transaction.StatusPaid {
				s.TotalExpense += t.Amount
			}
		}
	}

	s.Balance = s.TotalIncome - s.TotalExpense

	return s
}

var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthName returns the pt-BR name for a 0-based month index.
func MonthName(month int) string {
	if month < 0 || month > 11 {
		return ""
	}

	return monthNames[month]
}

// MonthRow is one line of the consolidated monthly table. Balance counts
// pending income as if received: (paid + pending income) - expense.
type MonthRow struct {
	Month         int     `json:"month"`
	Label         string  `json:"label"`
	IncomePaid    float64 `json:"incomePaid"`
	IncomePending float64 `json:"incomePending"`
	Expense       float64 `json:"expense"`
	Balance       float64 `json:"balance"`
}

// Consolidate buckets an already-filtered transaction set into the 12
// calendar months plus a grand-total row.
func Consolidate(txs []transaction.Transaction) (rows [12]MonthRow, total MonthRow) {
	for i := range rows {
		rows[i].Month = i
		rows[i].Label = monthNames[i]
	}

	for _, t := range txs {
		row := &rows[dateutil.MonthIndex(t.Date)]

		switch {
		case t.Type == transaction.TypeIncome && t.Status == transaction.StatusPaid:
			row.IncomePaid += t.Amount
		case t.Type == transaction.TypeIncome && t.Status == transaction.StatusPending:
			row.IncomePending += t.Amount
		case t.Type == transaction.TypeExpense:
			row.Expense += t.Amount
		}
	}

	total.Month = -1
	total.Label = "total"

	for i := range rows {
		rows[i].Balance = rows[i].IncomePaid + rows[i].IncomePending - rows[i].Expense

		total.IncomePaid += rows[i].IncomePaid
		total.IncomePending += rows[i].IncomePending
		total.Expense += rows[i].Expense
		total.Balance += rows[i].Balance
	}

	return rows, total
}

// SeasonEntry is one month of the seasonality series.
type SeasonEntry struct {
	Month  int     `json:"month"`
	Label  string  `json:"label"`
	Income float64 `json:"income"`
}

// Seasonality sums paid income per calendar month across ALL years,
// restricted to the months the period covers. The year filter is ignored
// on purpose: the series answers which months historically perform best
// regardless of year.
func Seasonality(txs []transaction.Transaction, period dateutil.Period) []SeasonEntry {
	start, end := period.MonthRange()

	entries := make([]SeasonEntry, 0, end-start+1)
	for m := start; m <= end; m++ {
		entries = append(entries, SeasonEntry{Month: m, Label: monthNames[m]})
	}

	for _, t := range txs {
		if t.Type != transaction.TypeIncome || t.Status != transaction.StatusPaid {
			continue
		}

		m := dateutil.MonthIndex(t.Date)
		if m < start || m > end {
			continue
		}

		entries[m-start].Income += t.Amount
	}

	return entries
}

// Funnel holds the casting conversion counts.
type Funnel struct {
	Total        int     `json:"total"`
	Edited       int     `json:"edited"`
	Approved     int     `json:"approved"`
	NotApproved  int     `json:"notApproved"`
	ApprovalRate float64 `json:"approvalRate"`
}

// FunnelOf counts castings per lifecycle stage. The approval rate is 0 for
// an empty set, never NaN.
func FunnelOf(cs []casting.Casting) Funnel {
	f := Funnel{Total: len(cs)}

	for _, c := range cs {
		if c.IsEdited {
			f.Edited++
		}

		switch c.Status {
		case casting.StatusApproved:
			f.Approved++
		case casting.StatusNotApproved:
			f.NotApproved++
		}
	}

	if f.Total > 0 {
		f.ApprovalRate = float64(f.Approved) / float64(f.Total) * 100
	}

	return f
}

// PartnerStat aggregates castings per agency.
type PartnerStat struct {
	Name         string  `json:"name"`
	TotalValue   float64 `json:"totalValue"`
	Count        int     `json:"count"`
	ApprovalRate float64 `json:"approvalRate"`
}

// TopPartners ranks agencies by the approved job value they brought in,
// limited to n entries. Ties break by casting count, then name.
func TopPartners(cs []casting.Casting, n int) []PartnerStat {
	byName := make(map[string]*PartnerStat)
	approved := make(map[string]int)

	for _, c := range cs {
		if c.Agency == "" {
			continue
		}

		p, ok := byName[c.Agency]
		if !ok {
			p = &PartnerStat{Name: c.Agency}
			byName[c.Agency] = p
		}

		p.Count++

		if c.Status == casting.StatusApproved {
			approved[c.Agency]++
			p.TotalValue += c.FeeJob
		}
	}

	stats := make([]PartnerStat, 0, len(byName))

	for name, p := range byName {
		p.ApprovalRate = float64(approved[name]) / float64(p.Count) * 100
		stats = append(stats, *p)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalValue != stats[j].TotalValue {
			return stats[i].TotalValue > stats[j].TotalValue
		}

		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}

		return stats[i].Name < stats[j].Name
	})

	if n > 0 && len(stats) > n {
		stats = stats[:n]
	}

	return stats
}
