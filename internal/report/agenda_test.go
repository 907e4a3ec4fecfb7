package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcastelo/palco/internal/casting"
	"github.com/mcastelo/palco/internal/dateutil"
	"github.com/mcastelo/palco/internal/report"
)

func TestAgenda(t *testing.T) {
	cs := []casting.Casting{
		{
			ID:             "c1",
			Client:         "Banco X",
			Status:         casting.StatusApproved,
			FeeJob:         5000,
			DateFitting:    "2024-02-18",
			DatePPM:        "2024-02-19",
			DateShooting:   []string{"2024-02-20", "2024-02-21"},
			DateJobPayment: "2024-03-22",
		},
		{
			ID:              "c2",
			Client:          "Série",
			Status:          casting.StatusInProgress,
			HasTestFee:      true,
			FeeTest:         150,
			DateTestPayment: "2024-02-25",
			DateJobPayment:  "2024-04-01",
		},
		{
			ID:             "c3",
			Client:         "Cerveja",
			Status:         casting.StatusNotApproved,
			DateJobPayment: "2024-05-01",
		},
	}

	events := report.Agenda(cs)

	// c1: fitting, ppm, two shootings, job payment. c2: test payment
	// only, its job payment is not plausible while in progress. c3
	// contributes nothing.
	require.Len(t, events, 6)

	assert.Equal(t, "2024-02-18", events[0].Date)
	assert.Equal(t, report.EventFitting, events[0].Kind)
	assert.Equal(t, "Prova: Banco X", events[0].Title)

	assert.Equal(t, report.EventPaymentTest, events[4].Kind)
	assert.Equal(t, 150.0, events[4].Amount)

	last := events[len(events)-1]
	assert.Equal(t, report.EventPaymentJob, last.Kind)
	assert.Equal(t, 5000.0, last.Amount)
}

func TestAgenda_EditedCastingExposesJobPayment(t *testing.T) {
	cs := []casting.Casting{{
		ID:             "c1",
		Client:         "Banco X",
		Status:         casting.StatusInProgress,
		IsEdited:       true,
		FeeJob:         5000,
		DateJobPayment: "2024-03-22",
	}}

	events := report.Agenda(cs)
	require.Len(t, events, 1)
	assert.Equal(t, report.EventPaymentJob, events[0].Kind)
}

func TestFilterEvents(t *testing.T) {
	events := []report.Event{
		{Date: "2023-03-10", Kind: report.EventShooting},
		{Date: "2024-03-10", Kind: report.EventShooting},
		{Date: "2024-08-10", Kind: report.EventShooting},
	}

	got := report.FilterEvents(events, report.Selection{Year: 2024, Period: dateutil.PeriodSemester1})

	require.Len(t, got, 1)
	assert.Equal(t, "2024-03-10", got[0].Date)
}
