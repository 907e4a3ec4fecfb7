package report

import (
	"sort"

	"github.com/mcastelo/palco/internal/casting"
)

type EventKind string

const (
	EventFitting     EventKind = "fitting"
	EventPPM         EventKind = "ppm"
	EventShooting    EventKind = "shooting"
	EventPaymentJob  EventKind = "payment_job"
	EventPaymentTest EventKind = "payment_test"
)

// Event is one calendar entry extracted from a casting.
type Event struct {
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Kind      EventKind `json:"kind"`
	CastingID string    `json:"castingId"`
	Amount    float64   `json:"amount,omitempty"`
}

// Agenda extracts calendar events from the castings, sorted by date.
// Payment events only appear once the money is plausible: the job payment
// for approved or shortlisted castings, the test payment additionally for
// castings still in progress.
func Agenda(cs []casting.Casting) []Event {
	var events []Event

	for _, c := range cs {
		if c.DateFitting != "" {
			events = append(events, Event{
				Date: c.DateFitting, Title: "Prova: " + c.Client,
				Kind: EventFitting, CastingID: c.ID,
			})
		}

		if c.DatePPM != "" {
			events = append(events, Event{
				Date: c.DatePPM, Title: "PPM: " + c.Client,
				Kind: EventPPM, CastingID: c.ID,
			})
		}

		for _, d := range c.DateShooting {
			events = append(events, Event{
				Date: d, Title: "Gravação: " + c.Client,
				Kind: EventShooting, CastingID: c.ID,
			})
		}

		if c.DateJobPayment != "" && (c.Status == casting.StatusApproved || c.IsEdited) {
			events = append(events, Event{
				Date: c.DateJobPayment, Title: "$: " + c.Client,
				Kind: EventPaymentJob, CastingID: c.ID, Amount: c.FeeJob,
			})
		}

		if c.DateTestPayment != "" && c.HasTestFee &&
			(c.Status == casting.StatusApproved || c.IsEdited || c.Status == casting.StatusInProgress) {
			events = append(events, Event{
				Date: c.DateTestPayment, Title: "$ Teste: " + c.Client,
				Kind: EventPaymentTest, CastingID: c.ID, Amount: c.FeeTest,
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Date < events[j].Date })

	return events
}

// FilterEvents narrows an agenda to the selection window.
func FilterEvents(events []Event, sel Selection) []Event {
	out := make([]Event, 0, len(events))

	for _, e := range events {
		if sel.matches(e.Date) {
			out = append(out, e)
		}
	}

	return out
}
