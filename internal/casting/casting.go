package casting

import (
	"errors"
	"regexp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mcastelo/palco/internal/dateutil"
)

// Status represents where a casting sits in its lifecycle. Transitions are
// unrestricted; the transition into StatusApproved is what triggers the
// financial derivation.
type Status string

const (
	StatusInProgress  Status = "in_progress"
	StatusApproved    Status = "approved"
	StatusNotApproved Status = "not_approved"
)

var (
	ErrClientRequired      = errors.New("client is required")
	ErrAgencyRequired      = errors.New("agency is required")
	ErrDateCastingRequired = errors.New("casting date is required")
	ErrNoShootingDates     = errors.New("at least one shooting date is required")
	ErrNotFound            = errors.New("casting not found")
)

// Casting represents one audition/booking opportunity. All dates are
// YYYY-MM-DD strings.
type Casting struct {
	ID string

	Client            string
	ProductionCompany string
	Agency            string
	Booker            string
	Exclusivity       string
	UsagePeriod       string
	Notes             string

	FeeJob          float64
	DateJobPayment  string
	HasTestFee      bool
	FeeTest         float64
	DateTestPayment string

	DateCasting  string
	DateTest     string
	DateCallback string
	DatePPM      string
	DateFitting  string
	DateShooting []string

	Status   Status
	IsEdited bool
}

// Validate checks the save-time invariants. It does not mutate the casting.
func (c *Casting) Validate() error {
	if strings.TrimSpace(c.Client) == "" {
		return ErrClientRequired
	}

	if strings.TrimSpace(c.Agency) == "" {
		return ErrAgencyRequired
	}

	if c.DateCasting == "" {
		return ErrDateCastingRequired
	}

	if len(c.DateShooting) == 0 {
		return ErrNoShootingDates
	}

	return nil
}

// AddShootingDate appends a shooting date, silently rejecting duplicates
// and empty input. Returns true when the date was added.
func (c *Casting) AddShootingDate(date string) bool {
	if date == "" || slices.Contains(c.DateShooting, date) {
		return false
	}

	c.DateShooting = append(c.DateShooting, date)

	return true
}

// RemoveShootingDate drops a shooting date if present.
func (c *Casting) RemoveShootingDate(date string) {
	c.DateShooting = slices.DeleteFunc(c.DateShooting, func(d string) bool {
		return d == date
	})
}

// LastShootingDate returns the latest shooting date. YYYY-MM-DD strings
// sort lexicographically in date order, so the maximum element is the
// latest day.
func (c *Casting) LastShootingDate() string {
	if len(c.DateShooting) == 0 {
		return ""
	}

	return slices.Max(c.DateShooting)
}

const (
	jobPaymentDays  = 30
	testPaymentDays = 15
)

// PredictJobPayment computes the default job payment date: last shooting
// day plus 30 days, falling back to the casting date when no shooting date
// exists yet. Recomputed whenever the shooting dates change so the form
// always shows a sane default the user may override.
func (c *Casting) PredictJobPayment() string {
	base := c.LastShootingDate()
	if base == "" {
		base = c.DateCasting
	}

	return dateutil.AddDays(base, jobPaymentDays)
}

// PredictTestPayment computes the default test-fee payment date: test date
// plus 15 days, falling back to the casting date when no test date is set.
func (c *Casting) PredictTestPayment() string {
	base := c.DateTest
	if base == "" {
		base = c.DateCasting
	}

	return dateutil.AddDays(base, testPaymentDays)
}

var feeCleaner = regexp.MustCompile(`[^0-9.,]`)

// ParseFee coerces free-form currency input ("R$ 1.500,00", "1500.50") to
// a non-negative amount. Characters outside digits, dot and comma are
// stripped and a decimal comma is normalized to a dot. Unparseable input
// coerces to zero rather than failing the save; the form always has a
// valid numeric value to submit.
func ParseFee(input string) float64 {
	clean := feeCleaner.ReplaceAllString(input, "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0
	}

	f, _ := d.Float64()
	if f < 0 {
		return 0
	}

	return f
}
