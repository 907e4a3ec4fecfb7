package casting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcastelo/palco/internal/casting"
)

func validCasting() casting.Casting {
	return casting.Casting{
		ID:           "c1",
		Client:       "Série Streaming",
		Agency:       "Elenco Top",
		DateCasting:  "2024-03-01",
		DateShooting: []string{"2024-04-10"},
		Status:       casting.StatusInProgress,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*casting.Casting)
		wantErr error
	}{
		{name: "Valid", mutate: func(c *casting.Casting) {}, wantErr: nil},
		{
			name:    "MissingClient",
			mutate:  func(c *casting.Casting) { c.Client = "  " },
			wantErr: casting.ErrClientRequired,
		},
		{
			name:    "MissingAgency",
			mutate:  func(c *casting.Casting) { c.Agency = "" },
			wantErr: casting.ErrAgencyRequired,
		},
		{
			name:    "MissingCastingDate",
			mutate:  func(c *casting.Casting) { c.DateCasting = "" },
			wantErr: casting.ErrDateCastingRequired,
		},
		{
			name:    "NoShootingDates",
			mutate:  func(c *casting.Casting) { c.DateShooting = nil },
			wantErr: casting.ErrNoShootingDates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCasting()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddShootingDate(t *testing.T) {
	c := validCasting()

	assert.True(t, c.AddShootingDate("2024-04-11"))
	assert.False(t, c.AddShootingDate("2024-04-11"), "duplicates silently rejected")
	assert.False(t, c.AddShootingDate(""))
	assert.Equal(t, []string{"2024-04-10", "2024-04-11"}, c.DateShooting)

	c.RemoveShootingDate("2024-04-10")
	assert.Equal(t, []string{"2024-04-11"}, c.DateShooting)
}

func TestLastShootingDate(t *testing.T) {
	c := validCasting()
	c.DateShooting = []string{"2024-02-21", "2024-02-20"}

	assert.Equal(t, "2024-02-21", c.LastShootingDate(), "lexicographic max is the latest day")

	c.DateShooting = nil
	assert.Equal(t, "", c.LastShootingDate())
}

func TestPredictJobPayment(t *testing.T) {
	c := validCasting()
	c.DateShooting = []string{"2024-02-20", "2024-02-21"}

	assert.Equal(t, "2024-03-22", c.PredictJobPayment())

	c.DateShooting = nil
	c.DateCasting = "2024-02-10"
	assert.Equal(t, "2024-03-11", c.PredictJobPayment(), "falls back to casting date")
}

func TestPredictTestPayment(t *testing.T) {
	c := validCasting()
	c.DateTest = "2024-03-02"

	assert.Equal(t, "2024-03-17", c.PredictTestPayment())

	c.DateTest = ""
	c.DateCasting = "2024-03-01"
	assert.Equal(t, "2024-03-16", c.PredictTestPayment(), "falls back to casting date")
}

func TestParseFee(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "Plain", input: "5000", want: 5000},
		{name: "DecimalComma", input: "1500,50", want: 1500.5},
		{name: "DecimalDot", input: "1500.50", want: 1500.5},
		{name: "CurrencyPrefix", input: "R$ 250", want: 250},
		{name: "Spaces", input: " 45,90 ", want: 45.9},
		{name: "Garbage", input: "abc", want: 0},
		{name: "Empty", input: "", want: 0},
		{name: "OnlySymbols", input: "R$ ", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, casting.ParseFee(tt.input))
		})
	}
}
