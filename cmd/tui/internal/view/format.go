package view

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const saveTimeout = 5 * time.Second

// FormatAmount renders an amount in pt-BR currency style: dot-grouped
// thousands and a decimal comma ("R$ 5.000,00").
func FormatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, decPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}

		grouped.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}

	return fmt.Sprintf("%sR$ %s,%s", sign, grouped.String(), decPart)
}

// FormatPercent renders a 0-100 rate with one decimal.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// SaveCtx returns a context with a standard timeout for persistence
// operations.
func SaveCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), saveTimeout)
}
