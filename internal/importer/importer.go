// Package importer parses uploaded transaction CSVs. The format is a
// plain comma split rather than a full CSV dialect: exports from the
// spreadsheets this tool replaces never quote fields.
package importer

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mcastelo/palco/internal/encoding"
	"github.com/mcastelo/palco/internal/transaction"
)

const (
	defaultCategory = "Geral"
	defaultPartner  = "Desconhecido"
)

// Parse reads comma-delimited lines into transactions. Columns, by
// position: date, description, amount, direction, category, partner,
// status. A header line is skipped when the first line mentions
// "date" or "data". Lines with fewer than 5 columns or a non-numeric
// amount are dropped silently.
//
// Ids are left empty; the mutation service assigns them on import.
func Parse(r io.Reader) ([]transaction.Transaction, error) {
	decoded, err := encoding.DecodeReader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding upload: %w", err)
	}

	var (
		txs   []transaction.Transaction
		first = true
	)

	scanner := bufio.NewScanner(decoded)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if first {
			first = false

			lower := strings.ToLower(line)
			if strings.Contains(lower, "date") || strings.Contains(lower, "data") {
				continue
			}
		}

		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 5 {
			continue
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			continue
		}

		txs = append(txs, transaction.Transaction{
			Date:        strings.TrimSpace(parts[0]),
			Description: strings.TrimSpace(parts[1]),
			Amount:      math.Abs(amount),
			Type:        parseType(parts[3]),
			Category:    fieldOr(parts, 4, defaultCategory),
			Partner:     fieldOr(parts, 5, defaultPartner),
			Status:      parseStatus(parts, 6),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	return txs, nil
}

func parseType(s string) transaction.Type {
	if strings.Contains(strings.ToLower(strings.TrimSpace(s)), "saída") {
		return transaction.TypeExpense
	}

	return transaction.TypeIncome
}

func parseStatus(parts []string, idx int) transaction.Status {
	if idx < len(parts) && strings.Contains(strings.ToLower(strings.TrimSpace(parts[idx])), "pendente") {
		return transaction.StatusPending
	}

	return transaction.StatusPaid
}

func fieldOr(parts []string, idx int, fallback string) string {
	if idx < len(parts) {
		if v := strings.TrimSpace(parts[idx]); v != "" {
			return v
		}
	}

	return fallback
}
