// Package tracker is the mutation service. It owns the in-memory casting
// and transaction collections, applies user actions against them, fires
// the financial derivation on approval edges and persists the full
// collections to the blob store after every successful mutation.
package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/mcastelo/palco/internal/blob"
	"github.com/mcastelo/palco/internal/casting"
	"github.com/mcastelo/palco/internal/dateutil"
	"github.com/mcastelo/palco/internal/derivation"
	"github.com/mcastelo/palco/internal/transaction"
)

type Service struct {
	store blob.Store
	newID func() string

	castings     []casting.Casting
	transactions []transaction.Transaction
}

// Option configures a Service.
type Option func(*Service)

// WithIDFunc overrides the id generator. Used by tests to keep ids
// deterministic.
func WithIDFunc(f func() string) Option {
	return func(s *Service) { s.newID = f }
}

func NewService(store blob.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		newID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load reads both collections from the blob store. Absent or corrupt
// blobs degrade to empty collections, never to an error. When both
// collections come back empty the demo dataset is seeded and persisted.
func (s *Service) Load(ctx context.Context) error {
	s.castings = loadCollection[casting.Casting](ctx, s.store, blob.KeyCastings)
	s.transactions = loadCollection[transaction.Transaction](ctx, s.store, blob.KeyTransactions)

	if _, err := s.SeedIfEmpty(ctx); err != nil {
		return err
	}

	return nil
}

// loadCollection decodes one stored collection, treating missing or
// corrupt data as empty.
func loadCollection[T any](ctx context.Context, store blob.Store, key string) []T {
	data, err := store.Load(ctx, key)
	if err != nil || len(data) == 0 {
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	return items
}

// Castings returns a copy of the casting collection, most recent first.
func (s *Service) Castings() []casting.Casting {
	out := make([]casting.Casting, len(s.castings))
	copy(out, s.castings)

	return out
}

// Transactions returns a copy of the transaction collection, most recent
// first.
func (s *Service) Transactions() []transaction.Transaction {
	out := make([]transaction.Transaction, len(s.transactions))
	copy(out, s.transactions)

	return out
}

// CastingByID looks a casting up by id.
func (s *Service) CastingByID(id string) (casting.Casting, error) {
	for _, c := range s.castings {
		if c.ID == id {
			return c, nil
		}
	}

	return casting.Casting{}, casting.ErrNotFound
}

// SaveCasting validates and upserts a casting. prev is the stored version
// being edited, or nil on create; the approval-edge detection needs it
// because no "already derived" flag is stored on the entity. Returns the
// saved casting and the number of transactions the derivation created.
//
// On validation failure nothing is mutated or persisted.
func (s *Service) SaveCasting(ctx context.Context, prev *casting.Casting, next casting.Casting) (casting.Casting, int, error) {
	if err := next.Validate(); err != nil {
		return casting.Casting{}, 0, err
	}

	if next.ID == "" {
		next.ID = s.newID()
	}

	var prevStatus *casting.Status
	if prev != nil {
		prevStatus = &prev.Status
	}

	if prev != nil {
		replaced := false

		for i := range s.castings {
			if s.castings[i].ID == next.ID {
				s.castings[i] = next
				replaced = true

				break
			}
		}

		if !replaced {
			return casting.Casting{}, 0, casting.ErrNotFound
		}
	} else {
		s.castings = append([]casting.Casting{next}, s.castings...)
	}

	created := 0

	if derivation.Fired(prevStatus, next.Status) {
		derived := derivation.Derive(next, s.newID)
		s.transactions = append(derived, s.transactions...)
		created = len(derived)

		if err := s.persistTransactions(ctx); err != nil {
			return casting.Casting{}, 0, err
		}
	}

	if err := s.persistCastings(ctx); err != nil {
		return casting.Casting{}, 0, err
	}

	return next, created, nil
}

// ExpenseParams carries the expense form fields.
type ExpenseParams struct {
	Date        string
	Description string
	Amount      float64
	Category    string
	Partner     string
	IsRecurrent bool
	Notes       string
}

var ErrInvalidDate = fmt.Errorf("invalid date, expected YYYY-MM-DD")

// AddExpense records a manually entered expense. Expenses are created
// already paid. Negative amounts are folded to their absolute value, in
// line with the lenient-input policy.
func (s *Service) AddExpense(ctx context.Context, p ExpenseParams) (transaction.Transaction, error) {
	if !dateutil.Valid(p.Date) {
		return transaction.Transaction{}, ErrInvalidDate
	}

	partner := p.Partner
	if partner == "" {
		partner = "Outros"
	}

	tx := transaction.Transaction{
		ID:          s.newID(),
		Date:        p.Date,
		Description: p.Description,
		Amount:      math.Abs(p.Amount),
		Type:        transaction.TypeExpense,
		Category:    p.Category,
		Partner:     partner,
		Status:      transaction.StatusPaid,
		IsRecurrent: p.IsRecurrent,
		Notes:       p.Notes,
	}

	s.transactions = append([]transaction.Transaction{tx}, s.transactions...)

	if err := s.persistTransactions(ctx); err != nil {
		return transaction.Transaction{}, err
	}

	return tx, nil
}

// MarkPaid flips a pending transaction to paid. The only mutation a
// transaction supports after creation.
func (s *Service) MarkPaid(ctx context.Context, id string) error {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions[i].Status = transaction.StatusPaid
			return s.persistTransactions(ctx)
		}
	}

	return transaction.ErrNotFound
}

// ImportTransactions prepends externally parsed transactions (CSV import)
// to the ledger, assigning ids to entries that lack one.
func (s *Service) ImportTransactions(ctx context.Context, txs []transaction.Transaction) (int, error) {
	if len(txs) == 0 {
		return 0, nil
	}

	for i := range txs {
		if txs[i].ID == "" {
			txs[i].ID = s.newID()
		}
	}

	s.transactions = append(txs, s.transactions...)

	if err := s.persistTransactions(ctx); err != nil {
		return 0, err
	}

	return len(txs), nil
}

func (s *Service) persistCastings(ctx context.Context) error {
	data, err := json.Marshal(s.castings)
	if err != nil {
		return fmt.Errorf("encoding castings: %w", err)
	}

	if err := s.store.Save(ctx, blob.KeyCastings, data); err != nil {
		return fmt.Errorf("persisting castings: %w", err)
	}

	return nil
}

func (s *Service) persistTransactions(ctx context.Context) error {
	data, err := json.Marshal(s.transactions)
	if err != nil {
		return fmt.Errorf("encoding transactions: %w", err)
	}

	if err := s.store.Save(ctx, blob.KeyTransactions, data); err != nil {
		return fmt.Errorf("persisting transactions: %w", err)
	}

	return nil
}
