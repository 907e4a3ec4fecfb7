package tracker

import (
	"context"

	"github.com/mcastelo/palco/internal/casting"
	"github.com/mcastelo/palco/internal/transaction"
)

// SeedIfEmpty installs the demo dataset on first-ever load and persists
// it. Seeding is skipped when EITHER collection is already non-empty.
// Returns whether seeding happened.
func (s *Service) SeedIfEmpty(ctx context.Context) (bool, error) {
	if len(s.castings) > 0 || len(s.transactions) > 0 {
		return false, nil
	}

	s.castings = demoCastings()
	s.transactions = demoTransactions()

	if err := s.persistCastings(ctx); err != nil {
		return false, err
	}

	if err := s.persistTransactions(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func demoCastings() []casting.Casting {
	return []casting.Casting{
		{
			ID:           "c1",
			Client:       "Comercial Banco X",
			Agency:       "Agência Models",
			Booker:       "Ana",
			Exclusivity:  "Bancos - 6 meses",
			UsagePeriod:  "6 meses TV Aberta",
			FeeJob:       5000,
			FeeTest:      150,
			HasTestFee:   true,
			DateCasting:  "2024-02-10",
			DateTest:     "2024-02-10",
			DateShooting: []string{"2024-02-20", "2024-02-21"},
			Status:       casting.StatusApproved,
			IsEdited:     true,
		},
		{
			ID:           "c2",
			Client:       "Série Streaming",
			Agency:       "Elenco Top",
			Booker:       "Carlos",
			Exclusivity:  "Não",
			UsagePeriod:  "Obra completa",
			FeeJob:       12000,
			HasTestFee:   false,
			DateCasting:  "2024-03-01",
			DateTest:     "2024-03-02",
			DateCallback: "2024-03-05",
			DateShooting: []string{"2024-04-10"},
			Status:       casting.StatusInProgress,
			IsEdited:     true,
		},
		{
			ID:           "c3",
			Client:       "Campanha Cerveja",
			Agency:       "Public Casting",
			Booker:       "Mariana",
			Exclusivity:  "Bebidas alcoólicas - 1 ano",
			UsagePeriod:  "1 ano Digital",
			FeeJob:       8000,
			HasTestFee:   true,
			DateCasting:  "2024-03-15",
			DateTest:     "2024-03-16",
			DateShooting: []string{"2024-03-25"},
			Status:       casting.StatusNotApproved,
			IsEdited:     false,
		},
	}
}

func demoTransactions() []transaction.Transaction {
	return []transaction.Transaction{
		{
			ID:              "t1",
			Date:            "2024-03-22",
			Description:     "Cachê Job: Banco X",
			Amount:          5000,
			Type:            transaction.TypeIncome,
			Category:        "Cachê Publicidade",
			Partner:         "Agência Models",
			Status:          transaction.StatusPending,
			OriginCastingID: "c1",
		},
		{
			ID:              "t2",
			Date:            "2024-02-25",
			Description:     "Cachê Teste: Banco X",
			Amount:          150,
			Type:            transaction.TypeIncome,
			Category:        "Cachê Teste",
			Partner:         "Agência Models",
			Status:          transaction.StatusPaid,
			OriginCastingID: "c1",
		},
		{
			ID:          "t3",
			Date:        "2024-02-10",
			Description: "Uber para Teste Banco X",
			Amount:      45.90,
			Type:        transaction.TypeExpense,
			Category:    "Transporte",
			Partner:     "Uber",
			Status:      transaction.StatusPaid,
		},
		{
			ID:          "t4",
			Date:        "2024-01-15",
			Description: "Atualização de Book",
			Amount:      800,
			Type:        transaction.TypeExpense,
			Category:    "Material de Trabalho",
			Partner:     "Fotógrafo João",
			Status:      transaction.StatusPaid,
		},
	}
}
