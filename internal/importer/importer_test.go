package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcastelo/palco/internal/importer"
	"github.com/mcastelo/palco/internal/transaction"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		wantLen int
		verify  func(t *testing.T, txs []transaction.Transaction)
	}

	tests := []testCase{
		{
			name: "full rows with header",
			input: "data,descrição,valor,tipo,categoria,parceiro,status\n" +
				"2024-02-10,Cachê Teste,150,entrada,Cachê Teste,Agência Models,pago\n" +
				"2024-02-12,Uber,-45.90,saída,Transporte,Outros,pago\n",
			wantLen: 2,
			verify: func(t *testing.T, txs []transaction.Transaction) {
				assert.Equal(t, "2024-02-10", txs[0].Date)
				assert.Equal(t, transaction.TypeIncome, txs[0].Type)
				assert.Equal(t, transaction.StatusPaid, txs[0].Status)

				assert.Equal(t, transaction.TypeExpense, txs[1].Type)
				assert.Equal(t, 45.90, txs[1].Amount, "amounts stored absolute")
			},
		},
		{
			name:    "no header",
			input:   "2024-03-22,Cachê Job: Banco X,5000,entrada,Cachê Publicidade,Agência Models,pendente\n",
			wantLen: 1,
			verify: func(t *testing.T, txs []transaction.Transaction) {
				assert.Equal(t, transaction.StatusPending, txs[0].Status)
			},
		},
		{
			name: "short and malformed rows skipped",
			input: "data,descrição,valor\n" +
				"2024-02-10,Cachê,150\n" +
				"2024-02-11,Almoço,abc,saída,Alimentação\n" +
				"2024-02-12,Almoço,30,saída,Alimentação\n",
			wantLen: 1,
			verify: func(t *testing.T, txs []transaction.Transaction) {
				assert.Equal(t, "Almoço", txs[0].Description)
			},
		},
		{
			name:    "missing trailing columns get defaults",
			input:   "2024-04-01,Figurino,200,saída,\n",
			wantLen: 1,
			verify: func(t *testing.T, txs []transaction.Transaction) {
				assert.Equal(t, "Geral", txs[0].Category)
				assert.Equal(t, "Desconhecido", txs[0].Partner)
				assert.Equal(t, transaction.StatusPaid, txs[0].Status)
			},
		},
		{
			name:    "blank lines ignored",
			input:   "\n\n2024-05-01,Cachê,100,entrada,Geral\n\n",
			wantLen: 1,
		},
		{
			name:    "empty input",
			input:   "",
			wantLen: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			txs, err := importer.Parse(strings.NewReader(tc.input))
			require.NoError(t, err)
			require.Len(t, txs, tc.wantLen)

			if tc.verify != nil {
				tc.verify(t, txs)
			}
		})
	}
}

func TestParse_Latin1Upload(t *testing.T) {
	// "saída" with í encoded as Windows-1252 0xED.
	line := []byte("2024-02-12,Uber,45.90,sa\xedda,Transporte\n")

	txs, err := importer.Parse(strings.NewReader(string(line)))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)
}
