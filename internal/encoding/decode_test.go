package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcastelo/palco/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.DecodeReader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestDecodeReader_UTF8Passthrough(t *testing.T) {
	input := "data,descrição,valor\n2024-02-10,Cachê Teste,150\n"
	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestDecodeReader_UTF8BOMStripped(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("data,descrição\n")...)
	assert.Equal(t, "data,descrição\n", decode(t, input))
}

func TestDecodeReader_Latin1(t *testing.T) {
	// "saída" in Windows-1252: í = 0xED.
	input := []byte{'s', 'a', 0xED, 'd', 'a', '\n'}
	assert.Equal(t, "saída\n", decode(t, input))
}

func TestDecodeReader_UTF16LE(t *testing.T) {
	// "data\n" as UTF-16 LE with BOM.
	input := []byte{0xFF, 0xFE, 'd', 0, 'a', 0, 't', 0, 'a', 0, '\n', 0}
	assert.Equal(t, "data\n", decode(t, input))
}
