package assetparser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"
	"github.com/Georgi-Piskov/barin-alp-system/internal/models"
	"github.com/Georgi-Piskov/barin-alp-system/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const testHeader = "Дата;Референция;Описание;Контрагент;IBAN;Дебит;Кредит;Салдо;Валута"

func newTestParser() *Parser {
	return NewWithEncoding(&logging.MockLogger{}, "utf-8")
}

func TestParseValidStatement(t *testing.T) {
	input := strings.Join([]string{
		testHeader,
		"15.01.2024;REF001;ТАКСА ПРЕВОД;;;1,20;;1000,00;BGN",
		"16.01.2024;REF002;ПРЕВОД ОТ КЛИЕНТ;Иван Петров;BG80BNBG96611020345678;;2500,00;3500,00;BGN",
	}, "\n")

	txs, err := newTestParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	first := txs[0]
	assert.Equal(t, "2024-01-15", first.DateString)
	assert.Equal(t, "REF001", first.Reference)
	assert.Equal(t, "ТАКСА ПРЕВОД", first.Description)
	assert.Equal(t, models.TypeDebit, first.Type)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("1.20")))
	assert.Equal(t, "BGN", first.Currency)

	second := txs[1]
	assert.Equal(t, models.TypeCredit, second.Type)
	assert.True(t, second.Amount.Equal(decimal.RequireFromString("2500")))
	assert.Equal(t, "Иван Петров", second.CounterpartyName)
	assert.Equal(t, "BG80BNBG96611020345678", second.IBAN)
	assert.True(t, second.Balance.Equal(decimal.RequireFromString("3500")))
}

func TestParseSkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		testHeader,
		"15.01.2024;REF001;ТАКСА ПРЕВОД;;;1,20;;;BGN",
		"not-a-date;REF002;СЧУПЕН РЕД;;;5,00;;;BGN",
		"16.01.2024;REF003;ПРЕВОД ОТ КЛИЕНТ;;;;2500,00;;BGN",
	}, "\n")

	txs, err := newTestParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "REF001", txs[0].Reference)
	assert.Equal(t, "REF003", txs[1].Reference)
}

func TestParseRejectsRowsWithBothOrNeitherAmount(t *testing.T) {
	input := strings.Join([]string{
		testHeader,
		"15.01.2024;REF001;И ДВЕТЕ КОЛОНИ;;;1,20;2,40;;BGN",
		"15.01.2024;REF002;НИКОЯ КОЛОНА;;;;;;BGN",
		"15.01.2024;REF003;ВАЛИДЕН;;;1,20;;;BGN",
	}, "\n")

	txs, err := newTestParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "REF003", txs[0].Reference)
}

func TestParseRejectsNonPositiveAmounts(t *testing.T) {
	input := strings.Join([]string{
		testHeader,
		"15.01.2024;REF001;ОТРИЦАТЕЛНА;;;-1,20;;;BGN",
		"15.01.2024;REF002;НУЛА;;;0,00;;;BGN",
	}, "\n")

	txs, err := newTestParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParseEmptyInput(t *testing.T) {
	txs, err := newTestParser().Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParseHeaderOnly(t *testing.T) {
	txs, err := newTestParser().Parse(strings.NewReader(testHeader + "\n"))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParseMissingRequiredColumn(t *testing.T) {
	input := "Дата;Референция;Описание\n15.01.2024;REF001;НЕЩО\n"

	_, err := newTestParser().Parse(strings.NewReader(input))
	require.Error(t, err)
	var formatErr *parsererror.InvalidFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestParseShortRows(t *testing.T) {
	// Rows lacking trailing columns still parse; missing fields come back
	// empty and the currency defaults.
	input := strings.Join([]string{
		testHeader,
		"15.01.2024;REF001;ТАКСА;;;1,20",
	}, "\n")

	txs, err := newTestParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "BGN", txs[0].Currency)
	assert.True(t, txs[0].Balance.IsZero())
}

func TestParseWindows1251(t *testing.T) {
	input := strings.Join([]string{
		testHeader,
		"15.01.2024;REF001;ТЕГЛЕНЕ АТМ;;;200,00;;;BGN",
	}, "\n")

	var encoded bytes.Buffer
	w := transform.NewWriter(&encoded, charmap.Windows1251.NewEncoder())
	_, err := w.Write([]byte(input))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	p := New(&logging.MockLogger{})
	txs, err := p.Parse(bytes.NewReader(encoded.Bytes()))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "ТЕГЛЕНЕ АТМ", txs[0].Description)
}

func TestParseUnsupportedEncoding(t *testing.T) {
	p := NewWithEncoding(&logging.MockLogger{}, "koi8-r")
	_, err := p.Parse(strings.NewReader(testHeader))
	assert.Error(t, err)
}

func TestParseReorderedColumns(t *testing.T) {
	input := strings.Join([]string{
		"Кредит;Дебит;Описание;Дата",
		";1,20;ТАКСА;15.01.2024",
	}, "\n")

	txs, err := newTestParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TypeDebit, txs[0].Type)
	assert.Equal(t, "ТАКСА", txs[0].Description)
}
