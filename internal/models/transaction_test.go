package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPartyLabel(t *testing.T) {
	tests := []struct {
		name         string
		counterparty string
		description  string
		expected     string
	}{
		{"counterparty wins", "Строител ЕООД", "ПРЕВОД", "Строител ЕООД"},
		{"description fallback", "", "ТАКСА ПРЕВОД", "ТАКСА ПРЕВОД"},
		{"whitespace counterparty ignored", "   ", "ТАКСА", "ТАКСА"},
		{"both empty", "", "", NoDescriptionLabel},
		{"whitespace only", "  ", "   ", NoDescriptionLabel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tx := BankTransaction{CounterpartyName: tc.counterparty, Description: tc.description}
			assert.Equal(t, tc.expected, tx.PartyLabel())
		})
	}
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "ТАКСА ПРЕВОД", CleanDescription("  ТАКСА \t ПРЕВОД \n"))
	assert.Equal(t, "", CleanDescription("   "))

	long := strings.Repeat("а", 100)
	assert.Len(t, []rune(CleanDescription(long)), 80)
}

func TestRecomputeStatus(t *testing.T) {
	tx := BankTransaction{}
	tx.RecomputeStatus()
	assert.Equal(t, StatusUnmatched, tx.Status)

	objectID := int64(7)
	tx.ObjectID = &objectID
	tx.RecomputeStatus()
	assert.Equal(t, StatusMatched, tx.Status)

	tx.ObjectID = nil
	tx.RecomputeStatus()
	assert.Equal(t, StatusUnmatched, tx.Status)
}

func TestDateSyncRoundTrip(t *testing.T) {
	tx := BankTransaction{Date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)}
	tx.SyncDateString()
	assert.Equal(t, "2024-01-15", tx.DateString)

	hydrated := BankTransaction{DateString: tx.DateString}
	hydrated.SyncDate()
	assert.True(t, tx.Date.Equal(hydrated.Date))
}

func TestSyncDateToleratesBadInput(t *testing.T) {
	tx := BankTransaction{DateString: "15.01.2024"}
	tx.SyncDate()
	assert.True(t, tx.Date.IsZero())

	tx = BankTransaction{}
	tx.SyncDate()
	assert.True(t, tx.Date.IsZero())
}

func TestIsDebitIsCredit(t *testing.T) {
	debit := BankTransaction{Type: TypeDebit}
	assert.True(t, debit.IsDebit())
	assert.False(t, debit.IsCredit())

	credit := BankTransaction{Type: TypeCredit}
	assert.True(t, credit.IsCredit())
	assert.False(t, credit.IsDebit())
}
