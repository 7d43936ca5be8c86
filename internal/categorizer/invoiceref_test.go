package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractInvoiceRef(t *testing.T) {
	tests := []struct {
		name            string
		description     string
		expectedRef     string
		expectedPurpose string
		expectedOk      bool
	}{
		{"cyrillic marker", "Плащане по фактура 1077", "1077", "Плащане по", true},
		{"numero sign", "фактура № 4521 за материали", "4521", "за материали", true},
		{"latin faktura", "Faktura 4521 doplashtane", "4521", "doplashtane", true},
		{"invoice keyword", "Payment invoice no. 20240117", "20240117", "Payment", true},
		{"abbreviated marker", "по ф-ра 555123", "555123", "по", true},
		{"colon separator", "ФАКТУРА: 778899", "778899", "", true},
		{"too short number", "фактура 42", "", "фактура 42", false},
		{"no marker", "превод за аванс 1077", "", "превод за аванс 1077", false},
		{"empty", "", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ref, purpose, ok := ExtractInvoiceRef(tc.description)
			assert.Equal(t, tc.expectedOk, ok)
			assert.Equal(t, tc.expectedRef, ref)
			assert.Equal(t, tc.expectedPurpose, purpose)
		})
	}
}
