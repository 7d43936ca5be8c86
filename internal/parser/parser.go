// Package parser defines the statement parser interface and the factory
// that selects a concrete implementation per source format.
package parser

import (
	"io"

	"github.com/Georgi-Piskov/barin-alp-system/internal/models"
)

// Parser turns raw statement content into normalized bank transactions.
type Parser interface {
	// Parse reads statement content from r and returns the normalized
	// transactions in statement row order. Rows that cannot be parsed are
	// skipped; only input that cannot be recognized at all yields an error.
	// Empty or header-only input yields an empty slice and no error.
	Parse(r io.Reader) ([]models.BankTransaction, error)
}
