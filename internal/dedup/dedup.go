// Package dedup filters statement transactions that are already present in
// the store, so re-uploading the same statement never creates duplicates.
package dedup

import (
	"strings"

	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"
	"github.com/Georgi-Piskov/barin-alp-system/internal/models"
)

// IdentityKey computes the stable identity of a transaction: the tuple
// (date, amount to two decimals, type, reference). When the statement omits
// the reference the description stands in for it, so same-day same-amount
// rows with blank references still deduplicate. When both reference and
// description are blank the record has no usable identity and ok is false;
// such records are treated as never-duplicate.
func IdentityKey(tx models.BankTransaction) (string, bool) {
	discriminator := strings.TrimSpace(tx.Reference)
	if discriminator == "" {
		discriminator = strings.TrimSpace(tx.Description)
	}
	if discriminator == "" {
		return "", false
	}

	key := tx.Date.Format("2006-01-02") + "|" +
		tx.Amount.StringFixed(2) + "|" +
		string(tx.Type) + "|" +
		discriminator
	return key, true
}

// FilterNew returns the candidates whose identity key does not occur in the
// existing set, preserving candidate order, together with the number of
// duplicates dropped. The existing set is never mutated.
func FilterNew(candidates, existing []models.BankTransaction, logger logging.Logger) (toInsert []models.BankTransaction, duplicateCount int) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	seen := make(map[string]struct{}, len(existing))
	for _, tx := range existing {
		if key, ok := IdentityKey(tx); ok {
			seen[key] = struct{}{}
		}
	}

	toInsert = []models.BankTransaction{}
	for _, tx := range candidates {
		key, ok := IdentityKey(tx)
		if !ok {
			toInsert = append(toInsert, tx)
			continue
		}
		if _, dup := seen[key]; dup {
			duplicateCount++
			continue
		}
		toInsert = append(toInsert, tx)
	}

	logger.Info("Filtered statement against stored transactions",
		logging.Field{Key: logging.FieldCount, Value: len(toInsert)},
		logging.Field{Key: logging.FieldDuplicates, Value: duplicateCount})
	return toInsert, duplicateCount
}
