package categorizer

import (
	"regexp"
	"strings"
)

// invoiceRefPattern finds an invoice-number-like token following one of the
// invoice marker keywords the bank's customers use in transfer narratives,
// in Cyrillic or Latin spelling. The second capture group is the number.
var invoiceRefPattern = regexp.MustCompile(
	`(?i)(фактура|ф-?ра|faktura|invoice|inv\.?)\s*(?:№|#|no\.?|:)?\s*(\d{3,})`)

// ExtractInvoiceRef searches a payment narrative for an invoice reference.
// On success it returns the numeric reference and the narrative with the
// marker keyword and number removed and whitespace collapsed. When no
// reference is found it returns the narrative unchanged and ok false.
func ExtractInvoiceRef(description string) (ref, purpose string, ok bool) {
	match := invoiceRefPattern.FindStringSubmatchIndex(description)
	if match == nil {
		return "", description, false
	}

	ref = description[match[4]:match[5]]
	stripped := description[:match[0]] + " " + description[match[1]:]
	purpose = strings.Join(strings.Fields(stripped), " ")
	return ref, purpose, true
}
