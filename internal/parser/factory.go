package parser

import (
	"fmt"

	"github.com/Georgi-Piskov/barin-alp-system/internal/assetparser"
	"github.com/Georgi-Piskov/barin-alp-system/internal/camtparser"
	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"
)

// Type identifies a supported statement source format.
type Type string

const (
	// Asset is the bank's native CSV export (windows-1251, semicolon delimited).
	Asset Type = "asset"
	// CAMT is an ISO 20022 camt.053 bank-to-customer statement XML.
	CAMT Type = "camt"
)

// GetParser returns a parser for the given statement format, reading the
// bank's default encoding.
func GetParser(parserType Type, logger logging.Logger) (Parser, error) {
	return GetParserWithEncoding(parserType, "", logger)
}

// GetParserWithEncoding returns a parser for the given statement format and
// source encoding. The encoding applies to the CSV format only; camt.053
// documents declare their own. An empty encoding selects the format default.
func GetParserWithEncoding(parserType Type, encoding string, logger logging.Logger) (Parser, error) {
	switch parserType {
	case Asset:
		if encoding != "" {
			return assetparser.NewWithEncoding(logger, encoding), nil
		}
		return assetparser.New(logger), nil
	case CAMT:
		return camtparser.New(logger), nil
	default:
		return nil, fmt.Errorf("unknown statement format: %s", parserType)
	}
}
