package parser

import (
	"testing"

	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetParser(t *testing.T) {
	for _, parserType := range []Type{Asset, CAMT} {
		p, err := GetParser(parserType, &logging.MockLogger{})
		require.NoError(t, err)
		assert.NotNil(t, p)
	}
}

func TestGetParserUnknownFormat(t *testing.T) {
	_, err := GetParser("pdf", &logging.MockLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown statement format")
}

func TestGetParserWithEncoding(t *testing.T) {
	p, err := GetParserWithEncoding(Asset, "utf-8", &logging.MockLogger{})
	require.NoError(t, err)
	assert.NotNil(t, p)
}
