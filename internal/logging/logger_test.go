package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerReturnsDefault(t *testing.T) {
	logger := GetLogger()
	assert.NotNil(t, logger)
}

func TestSetDefaultLogger(t *testing.T) {
	original := GetLogger()
	defer SetDefaultLogger(original)

	mock := &MockLogger{}
	SetDefaultLogger(mock)
	assert.Same(t, mock, GetLogger().(*MockLogger))

	// A nil logger is ignored.
	SetDefaultLogger(nil)
	assert.Same(t, mock, GetLogger().(*MockLogger))
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}
	mock.Info("statement parsed", Field{Key: FieldCount, Value: 3})
	mock.Warn("skipping row", Field{Key: FieldRow, Value: 2})

	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("INFO", "statement parsed"))
	assert.True(t, mock.HasEntry("WARN", "skipping row"))
	assert.Len(t, mock.GetEntriesByLevel("WARN"), 1)

	mock.Clear()
	assert.Empty(t, mock.Entries)
}

func TestLogrusAdapterLevels(t *testing.T) {
	logger := NewLogrusAdapter("debug", "json")
	require.NotNil(t, logger)
	logger.WithError(errors.New("boom")).Warn("something happened")
	logger.WithField(FieldParser, "asset").Info("parsed")
}
