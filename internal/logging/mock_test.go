package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("start")
	mock.WithField(FieldFile, "a.xlsx").Warn("header differs")
	mock.WithError(errors.New("boom")).Error("failed")

	entries := mock.GetEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "WARN", entries[1].Level)
	assert.Equal(t, []Field{{Key: FieldFile, Value: "a.xlsx"}}, entries[1].Fields)
	assert.EqualError(t, entries[2].Error, "boom")
	assert.True(t, mock.HasEntry("WARN", "header differs"))
	assert.Len(t, mock.GetEntriesByLevel("ERROR"), 1)
}

func TestMockLogger_FatalDoesNotExit(t *testing.T) {
	mock := NewMockLogger()
	mock.Fatalf("cannot read %s", "a.xlsx")

	assert.True(t, mock.HasEntry("FATAL", "cannot read a.xlsx"))

	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}

func TestMockLogger_ZeroValueUsable(t *testing.T) {
	var mock MockLogger
	mock.Debug("hello")
	assert.Len(t, mock.GetEntries(), 1)
}
