package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string kept as typed", " Jan 5 ", " Jan 5 "},
		{"whole float", 12345.0, "12345"},
		{"fractional float", 1.5, "1.5"},
		{"int", 7, "7"},
		{"bool", true, "true"},
		{"date", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), "2025-01-05"},
		{"date time", time.Date(2025, 1, 5, 9, 30, 0, 0, time.UTC), "2025-01-05 09:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValueString(tt.value))
		})
	}
}

func TestDisplayString(t *testing.T) {
	assert.Equal(t, "05-Jan", DisplayString(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "A1", DisplayString("A1"))
	assert.Equal(t, "", DisplayString(nil))
}

func TestRow_Project(t *testing.T) {
	row := Row{"policynum": "A1", "extra": "dropped", "insurer": "Acme"}

	projected := row.Project(TargetColumns)

	assert.Len(t, projected, len(TargetColumns))
	assert.Equal(t, "A1", projected.Get(ColumnPolicyNum))
	assert.Equal(t, "Acme", projected.Get(ColumnInsurer))
	assert.Nil(t, projected.Get(ColumnRenewal))
	_, hasExtra := projected["extra"]
	assert.False(t, hasExtra)
}

func TestRow_IsBlank(t *testing.T) {
	assert.True(t, Row{"a": nil, "b": "  "}.IsBlank())
	assert.True(t, BlankRow(TargetColumns).IsBlank())
	assert.False(t, Row{"a": 0.0}.IsBlank())
	assert.True(t, Row(nil).IsBlank())
}

func TestNewRenewalRecord(t *testing.T) {
	record := NewRenewalRecord(Row{
		ColumnPolicyNum: "B2",
		ColumnInsurer:   "Acme",
		ColumnRenewal:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ColumnCCode:     42.0,
	})

	assert.Equal(t, "B2", record.PolicyNum)
	assert.Equal(t, "Acme", record.Insurer)
	assert.Equal(t, "10-Mar", record.Renewal)
	assert.Equal(t, "42", record.CCode)
	assert.Equal(t, "", record.DL)

	assert.Equal(t, RenewalRecord{}, NewRenewalRecord(BlankRow(TargetColumns)))
}

func TestSameHeader(t *testing.T) {
	assert.True(t, SameHeader([]string{"a", "b"}, []string{"a", "b"}))
	assert.False(t, SameHeader([]string{"a", "b"}, []string{"b", "a"}))
	assert.False(t, SameHeader([]string{"a"}, []string{"a", "b"}))
}
