package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telecom-billing/core/types"
	"telecom-billing/internal/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		origination string
		termination string
		want        types.CallCategory
	}{
		{
			name:        "different country codes is international",
			origination: "+15555555555",
			termination: "+26666666666",
			want:        types.CategoryInternational,
		},
		{
			name:        "same country different area is domestic",
			origination: "+15555555555",
			termination: "+16666666666",
			want:        types.CategoryDomestic,
		},
		{
			name:        "same country and area is local",
			origination: "+15555555555",
			termination: "+15556666666",
			want:        types.CategoryLocal,
		},
		{
			name:        "identical numbers are local",
			origination: "+15555555555",
			termination: "+15555555555",
			want:        types.CategoryLocal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.origination, tt.termination))

			// Category depends only on code comparison, so swapping the
			// endpoints must classify the same way.
			assert.Equal(t, tt.want, Classify(tt.termination, tt.origination))
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		stop  string
		want  int
	}{
		{
			name:  "exact two minutes",
			start: "2022-06-24T15:31:11.696409",
			stop:  "2022-06-24T15:33:11.696409",
			want:  2,
		},
		{
			name:  "one extra second rounds up",
			start: "2022-06-24T15:31:11.696409",
			stop:  "2022-06-24T15:33:12.696409",
			want:  3,
		},
		{
			name:  "space-separated timestamps parse too",
			start: "2022-06-24 15:31:11.696409",
			stop:  "2022-06-24 15:33:11.696409",
			want:  2,
		},
		{
			name:  "no fractional seconds",
			start: "2022-06-24T15:31:11",
			stop:  "2022-06-24T15:31:41",
			want:  1,
		},
		{
			name:  "zero elapsed bills zero minutes",
			start: "2022-06-24T15:31:11.696409",
			stop:  "2022-06-24T15:31:11.696409",
			want:  0,
		},
		{
			name:  "whole days are discarded, only the remainder bills",
			start: "2022-06-24T15:31:11",
			stop:  "2022-06-25T15:32:11",
			want:  1,
		},
		{
			name:  "exactly 24 hours bills zero",
			start: "2022-06-24T15:31:11",
			stop:  "2022-06-25T15:31:11",
			want:  0,
		},
		{
			name:  "stop before start bills the day complement",
			start: "2022-06-24T15:31:11",
			stop:  "2022-06-24T15:31:10",
			want:  1440,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DurationMinutes(tt.start, tt.stop)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestDurationMinutesUnparseable(t *testing.T) {
	_, err := DurationMinutes("not-a-timestamp", "2022-06-24T15:33:11")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
	assert.Contains(t, err.Error(), "not-a-timestamp")

	_, err = DurationMinutes("2022-06-24T15:31:11", "2022-06-24T15:33:11+02:00")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}

func TestChargeForCall(t *testing.T) {
	tests := []struct {
		name     string
		category types.CallCategory
		minutes  int
		want     string
	}{
		{name: "international two minutes", category: types.CategoryInternational, minutes: 2, want: "1.40"},
		{name: "domestic two minutes", category: types.CategoryDomestic, minutes: 2, want: "0.20"},
		{name: "local two minutes", category: types.CategoryLocal, minutes: 2, want: "0.04"},
		{name: "international zero minutes is the base", category: types.CategoryInternational, minutes: 0, want: "1.00"},
		{name: "domestic zero minutes is the base", category: types.CategoryDomestic, minutes: 0, want: "0.00"},
		{name: "local zero minutes is the base", category: types.CategoryLocal, minutes: 0, want: "0.00"},
		{name: "long local call accumulates exactly", category: types.CategoryLocal, minutes: 1439, want: "28.78"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChargeForCall(tt.category, tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestChargeForCallUnknownCategory(t *testing.T) {
	_, err := ChargeForCall(types.CallCategory("satellite"), 2)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeRating))
	assert.Contains(t, err.Error(), "satellite")
}

func TestRate(t *testing.T) {
	record := types.CallRecord{
		AccountNumber:     "1",
		OriginationNumber: "+15555555555",
		TerminationNumber: "+26666666666",
		CallStart:         "2022-06-24T15:31:11.696409",
		CallStop:          "2022-06-24T15:33:11.696409",
	}

	charge, err := Rate(record)
	require.NoError(t, err)
	assert.Equal(t, types.CategoryInternational, charge.Category)
	assert.Equal(t, 2, charge.Minutes)
	assert.Equal(t, "1.40", charge.Amount.StringFixed(2))
	assert.Equal(t, types.CurrencyUSD, charge.Currency)
}

func TestRateBadTimestamp(t *testing.T) {
	record := types.CallRecord{
		AccountNumber:     "42",
		OriginationNumber: "+15555555555",
		TerminationNumber: "+15556666666",
		CallStart:         "garbage",
		CallStop:          "2022-06-24T15:33:11.696409",
	}

	_, err := Rate(record)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
	assert.Contains(t, err.Error(), "42")
}
