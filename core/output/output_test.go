package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telecom-billing/core/billing"
	"telecom-billing/core/types"
)

func sampleResult(t *testing.T) *BillingResult {
	t.Helper()

	bills, err := billing.Aggregate([]types.CallRecord{
		{
			AccountNumber:     "1",
			OriginationNumber: "+15555555555",
			TerminationNumber: "+26666666666",
			CallStart:         "2022-06-24T15:31:11.696409",
			CallStop:          "2022-06-24T15:33:11.696409",
		},
		{
			AccountNumber:     "1",
			OriginationNumber: "+15555555555",
			TerminationNumber: "+16666666666",
			CallStart:         "2022-06-24T15:31:11.696409",
			CallStop:          "2022-06-24T15:33:11.696409",
		},
		{
			AccountNumber:     "2",
			OriginationNumber: "+15555555555",
			TerminationNumber: "+15556666666",
			CallStart:         "2022-06-24T15:31:11.696409",
			CallStop:          "2022-06-24T15:33:11.696409",
		},
	})
	require.NoError(t, err)

	return &BillingResult{
		Bills: bills,
		Metadata: RunMetadata{
			RunID:       "test-run",
			Timestamp:   "2022-06-25T00:00:00Z",
			Duration:    "1ms",
			InputPath:   "usage.csv",
			RecordCount: 3,
		},
	}
}

func TestNew(t *testing.T) {
	f, err := New(FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f.Format())

	f, err = New(FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f.Format())

	_, err = New(Format("xml"))
	require.Error(t, err)
}

func TestCSVFormatterRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CSVFormatter{}).Render(&buf, sampleResult(t)))

	want := "account_number,minutes_international,number_international," +
		"minutes_domestic,number_domestic,minutes_local,number_local,charge\n" +
		"1,2,1,2,1,0,0,1.60\n" +
		"2,0,0,0,0,2,1,0.04\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVFormatterRenderNoBills(t *testing.T) {
	var buf bytes.Buffer
	result := &BillingResult{Metadata: RunMetadata{RunID: "empty"}}
	require.NoError(t, (&CSVFormatter{}).Render(&buf, result))

	// header only
	assert.Equal(t, Header+"\n", buf.String())
}

func TestJSONFormatterRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{}).Render(&buf, sampleResult(t)))

	var decoded struct {
		Bills []struct {
			AccountNumber        string `json:"account_number"`
			MinutesInternational int    `json:"minutes_international"`
			Charge               string `json:"charge"`
		} `json:"bills"`
		Metadata RunMetadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Bills, 2)
	assert.Equal(t, "1", decoded.Bills[0].AccountNumber)
	assert.Equal(t, 2, decoded.Bills[0].MinutesInternational)
	assert.Equal(t, "1.60", decoded.Bills[0].Charge)
	assert.Equal(t, "test-run", decoded.Metadata.RunID)
	assert.Equal(t, 3, decoded.Metadata.RecordCount)
}
