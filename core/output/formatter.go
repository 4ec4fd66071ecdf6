// Package output renders billing results.
// This package produces human and machine-readable summaries.
package output

import (
	"io"

	"telecom-billing/core/billing"
	"telecom-billing/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCSV is the legacy summary table
	FormatCSV Format = "csv"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *BillingResult) error
}

// BillingResult contains the complete outcome of one batch run
type BillingResult struct {
	// Bills holds one summary per account, in first-seen order
	Bills []*billing.CustomerBill `json:"bills"`

	// Metadata contains execution context
	Metadata RunMetadata `json:"metadata"`
}

// RunMetadata contains execution context
type RunMetadata struct {
	// RunID uniquely identifies this batch run
	RunID string `json:"run_id"`

	// Timestamp is when the run started
	Timestamp string `json:"timestamp"`

	// Duration is how long the run took
	Duration string `json:"duration"`

	// InputPath is the usage export that was billed
	InputPath string `json:"input_path"`

	// RecordCount is the number of call records processed
	RecordCount int `json:"record_count"`
}

// New returns the formatter for a format
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCSV:
		return &CSVFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unsupported output format: %s", format)
	}
}
