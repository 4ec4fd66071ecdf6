package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders the full result, bills plus run metadata, as
// indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render encodes the result to w
func (f *JSONFormatter) Render(w io.Writer, result *BillingResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
