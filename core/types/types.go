// Package types defines the entities shared across the billing pipeline.
package types

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// CallCategory classifies a call by the distance between its endpoints
type CallCategory string

const (
	// CategoryInternational means the endpoints are in different countries
	CategoryInternational CallCategory = "international"

	// CategoryDomestic means same country, different area codes
	CategoryDomestic CallCategory = "domestic"

	// CategoryLocal means same country and same area code
	CategoryLocal CallCategory = "local"
)

// String returns the string representation
func (c CallCategory) String() string {
	return string(c)
}

// CallRecord is one row of the usage export: a single completed call.
// Timestamps are kept as the raw strings from the export (naive local
// date-times, no timezone) until the call is rated. Records are immutable;
// one is built per input row and discarded after it is folded into a bill.
type CallRecord struct {
	// AccountNumber identifies the billed account. It is an opaque
	// identifier, not necessarily numeric.
	AccountNumber string `json:"account_number"`

	// OriginationNumber is the calling phone number
	OriginationNumber string `json:"origination_number"`

	// TerminationNumber is the called phone number
	TerminationNumber string `json:"termination_number"`

	// CallStart is when the call began
	CallStart string `json:"call_start"`

	// CallStop is when the call ended
	CallStop string `json:"call_stop"`
}
