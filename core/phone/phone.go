// Package phone decomposes raw phone-number strings.
package phone

import "strings"

// Number is a fixed-offset view over a raw phone-number string: one
// country-code character, three area-code characters, and whatever remains
// as the subscriber number. No digit validation is performed; the upstream
// switch emits well-formed numbers, and malformed input degrades to empty
// components rather than an error.
type Number struct {
	// CountryCode is the single leading country-code character
	CountryCode string

	// AreaCode is the three characters following the country code
	AreaCode string

	// SubscriberNumber is everything after the area code
	SubscriberNumber string
}

// Parse splits raw into its components after stripping a single leading "+".
// Inputs shorter than four characters yield empty area-code or subscriber
// fields.
func Parse(raw string) Number {
	s := strings.TrimPrefix(raw, "+")
	return Number{
		CountryCode:      slice(s, 0, 1),
		AreaCode:         slice(s, 1, 4),
		SubscriberNumber: slice(s, 4, len(s)),
	}
}

// slice is s[from:to] clamped to the string bounds
func slice(s string, from, to int) string {
	if from > len(s) {
		from = len(s)
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
