// Package rating classifies calls and prices them.
package rating

import (
	"time"

	"github.com/shopspring/decimal"

	"telecom-billing/core/phone"
	"telecom-billing/core/types"
	"telecom-billing/internal/errors"
)

// tariff is the charge formula for one call category: a flat connection
// base plus a per-minute rate.
type tariff struct {
	base      decimal.Decimal
	perMinute decimal.Decimal
}

var tariffs = map[types.CallCategory]tariff{
	types.CategoryInternational: {
		base:      decimal.RequireFromString("1.00"),
		perMinute: decimal.RequireFromString("0.20"),
	},
	types.CategoryDomestic: {
		base:      decimal.RequireFromString("0.00"),
		perMinute: decimal.RequireFromString("0.10"),
	},
	types.CategoryLocal: {
		base:      decimal.RequireFromString("0.00"),
		perMinute: decimal.RequireFromString("0.02"),
	},
}

// CallCharge is the rated outcome for a single call
type CallCharge struct {
	// Category is the distance classification
	Category types.CallCategory `json:"category"`

	// Minutes is the billable duration, rounded up to whole minutes
	Minutes int `json:"minutes"`

	// Amount is the charge, quantized to two decimal places
	Amount decimal.Decimal `json:"amount"`

	// Currency is the charge currency
	Currency types.Currency `json:"currency"`
}

// Classify determines the category of a call between two endpoints.
// Differing country codes make it international; failing that, differing
// area codes make it domestic; otherwise it is local.
func Classify(origination, termination string) types.CallCategory {
	from := phone.Parse(origination)
	to := phone.Parse(termination)

	switch {
	case from.CountryCode != to.CountryCode:
		return types.CategoryInternational
	case from.AreaCode != to.AreaCode:
		return types.CategoryDomestic
	default:
		return types.CategoryLocal
	}
}

// Timestamps are naive local date-times, "T" or space separated, with
// optional fractional seconds and no zone marker.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Newf(errors.TypeParsing, "unparseable timestamp: %q", s)
}

const secondsPerDay = 86400

// DurationMinutes returns the billable whole minutes between start and stop:
// the ceiling of the elapsed seconds over 60, never negative.
//
// Matching the legacy biller, only the within-day portion of the elapsed
// time is counted: whole days are discarded by a floored modulo, so a call
// spanning a day boundary bills only the sub-day remainder. Kept as-is for
// output compatibility with the system this replaces.
func DurationMinutes(start, stop string) (int, error) {
	from, err := parseTimestamp(start)
	if err != nil {
		return 0, err
	}
	to, err := parseTimestamp(stop)
	if err != nil {
		return 0, err
	}

	d := to.Sub(from)
	secs := int64(d / time.Second)
	if d%time.Second < 0 {
		// floor, not truncate, so negative sub-second deltas land in the
		// previous whole second
		secs--
	}
	secs = ((secs % secondsPerDay) + secondsPerDay) % secondsPerDay

	return int((secs + 59) / 60), nil
}

// ChargeForCall prices a call of the given category and duration:
// base + rate x minutes, quantized to two decimal places half-to-even.
// An unknown category is unreachable for records built through Classify.
func ChargeForCall(category types.CallCategory, minutes int) (decimal.Decimal, error) {
	t, ok := tariffs[category]
	if !ok {
		return decimal.Zero, errors.Newf(errors.TypeRating, "unhandled call category: %s", category)
	}
	amount := t.base.Add(t.perMinute.Mul(decimal.NewFromInt(int64(minutes))))
	return amount.RoundBank(2), nil
}

// Rate classifies and prices one call record
func Rate(record types.CallRecord) (CallCharge, error) {
	minutes, err := DurationMinutes(record.CallStart, record.CallStop)
	if err != nil {
		return CallCharge{}, errors.Wrapf(errors.TypeParsing, err,
			"rating call for account %s", record.AccountNumber)
	}

	category := Classify(record.OriginationNumber, record.TerminationNumber)

	amount, err := ChargeForCall(category, minutes)
	if err != nil {
		return CallCharge{}, err
	}

	return CallCharge{
		Category: category,
		Minutes:  minutes,
		Amount:   amount,
		Currency: types.CurrencyUSD,
	}, nil
}
