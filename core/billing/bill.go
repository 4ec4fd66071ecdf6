// Package billing aggregates rated calls into per-account bills.
package billing

import (
	"github.com/shopspring/decimal"

	"telecom-billing/core/rating"
	"telecom-billing/core/types"
	"telecom-billing/internal/errors"
)

// CustomerBill is the running summary for one account: minutes and call
// counts per category plus the total charge. The charge is always a sum of
// per-call amounts that were each quantized to two decimals first, so the
// total is a sum of rounded terms, not a rounding of the sum.
type CustomerBill struct {
	AccountNumber string `json:"account_number"`

	MinutesInternational int `json:"minutes_international"`
	NumInternational     int `json:"number_international"`

	MinutesDomestic int `json:"minutes_domestic"`
	NumDomestic     int `json:"number_domestic"`

	MinutesLocal int `json:"minutes_local"`
	NumLocal     int `json:"number_local"`

	Charge decimal.Decimal `json:"charge"`
}

// NewCustomerBill seeds a bill from the first rated call seen for an account
func NewCustomerBill(account string, charge rating.CallCharge) (*CustomerBill, error) {
	bill := &CustomerBill{
		AccountNumber: account,
		Charge:        charge.Amount,
	}
	if err := bill.record(charge); err != nil {
		return nil, err
	}
	return bill, nil
}

// record books one call's minutes and count under its category
func (b *CustomerBill) record(c rating.CallCharge) error {
	switch c.Category {
	case types.CategoryInternational:
		b.MinutesInternational += c.Minutes
		b.NumInternational++
	case types.CategoryDomestic:
		b.MinutesDomestic += c.Minutes
		b.NumDomestic++
	case types.CategoryLocal:
		b.MinutesLocal += c.Minutes
		b.NumLocal++
	default:
		return errors.Newf(errors.TypeRating, "unhandled call category: %s", c.Category)
	}
	return nil
}

// Merge folds other into b. Bills for two different accounts never merge;
// attempting to is a programming error surfaced as a fatal account-mismatch
// error naming both accounts.
func (b *CustomerBill) Merge(other *CustomerBill) error {
	if b.AccountNumber != other.AccountNumber {
		return errors.AccountMismatch(b.AccountNumber, other.AccountNumber)
	}

	b.MinutesInternational += other.MinutesInternational
	b.NumInternational += other.NumInternational
	b.MinutesDomestic += other.MinutesDomestic
	b.NumDomestic += other.NumDomestic
	b.MinutesLocal += other.MinutesLocal
	b.NumLocal += other.NumLocal
	b.Charge = b.Charge.Add(other.Charge.RoundBank(2))

	return nil
}
