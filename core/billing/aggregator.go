package billing

import (
	"telecom-billing/core/rating"
	"telecom-billing/core/types"
)

// Aggregate rates every record and folds the results into one CustomerBill
// per account, returned in the order each account first appeared in the
// input. Any rating failure aborts the whole batch; there is no partial
// output.
func Aggregate(records []types.CallRecord) ([]*CustomerBill, error) {
	byAccount := make(map[string]*CustomerBill)
	order := make([]string, 0)

	for _, record := range records {
		charge, err := rating.Rate(record)
		if err != nil {
			return nil, err
		}

		delta, err := NewCustomerBill(record.AccountNumber, charge)
		if err != nil {
			return nil, err
		}

		existing, ok := byAccount[record.AccountNumber]
		if !ok {
			byAccount[record.AccountNumber] = delta
			order = append(order, record.AccountNumber)
			continue
		}
		// Merge cannot mismatch here; the map key guarantees the account.
		// Propagate untouched so the tagged type survives to the caller.
		if err := existing.Merge(delta); err != nil {
			return nil, err
		}
	}

	bills := make([]*CustomerBill, 0, len(order))
	for _, account := range order {
		bills = append(bills, byAccount[account])
	}
	return bills, nil
}
