package output

import (
	"bufio"
	"fmt"
	"io"
)

// Header is the summary table header. Column order is a contract with
// downstream consumers of the legacy biller; do not reorder.
const Header = "account_number,minutes_international,number_international," +
	"minutes_domestic,number_domestic,minutes_local,number_local,charge"

// CSVFormatter renders the legacy comma-separated summary table
type CSVFormatter struct{}

// Format returns the format type
func (f *CSVFormatter) Format() Format {
	return FormatCSV
}

// Render writes the header and one row per account in first-seen order.
// The charge is always printed with exactly two decimal places.
func (f *CSVFormatter) Render(w io.Writer, result *BillingResult) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return err
	}
	for _, bill := range result.Bills {
		_, err := fmt.Fprintf(bw, "%s,%d,%d,%d,%d,%d,%d,%s\n",
			bill.AccountNumber,
			bill.MinutesInternational, bill.NumInternational,
			bill.MinutesDomestic, bill.NumDomestic,
			bill.MinutesLocal, bill.NumLocal,
			bill.Charge.StringFixed(2))
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}
