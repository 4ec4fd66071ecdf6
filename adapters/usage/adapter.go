// Package usage reads call usage exports.
//
// The input is the switch's nightly export: a header line followed by one
// call record per line, five comma-separated fields with no quoting or
// escaping. Embedded commas in a field are not representable.
package usage

import (
	"bufio"
	"io"
	"os"
	"strings"

	"telecom-billing/core/types"
	"telecom-billing/internal/errors"
)

const fieldsPerRecord = 5

// ReadRecords loads every call record from the export at path. The header
// line is skipped. A row with the wrong field count fails the whole run,
// identifying the offending line; there is no row-level recovery.
func ReadRecords(path string) ([]types.CallRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "opening usage export", err)
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.Reader) ([]types.CallRecord, error) {
	scanner := bufio.NewScanner(r)

	var records []types.CallRecord
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			// header
			continue
		}

		row := strings.TrimRight(scanner.Text(), "\r")
		if row == "" {
			continue
		}

		fields := strings.Split(row, ",")
		if len(fields) != fieldsPerRecord {
			return nil, errors.Newf(errors.TypeParsing,
				"line %d: expected %d fields, got %d", line, fieldsPerRecord, len(fields))
		}

		records = append(records, types.CallRecord{
			AccountNumber:     fields[0],
			OriginationNumber: fields[1],
			TerminationNumber: fields[2],
			CallStart:         fields[3],
			CallStop:          fields[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "reading usage export", err)
	}

	return records, nil
}
