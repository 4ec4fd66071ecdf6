// Package cmd - bill command
package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"telecom-billing/adapters/usage"
	"telecom-billing/core/billing"
	"telecom-billing/core/output"
	"telecom-billing/internal/config"
	"telecom-billing/internal/errors"
	"telecom-billing/internal/logging"
)

var (
	inputPath    string
	outputPath   string
	outputFormat string
)

// billCmd represents the bill command
var billCmd = &cobra.Command{
	Use:   "bill",
	Short: "Compute billing summaries for a usage export",
	Long: `Read a call usage export and write one billing summary per account.

Accounts appear in the output in the order they first appear in the input.
A malformed row fails the whole run; no partial summary is written.

Examples:
  telecom-billing bill
  telecom-billing bill --input usage.csv --output output.csv
  telecom-billing bill -i usage.csv -o - -f json`,
	Args: cobra.NoArgs,
	RunE: runBill,
}

func init() {
	billCmd.Flags().StringVarP(&inputPath, "input", "i", "", "usage export to read (default from config)")
	billCmd.Flags().StringVarP(&outputPath, "output", "o", "", `summary file to write, "-" for stdout (default from config)`)
	billCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (csv, json)")
}

func runBill(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	cfg := config.Get()
	in := inputPath
	if in == "" {
		in = cfg.Input.Path
	}
	out := outputPath
	if out == "" {
		out = cfg.Output.Path
	}
	format := outputFormat
	if format == "" {
		format = cfg.Output.Format
	}

	formatter, err := output.New(output.Format(format))
	if err != nil {
		return err
	}

	logging.Info("reading usage export", zap.String("path", in))
	records, err := usage.ReadRecords(in)
	if err != nil {
		return fmt.Errorf("failed to read usage export: %w", err)
	}
	logging.Debug("loaded call records", zap.Int("count", len(records)))

	bills, err := billing.Aggregate(records)
	if err != nil {
		return fmt.Errorf("failed to aggregate bills: %w", err)
	}

	result := &output.BillingResult{
		Bills: bills,
		Metadata: output.RunMetadata{
			RunID:       uuid.NewString(),
			Timestamp:   startTime.Format(time.RFC3339),
			Duration:    time.Since(startTime).String(),
			InputPath:   in,
			RecordCount: len(records),
		},
	}

	// Render to memory first so a failed run never leaves a partial file.
	var buf bytes.Buffer
	if err := formatter.Render(&buf, result); err != nil {
		return err
	}

	if out == "-" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(errors.TypeInternal, "writing billing summary", err)
	}

	logging.Info("wrote billing summary",
		zap.String("path", out),
		zap.Int("accounts", len(bills)),
		zap.Int("records", len(records)),
		zap.String("run_id", result.Metadata.RunID))
	return nil
}
