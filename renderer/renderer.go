// Package renderer renders a computed gains report: the canonical CSV table,
// a markdown table for terminals, and a spreadsheet export. Rounding lives
// here and only here; the report itself carries exact values.
package renderer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gguidi/costbasis"
)

// Columns of the canonical report table, one row per event in timeline order.
var columns = []string{
	"Type",
	"Date",
	"Granted",
	"Disposed",
	"Issued",
	"Price per share ($)",
	"GBP/USD",
	"Holdings (GBP)",
	"Gains / Losses (GBP)",
}

// moneyPlaces is the fixed rendering precision of monetary and rate fields.
const moneyPlaces = 4

// reportRow formats one annotated event. Share counts render as integers,
// monetary fields and rates with four decimal places, fields absent for the
// event kind as empty strings.
func reportRow(row costbasis.Row) []string {
	var granted, disposed, issued, gain string
	switch row.Kind {
	case costbasis.Acquire:
		granted = row.Granted.StringFixed(0)
		issued = row.Units.StringFixed(0)
	case costbasis.Dispose:
		disposed = row.Units.StringFixed(0)
		gain = row.Gain.StringFixed(moneyPlaces)
	}
	return []string{
		row.Kind.String(),
		row.Date.String(),
		granted,
		disposed,
		issued,
		row.PriceForeign.StringFixed(moneyPlaces),
		row.FxRate.StringFixed(moneyPlaces),
		row.Pool.Cost.StringFixed(moneyPlaces),
		gain,
	}
}

// GainsCSV writes the canonical report table to w.
func GainsCSV(w io.Writer, report *costbasis.GainsReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	for _, row := range report.Rows {
		if err := cw.Write(reportRow(row)); err != nil {
			return fmt.Errorf("cannot write report: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// GainsMarkdown renders the report as a markdown document, one table row per
// event plus a closing summary of the final holding.
func GainsMarkdown(report *costbasis.GainsReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Section 104 Cost Basis Report\n\n")

	fmt.Fprintf(&b, "| %s |\n", strings.Join(columns, " | "))
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|---:|")
	for _, row := range report.Rows {
		fields := reportRow(row)
		fmt.Fprintf(&b, "| %s |\n", strings.Join(fields, " | "))
	}

	fmt.Fprintf(&b, "\nFinal holding: %s shares, pool cost %s.\n",
		report.Final.Units, report.Final.Cost)
	fmt.Fprintf(&b, "Total realized gains / losses: %s.\n",
		report.TotalRealized().SignedString())

	return b.String()
}
