package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gguidi/costbasis"
	"github.com/gguidi/costbasis/renderer"
	"github.com/google/subcommands"
)

// calcCmd holds the flags for the 'calc' subcommand.
type calcCmd struct {
	releasesFile string
	exratesFile  string
	salesFile    string
	format       string
	outputFile   string
}

func (*calcCmd) Name() string { return "calc" }
func (*calcCmd) Synopsis() string {
	return "compute the Section 104 cost basis report"
}
func (*calcCmd) Usage() string {
	return `cbc calc -r <releases.csv> -x <exrates.csv> [-s <sales.csv>] [-format csv|table|xlsx] [-o <file>]

  Normalizes the vesting releases and the optional open-market sales into one
  chronological stream, attaches the exchange rate valid on each event date,
  folds the Section 104 pool over the stream and prints one report row per
  event. Any inconsistency in the inputs aborts the run without a report.

Usage Examples:
# Canonical CSV report on stdout.
$ cbc calc -r releases.csv -x exrates.csv -s sales.csv

# Rendered table on the terminal.
$ cbc calc -r releases.csv -x exrates.csv -s sales.csv -format table

# Spreadsheet export.
$ cbc calc -r releases.csv -x exrates.csv -format xlsx -o report.xlsx

`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.releasesFile, "r", os.Getenv("CBC_RELEASES"), "Stock releases CSV (from the confirmation extraction stage)")
	f.StringVar(&c.exratesFile, "x", os.Getenv("CBC_EXRATES"), "Exchange rates CSV (Start/End Date in DD/MM/YYYY)")
	f.StringVar(&c.salesFile, "s", os.Getenv("CBC_SALES"), "Sales CSV (optional, any broker export schema)")
	f.StringVar(&c.format, "format", "csv", "Output format (csv, table, xlsx)")
	f.StringVar(&c.outputFile, "o", "", "Write the report to a file instead of stdout")
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.releasesFile == "" || c.exratesFile == "" {
		fmt.Fprintln(os.Stderr, "-r and -x flags are required")
		return subcommands.ExitUsageError
	}
	switch c.format {
	case "csv", "table", "xlsx":
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q, want csv, table or xlsx\n", c.format)
		return subcommands.ExitUsageError
	}
	if c.format == "xlsx" && c.outputFile == "" {
		fmt.Fprintln(os.Stderr, "-format xlsx requires -o, refusing to write a spreadsheet to stdout")
		return subcommands.ExitUsageError
	}

	report, err := c.run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var out io.Writer = os.Stdout
	if c.outputFile != "" {
		file, err := os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot create %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	switch c.format {
	case "csv":
		err = renderer.GainsCSV(out, report)
	case "xlsx":
		err = renderer.GainsXLSX(out, report)
	case "table":
		md := renderer.GainsMarkdown(report)
		if c.outputFile != "" {
			_, err = io.WriteString(out, md)
		} else {
			printMarkdown(md)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run decodes the three inputs and drives the engine end to end.
func (c *calcCmd) run() (*costbasis.GainsReport, error) {
	ranges, err := decodeFile(c.exratesFile, costbasis.DecodeFxSchedule)
	if err != nil {
		return nil, err
	}
	rates := costbasis.NewFxRateTable(ranges)

	releases, err := decodeFile(c.releasesFile, costbasis.DecodeReleases)
	if err != nil {
		return nil, err
	}
	acquisitions, err := costbasis.NormalizeAcquisitions(releases, rates)
	if err != nil {
		return nil, err
	}

	var disposals []costbasis.Event
	if c.salesFile != "" {
		records, err := decodeFile(c.salesFile, costbasis.DecodeDisposals)
		if err != nil {
			return nil, err
		}
		disposals, err = costbasis.NormalizeDisposals(records, rates)
		if err != nil {
			return nil, err
		}
	}

	events := costbasis.MergeTimeline(acquisitions, disposals)
	return costbasis.ComputeGains(events)
}

// decodeFile opens path and runs one of the costbasis decoders on it.
func decodeFile[T any](path string, decode func(io.Reader) (T, error)) (T, error) {
	file, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer file.Close()
	v, err := decode(file)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
