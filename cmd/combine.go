package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gguidi/costbasis"
	"github.com/google/subcommands"
)

// combineCmd holds the flags for the 'combine' subcommand.
type combineCmd struct {
	outputFile string
}

func (*combineCmd) Name() string { return "combine" }
func (*combineCmd) Synopsis() string {
	return "assemble an exchange-rate schedule from monthly HMRC files"
}
func (*combineCmd) Usage() string {
	return `cbc combine [-o <file>] <exrates1.csv> [<exrates2.csv> ...]

  Extracts the USD row out of each raw monthly HMRC exchange-rate file and
  writes them as one schedule CSV, the -x input of 'cbc calc'. Files without
  a USD entry are reported and skipped, and the command exits non-zero.

Usage Examples:
$ cbc combine -o exrates.csv hmrc-2024-*.csv

`
}

func (c *combineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Write the schedule to a file instead of stdout")
}

func (c *combineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one monthly exchange-rate file is required")
		return subcommands.ExitUsageError
	}

	var ranges []costbasis.FxRange
	failed := false
	for _, path := range f.Args() {
		rng, err := extractFile(path)
		if err != nil {
			logger.Warn().Str("file", path).Err(err).Msg("skipping file")
			failed = true
			continue
		}
		ranges = append(ranges, rng)
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
	if err := costbasis.EncodeFxSchedule(out, ranges); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if failed {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func extractFile(path string) (costbasis.FxRange, error) {
	file, err := os.Open(path)
	if err != nil {
		return costbasis.FxRange{}, err
	}
	defer file.Close()
	return costbasis.ExtractUSDRange(file)
}
