// Package cmd implements the CLI application to compute Section 104 cost
// basis reports.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&calcCmd{}, "report")
	c.Register(&combineCmd{}, "exchange rates")
}

// as a CLI application, it has a very short lived lifecycle, so a package
// level logger is ok.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown, still perfectly readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
