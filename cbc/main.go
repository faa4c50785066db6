package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/gguidi/costbasis/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env holding default input locations (CBC_RELEASES,
	// CBC_EXRATES, CBC_SALES). Missing file is fine.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
