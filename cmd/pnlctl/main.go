package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&userCmd{}, "admin")
	commander.Register(&seedCmd{}, "admin")
	commander.Register(&statsCmd{}, "reports")
	commander.Register(&exportCmd{}, "reports")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// stderr keeps stdout clean for command output.
var stderr = zerolog.ConsoleWriter{Out: os.Stderr}
