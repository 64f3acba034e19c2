// Command rushin analyzes stress-marked Russian text. It splits every
// stressed word into syllables, records where the stress falls, and writes
// the word and syllable tables of the whole corpus as JSON.
//
// Usage:
//
//	rushin [analyze] -i input.txt -o corpus.json [--persist] [--workers N] [--config path]
//	rushin show <run-id> [--word WORD]
//	rushin strip -i accented.json -o plain.json [--mode accent|letters]
//	rushin version
//
// analyze is the default command. With --persist the run is also stored in
// PostgreSQL (database.dsn in the config or DATABASE_DSN); show reads such a
// run back.
//
// Exit codes: 0 = success, 1 = error, 2 = unreadable or non-UTF-8 input,
// non-zero kong code on malformed flags.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/heartmarshall/rushin/internal/app"
	"github.com/heartmarshall/rushin/internal/app/analyzer"
	"github.com/heartmarshall/rushin/internal/config"
)

// cli defines the command-line interface using Kong.
type cli struct {
	Config string `name:"config" short:"c" help:"Config file (default: $CONFIG_PATH or ./config.yaml)" type:"path"`

	Analyze AnalyzeCmd `cmd:"" default:"withargs" help:"Analyze a stress-marked text file (default command)"`
	Show    ShowCmd    `cmd:"" help:"Print a persisted run as JSON"`
	Strip   StripCmd   `cmd:"" help:"Strip stress marks from a word to pronunciation JSON dictionary"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// exitCode carries a kong exit request out of the parser.
type exitCode int

const exitInput = 2

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the selected command and returns the process
// exit code.
func run(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	var c cli
	parser, err := kong.New(&c,
		kong.Name("rushin"),
		kong.Description("Syllable and stress statistics for stress-marked Russian text"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitCode(code)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "rushin: %v\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	cfg, err := config.Load(c.Config)
	if err != nil {
		fmt.Fprintf(stderr, "rushin: load config: %v\n", err)
		return 1
	}

	rt := &runtime{
		cfg:    cfg,
		log:    app.NewLogger(cfg.Log),
		stdout: stdout,
	}

	if err := kctx.Run(rt); err != nil {
		fmt.Fprintf(stderr, "rushin: %v\n", err)
		if analyzer.IsInputError(err) {
			return exitInput
		}
		return 1
	}
	return 0
}
