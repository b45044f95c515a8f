package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"retint/internal/logging"
	"retint/pkg/retint"
)

var version = "dev"

type cli struct {
	Regex  string   `arg:"" help:"Regular expression matched against each input line. Capture groups are styled by name or 1-based position."`
	Styles []string `arg:"" optional:"" help:"Style overrides of the form key=style[,style...], e.g. two=green,underline or 1=#ff8800."`

	Color    string           `help:"When to emit ANSI escapes." enum:"auto,always,never" default:"auto"`
	Encoding string           `help:"Input encoding." enum:"utf8,cp437,cp850,iso-8859-1" default:"utf8"`
	Verbose  int              `short:"v" type:"counter" help:"Increase log verbosity (repeatable)."`
	Version  kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("retint"),
		kong.Description("Colorize command output by matching each line against a regular expression and styling its capture groups."),
		kong.Vars{"version": version},
	)

	logging.Setup(args.Verbose)
	logger := logging.GetLogger("main")
	logger.Debug().
		Str("regex", args.Regex).
		Strs("styles", args.Styles).
		Str("color", args.Color).
		Str("encoding", args.Encoding).
		Msg("parsed arguments")

	runner, err := retint.New(retint.Options{
		Pattern:   args.Regex,
		Overrides: args.Styles,
		Encoding:  args.Encoding,
		Color:     colorEnabled(args.Color),
	})
	ctx.FatalIfErrorf(err)

	// retint only makes sense on the receiving end of a pipe.
	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintf(os.Stderr, "retint: no input on stdin, pipe a command into it: some-command | retint <regex> [key=styles ...]\n")
		os.Exit(1)
	}

	ctx.FatalIfErrorf(runner.Run(os.Stdin, os.Stdout))
}

func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}
