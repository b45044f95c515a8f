// Package retint provides the pipeline behind the retint command: compile
// a pattern, resolve a style for every capture group once, then rewrite
// matching input lines with each captured span wrapped in ANSI escapes.
//
// Example usage:
//
//	runner, err := retint.New(retint.Options{
//		Pattern:   `(?P<addr>\d+\.\d+\.\d+\.\d+)`,
//		Overrides: []string{"addr=green,underline"},
//		Color:     true,
//	})
//	if err != nil {
//		return err
//	}
//	return runner.Run(os.Stdin, os.Stdout)
package retint

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"retint/internal/colorize"
	"retint/internal/logging"
	"retint/internal/palette"
	"retint/internal/style"
	"retint/internal/transcode"
)

// Type aliases for the public API
type (
	// Style is a terminal style: at most one color plus text attributes.
	Style = style.Style

	// Overrides maps capture-group identifiers to explicit styles.
	Overrides = style.Overrides

	// Group identifies one capture group of the pattern.
	Group = colorize.Group
)

// ErrBadPattern reports a regular expression that failed to compile.
var ErrBadPattern = errors.New("invalid regular expression")

// Options configures a Runner. All validation happens in New, before any
// input is read.
type Options struct {
	// Pattern is the single-line regular expression matched against each
	// input line. Named groups use the (?P<name>...) form.
	Pattern string

	// Overrides are the key=style[,style...] arguments mapping group
	// names or 1-based positions to explicit styles.
	Overrides []string

	// Encoding names the input encoding: "utf8" (default), "cp437",
	// "cp850" or "iso-8859-1". Output is always UTF-8.
	Encoding string

	// Color controls whether ANSI escapes are emitted at all. When false
	// every line passes through untouched.
	Color bool
}

// Runner holds the compiled pattern and resolved group styles. It is
// immutable after New and safe to reuse across inputs.
type Runner struct {
	colorizer *colorize.Colorizer
	decoder   func(io.Reader) io.Reader
	color     bool
	log       zerolog.Logger
}

// New validates opts and precomputes the per-group styles. Group styles
// are resolved exactly once here: group identity is static across lines,
// so group N wears the same style on every line of the run.
func New(opts Options) (*Runner, error) {
	re, err := regexp.Compile(opts.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadPattern, opts.Pattern, err)
	}

	overrides, err := style.ParseOverrides(opts.Overrides)
	if err != nil {
		return nil, err
	}

	dec, err := transcode.Decoder(opts.Encoding)
	if err != nil {
		return nil, err
	}

	c := colorize.New(re, overrides, palette.NewCycler(palette.Default))

	logger := logging.GetLogger("retint")
	for i, g := range colorize.Groups(re) {
		e := logger.Debug().Int("ordinal", g.Ordinal).Str("style", c.Styles()[i].String())
		if g.Name != "" {
			e = e.Str("name", g.Name)
		}
		e.Msg("resolved group style")
	}

	return &Runner{
		colorizer: c,
		decoder:   func(r io.Reader) io.Reader { return transcode.NewReader(r, dec) },
		color:     opts.Color,
		log:       logger,
	}, nil
}

// Run streams in to out one line at a time: read, colorize, write. Line
// order and count are preserved, blank lines included, and a final line
// without a trailing newline is emitted without fabricating one. Nothing
// is buffered beyond the line being processed.
func (r *Runner) Run(in io.Reader, out io.Writer) error {
	br := bufio.NewReader(r.decoder(in))

	var lines, matched int
	for {
		line, err := br.ReadString('\n')

		if line != "" {
			lines++
			body, eol := splitEOL(line)
			if r.color {
				var ok bool
				body, ok = r.colorizer.Line(body)
				if ok {
					matched++
				}
			}
			if _, werr := io.WriteString(out, body+eol); werr != nil {
				return fmt.Errorf("writing output: %w", werr)
			}
		}

		if err == io.EOF {
			r.log.Debug().Int("lines", lines).Int("matched", matched).Msg("input drained")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

// splitEOL separates a line's body from its ending so the body can be
// matched on its own and the ending re-attached verbatim (CRLF input
// stays CRLF, a final line without a newline gains none).
func splitEOL(line string) (body, eol string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}
