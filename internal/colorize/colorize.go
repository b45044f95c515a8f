// Package colorize rewrites lines of text by wrapping the capture groups
// of a regular expression match in ANSI styling.
package colorize

import (
	"regexp"
	"strconv"
	"strings"

	"retint/internal/palette"
	"retint/internal/style"
)

// Group identifies one capture group of a pattern. Named groups are
// matched against overrides by name; unnamed ones by their 1-based
// position.
type Group struct {
	Ordinal int
	Name    string // empty when the group is unnamed
}

// Key returns the identifier used for override lookup.
func (g Group) Key() string {
	if g.Name != "" {
		return g.Name
	}
	return strconv.Itoa(g.Ordinal)
}

// Groups enumerates the capture groups of re in left-to-right order of
// appearance in the pattern source. The whole-match pseudo-group 0 is not
// included.
func Groups(re *regexp.Regexp) []Group {
	names := re.SubexpNames()
	groups := make([]Group, 0, len(names)-1)
	for i, name := range names[1:] {
		groups = append(groups, Group{Ordinal: i + 1, Name: name})
	}
	return groups
}

// Resolve assigns a style to every group, in ordinal order: the explicit
// override when one exists, otherwise the next palette entry. Overridden
// groups do not advance the cycler, so the default sequence seen by the
// remaining groups is the same no matter which groups are overridden.
// The result is indexed by ordinal-1 and reused for every line.
func Resolve(groups []Group, overrides style.Overrides, cycler *palette.Cycler) []style.Style {
	styles := make([]style.Style, len(groups))
	for i, g := range groups {
		if s, ok := overrides[g.Key()]; ok {
			styles[i] = s
			continue
		}
		styles[i] = cycler.Next()
	}
	return styles
}

// Colorizer holds the compiled pattern and the per-group styles resolved
// once at startup. It is read-only afterwards.
type Colorizer struct {
	re     *regexp.Regexp
	styles []style.Style
}

func New(re *regexp.Regexp, overrides style.Overrides, cycler *palette.Cycler) *Colorizer {
	return &Colorizer{
		re:     re,
		styles: Resolve(Groups(re), overrides, cycler),
	}
}

// Styles exposes the resolved per-group styles, indexed by ordinal-1.
func (c *Colorizer) Styles() []style.Style {
	return c.styles
}

// Line styles the capture groups of the first match of the pattern in
// line and reports whether the pattern matched. Lines that do not match
// are returned unchanged, byte for byte.
//
// Group spans within one match can be nested or adjacent but never
// overlap, so a single left-to-right pass tracking the last copied offset
// suffices. A group absent from the match (an untaken alternation branch)
// has no span and is skipped, as is a group nested inside an already
// styled outer span. The overall match span itself is never styled.
func (c *Colorizer) Line(line string) (string, bool) {
	m := c.re.FindStringSubmatchIndex(line)
	if m == nil {
		return line, false
	}

	var b strings.Builder
	b.Grow(len(line) + 16*len(c.styles))

	last := 0
	for g := 1; 2*g < len(m); g++ {
		start, end := m[2*g], m[2*g+1]
		if start < 0 || start < last {
			continue
		}
		b.WriteString(line[last:start])
		b.WriteString(c.styles[g-1].Apply(line[start:end]))
		last = end
	}
	b.WriteString(line[last:])

	return b.String(), true
}
