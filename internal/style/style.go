package style

import (
	"fmt"
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// COLOR
/////////////////////////////////////////////////////////////////////////////

type ColorKind int

const (
	ColorNone  ColorKind = iota
	ColorNamed           // 0-15 (codes 30-37, 90-97)
	ColorRGB             // 24-bit (code 38;2;r;g;b)
)

type Color struct {
	Kind    ColorKind
	Index   uint8 // named color index, 0-15
	R, G, B uint8
}

func (c Color) IsNone() bool {
	return c.Kind == ColorNone
}

func (c Color) String() string {
	switch c.Kind {
	case ColorNone:
		return "none"
	case ColorNamed:
		return fmt.Sprintf("named:%d", c.Index)
	case ColorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return "unknown"
}

/////////////////////////////////////////////////////////////////////////////
// STYLE
/////////////////////////////////////////////////////////////////////////////

// Style is an immutable value combining at most one foreground color with
// any number of text attributes. The zero value styles nothing.
type Style struct {
	Fg            Color
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Blink         bool
	Hidden        bool
	Strikethrough bool
}

func (s Style) IsZero() bool {
	return s == Style{}
}

// Merge combines two styles: other's color replaces s's when set, and
// attributes accumulate. Attributes form a set, so merging the same
// attribute twice is a no-op.
func (s Style) Merge(other Style) Style {
	if !other.Fg.IsNone() {
		s.Fg = other.Fg
	}
	s.Bold = s.Bold || other.Bold
	s.Dim = s.Dim || other.Dim
	s.Italic = s.Italic || other.Italic
	s.Underline = s.Underline || other.Underline
	s.Blink = s.Blink || other.Blink
	s.Hidden = s.Hidden || other.Hidden
	s.Strikethrough = s.Strikethrough || other.Strikethrough
	return s
}

// Apply wraps text in the SGR sequence for s, closed with a reset so the
// styling never leaks into following output. An empty style returns the
// text untouched.
func (s Style) Apply(text string) string {
	if s.IsZero() {
		return text
	}
	return "\x1b[" + strings.Join(s.codes(), ";") + "m" + text + "\x1b[0m"
}

func (s Style) codes() []string {
	var codes []string

	switch s.Fg.Kind {
	case ColorNamed:
		if s.Fg.Index < 8 {
			codes = append(codes, fmt.Sprintf("%d", 30+s.Fg.Index))
		} else {
			codes = append(codes, fmt.Sprintf("%d", 82+s.Fg.Index))
		}
	case ColorRGB:
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", s.Fg.R, s.Fg.G, s.Fg.B))
	}

	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Italic {
		codes = append(codes, "3")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if s.Blink {
		codes = append(codes, "5")
	}
	if s.Hidden {
		codes = append(codes, "8")
	}
	if s.Strikethrough {
		codes = append(codes, "9")
	}

	return codes
}

func (s Style) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("fg:%s", s.Fg.String()))

	for _, attr := range []struct {
		name string
		on   bool
	}{
		{"bold", s.Bold},
		{"dim", s.Dim},
		{"italic", s.Italic},
		{"underline", s.Underline},
		{"blink", s.Blink},
		{"hidden", s.Hidden},
		{"strikethrough", s.Strikethrough},
	} {
		if attr.on {
			parts = append(parts, attr.name)
		}
	}

	return strings.Join(parts, ",")
}
