// Package palette supplies the default styles for capture groups without
// an explicit override.
package palette

import "retint/internal/style"

// Default is the palette cycled through for unstyled capture groups: the
// six standard hues in ANSI order, then their bright variants. Black and
// white are left out on purpose, one of them is invisible on almost any
// terminal background.
var Default = []style.Style{
	style.Named(1),  // red
	style.Named(2),  // green
	style.Named(3),  // yellow
	style.Named(4),  // blue
	style.Named(5),  // magenta
	style.Named(6),  // cyan
	style.Named(9),  // bright_red
	style.Named(10), // bright_green
	style.Named(11), // bright_yellow
	style.Named(12), // bright_blue
	style.Named(13), // bright_magenta
	style.Named(14), // bright_cyan
}

// Cycler hands out palette entries in order, wrapping around at the end.
// One cycler lives per process run and is advanced only during the
// one-time group resolution pass, never per line.
type Cycler struct {
	styles []style.Style
	next   int
}

func NewCycler(styles []style.Style) *Cycler {
	if len(styles) == 0 {
		panic("palette: empty palette")
	}
	return &Cycler{styles: styles}
}

func (c *Cycler) Next() style.Style {
	s := c.styles[c.next%len(c.styles)]
	c.next++
	return s
}
