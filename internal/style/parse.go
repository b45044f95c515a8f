package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownToken reports a style word that is neither a recognized color
// or attribute nor a #rrggbb hex literal.
var ErrUnknownToken = errors.New("unknown style token")

var namedColors = map[string]uint8{
	"black":          0,
	"red":            1,
	"green":          2,
	"yellow":         3,
	"blue":           4,
	"magenta":        5,
	"cyan":           6,
	"white":          7,
	"bright_black":   8,
	"bright_red":     9,
	"bright_green":   10,
	"bright_yellow":  11,
	"bright_blue":    12,
	"bright_magenta": 13,
	"bright_cyan":    14,
	"bright_white":   15,
}

// Named returns the style selecting one of the 16 standard terminal
// colors by index.
func Named(index uint8) Style {
	return Style{Fg: Color{Kind: ColorNamed, Index: index}}
}

// ParseToken converts a single comma-free token into a style: a named
// color, a text attribute (synonyms accepted), or a #rrggbb hex color.
func ParseToken(token string) (Style, error) {
	if strings.HasPrefix(token, "#") {
		return parseHex(token)
	}

	if index, ok := namedColors[token]; ok {
		return Named(index), nil
	}

	var s Style
	switch token {
	case "bold", "bolded":
		s.Bold = true
	case "dim", "dimmed":
		s.Dim = true
	case "italic", "italics":
		s.Italic = true
	case "underline", "underlined":
		s.Underline = true
	case "blink", "blinking":
		s.Blink = true
	case "hidden":
		s.Hidden = true
	case "strikethrough", "struckthrough", "strike":
		s.Strikethrough = true
	default:
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}
	return s, nil
}

// Parse folds a comma-separated token list (e.g. "green,underline") into
// one style, left to right. A later color token replaces an earlier one;
// attribute tokens accumulate.
func Parse(spec string) (Style, error) {
	var s Style
	for _, token := range strings.Split(spec, ",") {
		t, err := ParseToken(token)
		if err != nil {
			return Style{}, err
		}
		s = s.Merge(t)
	}
	return s, nil
}

// parseHex expects "#" followed by exactly 6 hex digits, two per channel.
func parseHex(token string) (Style, error) {
	if len(token) != 7 {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}

	channels := [3]uint8{}
	for i := range channels {
		v, err := strconv.ParseUint(token[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return Style{}, fmt.Errorf("%w: %q", ErrUnknownToken, token)
		}
		channels[i] = uint8(v)
	}

	return Style{Fg: Color{
		Kind: ColorRGB,
		R:    channels[0],
		G:    channels[1],
		B:    channels[2],
	}}, nil
}
