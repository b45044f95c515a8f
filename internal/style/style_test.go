package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Style
	}{
		{"named_color", "red", Named(1)},
		{"bright_color", "bright_cyan", Named(14)},
		{"attribute", "bold", Style{Bold: true}},
		{"attribute_synonym", "bolded", Style{Bold: true}},
		{"dim_synonym", "dimmed", Style{Dim: true}},
		{"strike_synonym", "strike", Style{Strikethrough: true}},
		{"underline_synonym", "underlined", Style{Underline: true}},
		{"blink_synonym", "blinking", Style{Blink: true}},
		{"italics_synonym", "italics", Style{Italic: true}},
		{"hidden", "hidden", Style{Hidden: true}},
		{"hex_green", "#00ff00", Style{Fg: Color{Kind: ColorRGB, G: 0xff}}},
		{"hex_uppercase", "#FF8800", Style{Fg: Color{Kind: ColorRGB, R: 0xff, G: 0x88}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseToken(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTokenUnknown(t *testing.T) {
	for _, token := range []string{"chartreuse", "#zzzzzz", "#fff", "#ff00ff0", "", "Red"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseToken(token)
			require.ErrorIs(t, err, ErrUnknownToken)
			assert.Contains(t, err.Error(), token)
		})
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("red,bold")
	require.NoError(t, err)
	assert.Equal(t, Style{Fg: Color{Kind: ColorNamed, Index: 1}, Bold: true}, got)

	// a later color token replaces an earlier one
	got, err = Parse("red,green")
	require.NoError(t, err)
	assert.Equal(t, Named(2), got)

	// attributes are a set, repeating one changes nothing
	got, err = Parse("bold,dim,bold")
	require.NoError(t, err)
	assert.Equal(t, Style{Bold: true, Dim: true}, got)

	_, err = Parse("green,chartreuse")
	require.ErrorIs(t, err, ErrUnknownToken)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want string
	}{
		{"named", "red", "\x1b[31mX\x1b[0m"},
		{"bright", "bright_red", "\x1b[91mX\x1b[0m"},
		{"color_and_attr", "green,underline", "\x1b[32;4mX\x1b[0m"},
		{"attr_only", "bold", "\x1b[1mX\x1b[0m"},
		{"rgb", "#00ff00", "\x1b[38;2;0;255;0mX\x1b[0m"},
		{"everything", "blue,bold,strike", "\x1b[34;1;9mX\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Apply("X"))
		})
	}
}

func TestApplyEmptyStyle(t *testing.T) {
	var s Style
	assert.True(t, s.IsZero())
	assert.Equal(t, "unchanged", s.Apply("unchanged"))
}

func TestMergeKeepsColorWhenOtherHasNone(t *testing.T) {
	s := Named(4).Merge(Style{Underline: true})
	assert.Equal(t, Style{Fg: Color{Kind: ColorNamed, Index: 4}, Underline: true}, s)
}
