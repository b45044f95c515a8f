// Package transcode converts legacy-codepage input to UTF-8 before it
// enters the line pipeline.
package transcode

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrUnsupported reports an input encoding this tool cannot decode.
var ErrUnsupported = errors.New("unsupported encoding")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decoder resolves an encoding name to its UTF-8 decoder. A nil decoder
// with a nil error means the input is already UTF-8.
// Supported encodings: "utf8" (also ""), "cp437", "cp850", "iso-8859-1".
func Decoder(name string) (*encoding.Decoder, error) {
	switch name {
	case "", "utf8":
		return nil, nil
	case "cp437":
		return charmap.CodePage437.NewDecoder(), nil
	case "cp850":
		return charmap.CodePage850.NewDecoder(), nil
	case "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
}

// NewReader wraps r so it yields UTF-8, decoding through dec when one is
// given and stripping a UTF-8 BOM if present at the start of the stream.
func NewReader(r io.Reader, dec *encoding.Decoder) io.Reader {
	if dec != nil {
		r = transform.NewReader(r, dec)
	}
	return stripBOM(r)
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}
