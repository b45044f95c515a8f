package style

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedOverride reports an override argument without a
	// key=value shape.
	ErrMalformedOverride = errors.New("malformed style override")

	// ErrDuplicateKey reports two overrides targeting the same capture
	// group in one invocation.
	ErrDuplicateKey = errors.New("duplicate style override")
)

// Overrides maps a capture-group identifier (a group name, or the decimal
// form of a 1-based position for unnamed groups) to its explicit style.
type Overrides map[string]Style

// ParseOverrides builds the override map from arguments of the form
// key=style[,style...]. Splitting is on the first "=" only. Repeating a
// key is rejected rather than letting the later value win, so an argument
// that silently contradicts an earlier one fails loudly like every other
// bad invocation.
func ParseOverrides(args []string) (Overrides, error) {
	overrides := make(Overrides, len(args))
	for _, arg := range args {
		key, spec, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q (format is key=style[,style...])", ErrMalformedOverride, arg)
		}
		if _, dup := overrides[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}

		s, err := Parse(spec)
		if err != nil {
			return nil, err
		}
		overrides[key] = s
	}
	return overrides, nil
}
