package course

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec matches every InvalidSpecError via errors.Is.
var ErrInvalidSpec = errors.New("course: invalid level spec")

// InvalidSpecError reports a level spec that does not match ^x[0-5x.]*x$.
type InvalidSpecError struct {
	Spec   string
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("course: invalid level spec %q: %s", e.Spec, e.Reason)
}

// Is reports whether target is ErrInvalidSpec.
func (e *InvalidSpecError) Is(target error) bool { return target == ErrInvalidSpec }

// IsValidSpec reports whether spec is a well-formed level spec.
func IsValidSpec(spec string) bool { return validate(spec) == nil }

func validate(spec string) error {
	invalid := func(reason string) error { return &InvalidSpecError{Spec: spec, Reason: reason} }

	switch {
	case spec == "":
		return invalid("empty")
	case len(spec) < 2:
		return invalid("need at least a start and a goal checkpoint")
	case spec[0] != 'x':
		return invalid("must start with checkpoint 'x'")
	case spec[len(spec)-1] != 'x':
		return invalid("must end with checkpoint 'x'")
	}

	for i := 1; i < len(spec)-1; i++ {
		switch ch := spec[i]; {
		case ch == 'x', ch == '.', ch >= '0' && ch <= '5':
		default:
			return invalid(fmt.Sprintf("unexpected character %q at %d", ch, i))
		}
	}
	return nil
}
