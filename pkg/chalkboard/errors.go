// errors.go — Error values returned by the texture generator.
package chalkboard

import (
	"errors"
	"fmt"
)

var (
	// ErrRange is matched by every *RangeError.
	ErrRange = errors.New("parameter out of range")

	// ErrColor is returned for color strings that cannot be parsed.
	ErrColor = errors.New("invalid color")
)

// RangeError reports a numeric parameter that would produce an invalid
// sampling range. The generator never clamps these values.
type RangeError struct {
	Param  string
	Value  int
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s=%d out of range: %s", e.Param, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrRange) succeed for any RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

func rangeErr(param string, value int, format string, args ...any) error {
	return &RangeError{Param: param, Value: value, Reason: fmt.Sprintf(format, args...)}
}
