package commons

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is matched by every UnknownVariantError.
var ErrUnknownVariant = errors.New("unknown enum variant")

// UnknownVariantError reports a wire string that is not one of the known
// spellings of an enumeration.
type UnknownVariantError struct {
	Enum  string
	Value string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant: '%s'", e.Enum, e.Value)
}

func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

func unknown(enum, value string) error {
	return &UnknownVariantError{Enum: enum, Value: value}
}
