package responses

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why a response could not be parsed.
type Kind int

const (
	MissingField Kind = iota + 1
	MalformedField
	UnknownEnumVariant
)

func (k Kind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case MalformedField:
		return "malformed field"
	case UnknownEnumVariant:
		return "unknown enum variant"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	ErrMissingField       = errors.New("missing field")
	ErrMalformedField     = errors.New("malformed field")
	ErrUnknownEnumVariant = errors.New("unknown enum variant")
)

// ParseError identifies the resource, the wire field and the offending value
// of a failed parse. Nested fields are reported with dotted paths, e.g.
// "client_properties.capabilities.basic.nack".
type ParseError struct {
	Resource string
	Field    string
	// Index is the element position for list responses, -1 otherwise.
	Index int
	Kind  Kind
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("failed to parse ")
	b.WriteString(e.Resource)
	if e.Index >= 0 {
		fmt.Fprintf(&b, " at index %d", e.Index)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field '%s'", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Value != "" {
		fmt.Fprintf(&b, " '%s'", e.Value)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	switch e.Kind {
	case MissingField:
		return target == ErrMissingField
	case MalformedField:
		return target == ErrMalformedField
	case UnknownEnumVariant:
		return target == ErrUnknownEnumVariant
	}
	return false
}

// valueError is returned by converters; the decoder turns it into a
// ParseError once the resource and field are known.
type valueError struct {
	kind Kind
	err  error
}

func (e *valueError) Error() string {
	return e.err.Error()
}

func malformed(format string, args ...any) error {
	return &valueError{kind: MalformedField, err: fmt.Errorf(format, args...)}
}
