package responses

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// field maps one wire key of a resource onto its Go structure. Tables of
// fields are the single place where the wire contract of an entity lives.
type field[T any] struct {
	wire     string
	required bool
	decode   func(gjson.Result, *T) error
}

// resource names an entity and the table used to decode it.
type resource[T any] struct {
	name   string
	fields []field[T]
}

func required[T, V any](wire string, conv func(gjson.Result) (V, error), set func(*T, V)) field[T] {
	return field[T]{
		wire:     wire,
		required: true,
		decode: func(r gjson.Result, dst *T) error {
			v, err := conv(r)
			if err != nil {
				return err
			}
			set(dst, v)
			return nil
		},
	}
}

// optional fields decode to nil when the key is absent or null.
func optional[T, V any](wire string, conv func(gjson.Result) (V, error), set func(*T, *V)) field[T] {
	return field[T]{
		wire: wire,
		decode: func(r gjson.Result, dst *T) error {
			if r.Type == gjson.Null {
				set(dst, nil)
				return nil
			}
			v, err := conv(r)
			if err != nil {
				return err
			}
			set(dst, &v)
			return nil
		},
	}
}

// one parses a single JSON object.
func (res resource[T]) one(raw []byte) (*T, error) {
	if !gjson.ValidBytes(raw) {
		return nil, res.invalidJSON(raw)
	}
	v, perr := res.decode(gjson.ParseBytes(raw))
	if perr != nil {
		return nil, perr
	}
	return &v, nil
}

// list parses a JSON array of objects. The first bad element fails the
// whole list.
func (res resource[T]) list(raw []byte) ([]T, error) {
	if !gjson.ValidBytes(raw) {
		return nil, res.invalidJSON(raw)
	}
	node := gjson.ParseBytes(raw)
	if !node.IsArray() {
		return nil, &ParseError{Resource: res.name, Index: -1, Kind: MalformedField, Value: clip(node.Raw), Err: errors.New("expected a JSON array")}
	}

	elems := node.Array()
	out := make([]T, 0, len(elems))
	for i, elem := range elems {
		v, perr := res.decode(elem)
		if perr != nil {
			perr.Index = i
			return nil, perr
		}
		out = append(out, v)
	}
	return out, nil
}

func (res resource[T]) decode(node gjson.Result) (T, *ParseError) {
	var out T
	if !node.IsObject() {
		var zero T
		return zero, &ParseError{Resource: res.name, Index: -1, Kind: MalformedField, Value: clip(node.Raw), Err: errors.New("expected a JSON object")}
	}

	values := node.Map()
	for _, f := range res.fields {
		v, ok := values[f.wire]
		if !ok {
			if f.required {
				var zero T
				return zero, &ParseError{Resource: res.name, Field: f.wire, Index: -1, Kind: MissingField}
			}
			continue
		}
		if err := f.decode(v, &out); err != nil {
			var zero T
			return zero, res.fieldError(f.wire, v, err)
		}
	}
	return out, nil
}

func (res resource[T]) fieldError(wire string, v gjson.Result, err error) *ParseError {
	var nested *ParseError
	if errors.As(err, &nested) {
		path := wire
		if nested.Field != "" {
			path = wire + "." + nested.Field
		}
		return &ParseError{Resource: res.name, Field: path, Index: -1, Kind: nested.Kind, Value: nested.Value, Err: nested.Err}
	}

	perr := &ParseError{Resource: res.name, Field: wire, Index: -1, Kind: MalformedField, Value: rawValue(v), Err: err}
	var ve *valueError
	if errors.As(err, &ve) {
		perr.Kind = ve.kind
		perr.Err = ve.err
	}
	return perr
}

func (res resource[T]) invalidJSON(raw []byte) *ParseError {
	return &ParseError{Resource: res.name, Index: -1, Kind: MalformedField, Value: clip(string(raw)), Err: errors.New("invalid JSON")}
}

// nested decodes a sub-object with its own table; errors keep the dotted
// path of the inner field.
func nested[T any](res resource[T]) func(gjson.Result) (T, error) {
	return func(r gjson.Result) (T, error) {
		v, perr := res.decode(r)
		if perr != nil {
			return v, perr
		}
		return v, nil
	}
}

func enum[E any](parse func(string) (E, error)) func(gjson.Result) (E, error) {
	return func(r gjson.Result) (E, error) {
		var zero E
		s, err := str(r)
		if err != nil {
			return zero, err
		}
		v, err := parse(s)
		if err != nil {
			return zero, &valueError{kind: UnknownEnumVariant, err: err}
		}
		return v, nil
	}
}

func str(r gjson.Result) (string, error) {
	if r.Type != gjson.String {
		return "", malformed("expected string, got %s", r.Type)
	}
	return r.Str, nil
}

func boolean(r gjson.Result) (bool, error) {
	switch r.Type {
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	default:
		return false, malformed("expected boolean, got %s", r.Type)
	}
}

func unsigned(r gjson.Result, bits int) (uint64, error) {
	if r.Type != gjson.Number {
		return 0, malformed("expected number, got %s", r.Type)
	}
	n, err := strconv.ParseUint(r.Raw, 10, bits)
	if err != nil {
		return 0, malformed("not a uint%d: %w", bits, err)
	}
	return n, nil
}

func u16(r gjson.Result) (uint16, error) {
	n, err := unsigned(r, 16)
	return uint16(n), err
}

func u32(r gjson.Result) (uint32, error) {
	n, err := unsigned(r, 32)
	return uint32(n), err
}

func u64(r gjson.Result) (uint64, error) {
	return unsigned(r, 64)
}

func i16(r gjson.Result) (int16, error) {
	if r.Type != gjson.Number {
		return 0, malformed("expected number, got %s", r.Type)
	}
	n, err := strconv.ParseInt(r.Raw, 10, 16)
	if err != nil {
		return 0, malformed("not an int16: %w", err)
	}
	return int16(n), nil
}

func f32(r gjson.Result) (float32, error) {
	if r.Type != gjson.Number {
		return 0, malformed("expected number, got %s", r.Type)
	}
	n, err := strconv.ParseFloat(r.Raw, 32)
	if err != nil {
		return 0, malformed("not a float32: %w", err)
	}
	return float32(n), nil
}

// u32FromString accepts a number or a string holding one, as the broker
// reports some counters (os_pid) as strings.
func u32FromString(r gjson.Result) (uint32, error) {
	var text string
	switch r.Type {
	case gjson.String:
		text = r.Str
	case gjson.Number:
		text = r.Raw
	default:
		return 0, malformed("expected numeric string, got %s", r.Type)
	}
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, malformed("not a uint32: %w", err)
	}
	return uint32(n), nil
}

func strList(r gjson.Result) ([]string, error) {
	if !r.IsArray() {
		return nil, malformed("expected array, got %s", r.Type)
	}
	elems := r.Array()
	out := make([]string, 0, len(elems))
	for i, elem := range elems {
		if elem.Type != gjson.String {
			return nil, malformed("element %d: expected string, got %s", i, elem.Type)
		}
		out = append(out, elem.Str)
	}
	return out, nil
}

// tagList accepts both the array form of user tags and the older
// comma-separated string form.
func tagList(r gjson.Result) ([]string, error) {
	if r.Type != gjson.String {
		return strList(r)
	}
	out := []string{}
	for _, tag := range strings.Split(r.Str, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out, nil
}

// object decodes a free-form JSON object. Integral numbers become int64,
// the rest float64, so large integers survive the round trip.
func object(r gjson.Result) (map[string]any, error) {
	if !r.IsObject() {
		return nil, malformed("expected object, got %s", r.Type)
	}
	out := map[string]any{}
	r.ForEach(func(k, v gjson.Result) bool {
		out[k.Str] = jsonValue(v)
		return true
	})
	return out, nil
}

func jsonValue(r gjson.Result) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.String:
		return r.Str
	case gjson.Number:
		if n, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
			return n
		}
		return r.Num
	}
	if r.IsArray() {
		elems := r.Array()
		out := make([]any, len(elems))
		for i, elem := range elems {
			out[i] = jsonValue(elem)
		}
		return out
	}
	m, _ := object(r)
	return m
}

func rawValue(r gjson.Result) string {
	if r.Type == gjson.String {
		return clip(r.Str)
	}
	return clip(r.Raw)
}

func clip(s string) string {
	const limit = 64
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
