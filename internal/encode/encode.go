// Package encode serializes values to JSON with a permissive fallback
// for types the encoder does not natively support.
package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/vulcanutils/vulcan/internal/types"
)

// JSONSerializer implements types.Serializer with the fallback rules
// of Marshal and Unmarshal.
type JSONSerializer struct{}

func (JSONSerializer) Marshal(v any) ([]byte, error)         { return Marshal(v) }
func (JSONSerializer) Unmarshal(data []byte, dest any) error { return Unmarshal(data, dest) }

// Marshal encodes v as JSON. Values the standard encoder rejects are
// retried with a fallback representation applied per element:
// fmt.Stringer and error values become their string form, structs
// become a map of their exported fields, maps and slices keep their
// shape with each member converted in turn, and anything else becomes
// its fmt verb rendering. Non-finite floats cannot be represented in
// JSON and return types.ErrSerialization.
func Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err == nil {
		return data, nil
	}
	if isNonFinite(err) {
		return nil, types.NewCacheError("marshal", "", "json", fmt.Errorf("%w: %v", types.ErrSerialization, err))
	}
	return marshalFallback(v)
}

// Unmarshal decodes JSON data into dest, mapping decode failures to
// types.ErrSerialization.
func Unmarshal(data []byte, dest any) error {
	if err := json.Unmarshal(data, dest); err != nil {
		return types.NewCacheError("unmarshal", "", "json", fmt.Errorf("%w: %v", types.ErrSerialization, err))
	}
	return nil
}

func isNonFinite(err error) bool {
	var unsupported *json.UnsupportedValueError
	if !errors.As(err, &unsupported) {
		return false
	}
	k := unsupported.Value.Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

func marshalFallback(v any) ([]byte, error) {
	return json.Marshal(sanitize(reflect.ValueOf(v)))
}

// sanitize rewrites a value into a tree the standard encoder accepts,
// descending into maps, slices, and struct fields so one awkward
// member does not collapse the whole container into a string.
func sanitize(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	if rv.CanInterface() {
		v := rv.Interface()
		switch s := v.(type) {
		case fmt.Stringer:
			return s.String()
		case error:
			return s.Error()
		}
		if _, err := json.Marshal(v); err == nil {
			return v
		}
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return sanitize(rv.Elem())
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = sanitize(iter.Value())
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = sanitize(rv.Index(i))
		}
		return out
	case reflect.Struct:
		rt := rv.Type()
		out := make(map[string]any, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			if f := rt.Field(i); f.IsExported() {
				out[f.Name] = sanitize(rv.Field(i))
			}
		}
		return out
	}

	if rv.CanInterface() {
		return fmt.Sprintf("%v", rv.Interface())
	}
	return rv.String()
}
