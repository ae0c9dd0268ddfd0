package vulcan

import (
	"context"

	"github.com/vulcanutils/vulcan/internal/encode"
)

// ToJSON transforms a Func so its result is returned as a JSON
// string. Results the encoder cannot represent natively fall back to
// their string form; see Marshal. Errors from the wrapped call pass
// through unchanged.
func ToJSON[T any](fn Func[T]) Func[string] {
	return func(ctx context.Context) (string, error) {
		result, err := fn(ctx)
		if err != nil {
			return "", err
		}
		data, err := encode.Marshal(result)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

// Marshal encodes v as JSON with a permissive fallback: fmt.Stringer
// and error values become their string form, structs with
// unsupported fields become a map of their exported fields, and
// anything else becomes its fmt rendering. Non-finite floats return
// ErrSerialization.
func Marshal(v any) ([]byte, error) {
	return encode.Marshal(v)
}

// Unmarshal decodes JSON data into dest.
func Unmarshal(data []byte, dest any) error {
	return encode.Unmarshal(data, dest)
}
