package vulcan

import (
	"context"
	"fmt"
	"os"

	"github.com/vulcanutils/vulcan/internal/types"
)

// Env returns middleware that gates a call on an environment
// variable. With no accepted values the call runs whenever the
// variable is present, even empty; otherwise its value must equal one
// of the accepted strings. A gated call does not run and returns the
// zero value with ErrSkipped; use IsSkipped to tell the skip apart
// from a failure.
func Env[T any](variable string, accepted ...string) Middleware[T] {
	return func(next Func[T]) Func[T] {
		return func(ctx context.Context) (T, error) {
			value, present := os.LookupEnv(variable)
			if envAllows(value, present, accepted) {
				return next(ctx)
			}
			var zero T
			return zero, fmt.Errorf("%w: %s=%q", types.ErrSkipped, variable, value)
		}
	}
}

func envAllows(value string, present bool, accepted []string) bool {
	if len(accepted) == 0 {
		return present
	}
	for _, want := range accepted {
		if value == want {
			return true
		}
	}
	return false
}
