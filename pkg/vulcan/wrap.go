package vulcan

import (
	"context"
	"reflect"
	"runtime"
	"strings"
)

// Func is the unit the wrappers operate on: a context-aware operation
// producing a value of type T.
type Func[T any] func(ctx context.Context) (T, error)

// Middleware wraps a Func with additional behavior.
type Middleware[T any] func(Func[T]) Func[T]

// CallInfo describes the call a wrapper chain is executing. It is
// carried in the context so middleware can name the function and
// inspect its arguments.
type CallInfo struct {
	Name string
	Args []any
}

type callInfoKey struct{}

// WithCallInfo attaches call metadata to ctx.
func WithCallInfo(ctx context.Context, info *CallInfo) context.Context {
	return context.WithValue(ctx, callInfoKey{}, info)
}

// CallInfoFrom returns the call metadata attached to ctx, or nil.
func CallInfoFrom(ctx context.Context) *CallInfo {
	info, _ := ctx.Value(callInfoKey{}).(*CallInfo)
	return info
}

// Chain applies middleware to fn. The first middleware is outermost:
// Chain(fn, a, b) runs a around b around fn.
func Chain[T any](fn Func[T], mws ...Middleware[T]) Func[T] {
	for i := len(mws) - 1; i >= 0; i-- {
		fn = mws[i](fn)
	}
	return fn
}

// funcName resolves a usable name for fn via the runtime, trimming
// the package path.
func funcName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	return name
}

// Wrap0 binds a no-argument function into a wrapper chain. name may
// be empty, in which case it is resolved from the runtime.
func Wrap0[T any](name string, fn func(context.Context) (T, error), mws ...Middleware[T]) func(context.Context) (T, error) {
	if name == "" {
		name = funcName(fn)
	}
	return func(ctx context.Context) (T, error) {
		ctx = WithCallInfo(ctx, &CallInfo{Name: name})
		return Chain(Func[T](fn), mws...)(ctx)
	}
}

// Wrap1 binds a one-argument function into a wrapper chain.
func Wrap1[A, T any](name string, fn func(context.Context, A) (T, error), mws ...Middleware[T]) func(context.Context, A) (T, error) {
	if name == "" {
		name = funcName(fn)
	}
	return func(ctx context.Context, a A) (T, error) {
		ctx = WithCallInfo(ctx, &CallInfo{Name: name, Args: []any{a}})
		inner := Func[T](func(ctx context.Context) (T, error) { return fn(ctx, a) })
		return Chain(inner, mws...)(ctx)
	}
}

// Wrap2 binds a two-argument function into a wrapper chain.
func Wrap2[A, B, T any](name string, fn func(context.Context, A, B) (T, error), mws ...Middleware[T]) func(context.Context, A, B) (T, error) {
	if name == "" {
		name = funcName(fn)
	}
	return func(ctx context.Context, a A, b B) (T, error) {
		ctx = WithCallInfo(ctx, &CallInfo{Name: name, Args: []any{a, b}})
		inner := Func[T](func(ctx context.Context) (T, error) { return fn(ctx, a, b) })
		return Chain(inner, mws...)(ctx)
	}
}

// Wrap3 binds a three-argument function into a wrapper chain.
func Wrap3[A, B, C, T any](name string, fn func(context.Context, A, B, C) (T, error), mws ...Middleware[T]) func(context.Context, A, B, C) (T, error) {
	if name == "" {
		name = funcName(fn)
	}
	return func(ctx context.Context, a A, b B, c C) (T, error) {
		ctx = WithCallInfo(ctx, &CallInfo{Name: name, Args: []any{a, b, c}})
		inner := Func[T](func(ctx context.Context) (T, error) { return fn(ctx, a, b, c) })
		return Chain(inner, mws...)(ctx)
	}
}
