package argsv

import (
	"fmt"
	"slices"
)

// Wrapped is a function guarded by a pattern. Each call validates its
// arguments first and only invokes the function when every validator accepts.
type Wrapped struct {
	fn      *Func
	pattern *Pattern
	opts    []Option
}

// Wrap builds the pattern once and checks its names against fn's declared
// parameters. Per-call matching and validation happen in Call and CallKw.
//
// Example:
//
//	f := argsv.MustFunc(func(a, b int) int { return a + b }, argsv.Arg("a"), argsv.Arg("b"))
//	sum, err := argsv.Wrap(f, argsv.Spec{"b": func(x int) bool { return x > 0 }})
//	if err != nil {
//		return err
//	}
//	out, err := sum.Call(9, -1) // *ValidationError for parameter "b"
func Wrap(fn *Func, spec any, opts ...Option) (*Wrapped, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: 'nil'", ErrNotCallable)
	}
	p, err := NewPattern(spec)
	if err != nil {
		return nil, err
	}
	if _, err := p.MatchSignature(fn); err != nil {
		return nil, err
	}
	return &Wrapped{fn: fn, pattern: p, opts: slices.Clone(opts)}, nil
}

// MustWrap is like Wrap but panics on error.
func MustWrap(fn *Func, spec any, opts ...Option) *Wrapped {
	w, err := Wrap(fn, spec, opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// Func returns the guarded function.
func (w *Wrapped) Func() *Func { return w.fn }

// Pattern returns the pattern applied on each call.
func (w *Wrapped) Pattern() *Pattern { return w.pattern }

// Call validates positional arguments and invokes the function.
func (w *Wrapped) Call(args ...any) ([]any, error) {
	return w.CallKw(args, nil)
}

// CallKw validates positional and keyword arguments and invokes the function.
// The results are returned unchanged. On any error the function is not called.
func (w *Wrapped) CallKw(args []any, kwargs map[string]any) ([]any, error) {
	inv, err := New(w.fn, w.pattern, args, kwargs, w.opts...)
	if err != nil {
		return nil, err
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	bound, err := w.fn.sig.Bind(inv.args, inv.kwargs)
	if err != nil {
		return nil, err
	}
	return w.fn.Call(bound)
}

// Guard1 wraps a single-argument function whose parameter is named param.
//
// Example:
//
//	double, _ := argsv.Guard1(func(a int) int { return a * 2 }, "a",
//		argsv.Spec{"a": func(x int) bool { return x >= 0 }})
//	v, err := double(21) // 42, nil
func Guard1[A, R any](fn func(A) R, param string, spec any, opts ...Option) (func(A) (R, error), error) {
	f, err := NewFunc(fn, Arg(param))
	if err != nil {
		return nil, err
	}
	w, err := Wrap(f, spec, opts...)
	if err != nil {
		return nil, err
	}
	return func(a A) (R, error) {
		var zero R
		out, err := w.Call(a)
		if err != nil {
			return zero, err
		}
		r, _ := out[0].(R)
		return r, nil
	}, nil
}
