package argsv

import (
	"fmt"
	"reflect"
	"strconv"
)

// Func pairs a Go function with the parameter list used to bind calls to it.
// Declared parameters map one-to-one, in order, onto the function's inputs.
type Func struct {
	sig *Signature
	fn  reflect.Value
}

// NewFunc wraps fn. Without params the inputs are named arg0, arg1, ...
// and a variadic last input is named "args".
//
// A variadic last input must be declared as the positional collector. A
// function that takes both collectors declares the positional one as a
// plain slice input, since the keyword collector comes last.
//
// Example:
//
//	f, err := argsv.NewFunc(func(a int, rest ...string) int { return a },
//		argsv.Arg("a"), argsv.Args("rest"))
//
//	g, err := argsv.NewFunc(func(a int, rest []any, opts map[string]any) int { return a },
//		argsv.Arg("a"), argsv.Args("rest"), argsv.Kwargs("opts"))
func NewFunc(fn any, params ...Param) (*Func, error) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, fmt.Errorf("%w: '%s'", ErrNotCallable, typeName(fn))
	}
	rt := rv.Type()

	if len(params) == 0 {
		params = defaultParams(rt)
	}
	if len(params) != rt.NumIn() {
		return nil, fmt.Errorf("%w: %d parameters declared for a function with %d inputs",
			ErrInvalidSignature, len(params), rt.NumIn())
	}
	for i, p := range params {
		in := rt.In(i)
		last := i == rt.NumIn()-1
		switch {
		case rt.IsVariadic() && last && p.Kind != VarPositional:
			return nil, fmt.Errorf("%w: variadic input must be declared as a positional collector, got '%s' (%s)",
				ErrInvalidSignature, p.Name, p.Kind)
		case p.Kind == VarPositional && in.Kind() != reflect.Slice:
			return nil, fmt.Errorf("%w: positional collector '%s' must be a slice or the variadic last input, got %s",
				ErrInvalidSignature, p.Name, in)
		case p.Kind == VarKeyword && (in.Kind() != reflect.Map || in.Key().Kind() != reflect.String):
			return nil, fmt.Errorf("%w: keyword collector '%s' must be a map with string keys, got %s",
				ErrInvalidSignature, p.Name, in)
		}
	}

	sig, err := NewSignature(funcName(rv), params...)
	if err != nil {
		return nil, err
	}
	return &Func{sig: sig, fn: rv}, nil
}

// MustFunc is like NewFunc but panics on error.
func MustFunc(fn any, params ...Param) *Func {
	f, err := NewFunc(fn, params...)
	if err != nil {
		panic(err)
	}
	return f
}

func defaultParams(rt reflect.Type) []Param {
	params := make([]Param, rt.NumIn())
	for i := range params {
		params[i] = Arg("arg" + strconv.Itoa(i))
	}
	if rt.IsVariadic() {
		params[len(params)-1] = Args("args")
	}
	return params
}

// CallableSignature implements Callable.
func (f *Func) CallableSignature() *Signature { return f.sig }

// Signature returns the declared parameter list.
func (f *Func) Signature() *Signature { return f.sig }

// Name returns the function's display name.
func (f *Func) Name() string { return f.sig.Name() }

// Call invokes the function with previously bound arguments and returns its results.
// Values are passed as is; nil becomes the zero value of nillable inputs.
func (f *Func) Call(bound Arguments) ([]any, error) {
	rt := f.fn.Type()
	in := make([]reflect.Value, rt.NumIn())

	for i, p := range f.sig.params {
		var (
			arg reflect.Value
			err error
		)
		switch p.Kind {
		case VarPositional:
			arg, err = sliceArgument(rt.In(i), bound[p.Name])
		case VarKeyword:
			arg, err = mapArgument(rt.In(i), bound[p.Name])
		default:
			arg, err = argumentFor(rt.In(i), bound[p.Name])
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parameter '%s': %w", ErrBinding, p.Name, err)
		}
		in[i] = arg
	}

	var out []reflect.Value
	if rt.IsVariadic() {
		out = f.fn.CallSlice(in)
	} else {
		out = f.fn.Call(in)
	}

	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}
	return results, nil
}

func sliceArgument(t reflect.Type, v any) (reflect.Value, error) {
	if v == nil {
		return reflect.MakeSlice(t, 0, 0), nil
	}
	items, ok := v.([]any)
	if !ok {
		return argumentFor(t, v)
	}
	s := reflect.MakeSlice(t, len(items), len(items))
	for i, item := range items {
		e, err := argumentFor(t.Elem(), item)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		s.Index(i).Set(e)
	}
	return s, nil
}

func mapArgument(t reflect.Type, v any) (reflect.Value, error) {
	if v == nil {
		return reflect.MakeMap(t), nil
	}
	items, ok := v.(map[string]any)
	if !ok {
		return argumentFor(t, v)
	}
	m := reflect.MakeMapWithSize(t, len(items))
	for k, item := range items {
		e, err := argumentFor(t.Elem(), item)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("key '%s': %w", k, err)
		}
		m.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), e)
	}
	return m, nil
}
