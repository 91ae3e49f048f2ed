package argsv

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Validator is a unit of validation logic applied to a single value.
// Validate returns nil to accept the value and a non-nil error to reject it.
// Implementations must not mutate shared state so they can be reused across calls.
type Validator interface {
	// Name is a stable display name used in diagnostics.
	Name() string
	// Validate checks a single value.
	Validate(value any) error
}

var errorType = reflect.TypeFor[error]()

// PredicateValidator wraps a function of exactly one parameter.
//
// The function may return nothing, a bool, an error, or a bool and an error.
// A non-nil error rejects the value with that error as the cause.
// A false bool rejects it with a *DefaultValidationError.
// A panic is recovered into a *PanicError.
type PredicateValidator struct {
	name string
	fn   reflect.Value
	in   reflect.Type
}

// Predicate wraps fn as a Validator named after the function's symbol.
//
// Example:
//
//	positive, err := argsv.Predicate(func(x int) bool { return x > 0 })
func Predicate(fn any) (*PredicateValidator, error) {
	return newPredicate("", fn)
}

// Named is like Predicate but uses name as the display name.
func Named(name string, fn any) (*PredicateValidator, error) {
	return newPredicate(name, fn)
}

// MustPredicate is like Predicate but panics on error.
// Useful for package-level validator declarations.
func MustPredicate(fn any) *PredicateValidator {
	p, err := Predicate(fn)
	if err != nil {
		panic(err)
	}
	return p
}

// MustNamed is like Named but panics on error.
func MustNamed(name string, fn any) *PredicateValidator {
	p, err := Named(name, fn)
	if err != nil {
		panic(err)
	}
	return p
}

func newPredicate(name string, fn any) (*PredicateValidator, error) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: '%s' %v", ErrInvalidValidator, typeName(fn), ErrNotCallable)
	}
	if rv.IsNil() {
		return nil, fmt.Errorf("%w: nil function", ErrInvalidValidator)
	}
	if name == "" {
		name = funcName(rv)
	}
	rt := rv.Type()
	if rt.NumIn() != 1 || rt.IsVariadic() {
		return nil, fmt.Errorf("%w: callable '%s' can only have one parameter", ErrInvalidValidator, name)
	}
	return &PredicateValidator{name: name, fn: rv, in: rt.In(0)}, nil
}

// Name returns the wrapped function's display name.
func (p *PredicateValidator) Name() string { return p.name }

// Validate calls the wrapped function with value.
func (p *PredicateValidator) Validate(value any) (err error) {
	arg, err := argumentFor(p.in, value)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Validator: p.name, Value: r}
		}
	}()

	out := p.fn.Call([]reflect.Value{arg})

	for _, o := range out {
		if !o.Type().Implements(errorType) || nillable(o.Type()) && o.IsNil() {
			continue
		}
		return o.Interface().(error)
	}
	if len(out) > 0 && out[0].Kind() == reflect.Bool && !out[0].Bool() {
		return &DefaultValidationError{Validator: p.name}
	}
	return nil
}

// argumentFor converts value into an argument for a parameter of type in.
// Values are never coerced: they must be assignable as is.
func argumentFor(in reflect.Type, value any) (reflect.Value, error) {
	if value == nil {
		if nillable(in) {
			return reflect.Zero(in), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: cannot use <nil> as %s", ErrArgumentType, in)
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(in) {
		return reflect.Value{}, fmt.Errorf("%w: cannot use %s as %s", ErrArgumentType, rv.Type(), in)
	}
	return rv, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// funcName returns the last element of the function's symbol name,
// e.g. "isPositive" or "TestX.func1".
func funcName(fn reflect.Value) string {
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return fn.Type().String()
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// CompositeValidator applies an ordered list of validators with AND semantics.
// It stops at the first rejection and reports it as an *EntryError.
type CompositeValidator struct {
	entries []Validator
}

// Composite builds a CompositeValidator from Validator values and
// single-parameter functions. Functions are wrapped once, here.
func Composite(entries ...any) (*CompositeValidator, error) {
	vs := make([]Validator, 0, len(entries))
	for i, e := range entries {
		v, err := toValidator(e)
		if err != nil {
			return nil, fmt.Errorf("%w (composite entry %d)", err, i+1)
		}
		vs = append(vs, v)
	}
	return &CompositeValidator{entries: vs}, nil
}

// MustComposite is like Composite but panics on error.
func MustComposite(entries ...any) *CompositeValidator {
	c, err := Composite(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// CompositeFrom builds a CompositeValidator from a slice or array value.
func CompositeFrom(seq any) (*CompositeValidator, error) {
	rv := reflect.ValueOf(seq)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: '%s' object is not iterable", ErrInvalidValidator, typeName(seq))
	}
	entries := make([]any, rv.Len())
	for i := range rv.Len() {
		entries[i] = rv.Index(i).Interface()
	}
	return Composite(entries...)
}

// Name returns a static name. The failing entry is reported by EntryError.ValidatorName.
func (c *CompositeValidator) Name() string { return "CompositeValidator" }

// Entries returns a copy of the normalized entries in application order.
func (c *CompositeValidator) Entries() []Validator {
	out := make([]Validator, len(c.entries))
	copy(out, c.entries)
	return out
}

// Validate applies each entry in order and stops at the first rejection.
func (c *CompositeValidator) Validate(value any) error {
	for i, v := range c.entries {
		if err := v.Validate(value); err != nil {
			return &EntryError{Position: i + 1, Entry: v.Name(), Err: err}
		}
	}
	return nil
}

// toValidator normalizes a Validator or a single-parameter function.
func toValidator(v any) (Validator, error) {
	switch t := v.(type) {
	case Validator:
		if t == nil || reflect.ValueOf(t).Kind() == reflect.Pointer && reflect.ValueOf(t).IsNil() {
			return nil, fmt.Errorf("%w: nil validator", ErrInvalidValidator)
		}
		return t, nil
	case nil:
		return nil, fmt.Errorf("%w: values can only be Validators or functions, received <nil>", ErrInvalidValidator)
	}
	if reflect.TypeOf(v).Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: values can only be Validators or functions, received %v of type %s",
			ErrInvalidValidator, v, typeName(v))
	}
	return Predicate(v)
}
