package argsv

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
)

// Spec is the usual input to NewPattern: parameter name to a Validator or a
// single-parameter function.
type Spec map[string]any

// Pattern maps parameter names to validators.
// It is validated on construction and immutable afterwards.
type Pattern struct {
	validators map[string]Validator
	names      []string
}

// NewPattern builds a Pattern from any map with string keys whose values are
// Validators or single-parameter functions. Functions are wrapped as
// PredicateValidators.
//
// Example:
//
//	p, err := argsv.NewPattern(argsv.Spec{
//		"a": rules.TypeOf[int](),
//		"b": func(x int) bool { return x > 0 },
//	})
func NewPattern(spec any) (*Pattern, error) {
	if p, ok := spec.(*Pattern); ok && p != nil {
		return p, nil
	}

	rv := reflect.ValueOf(spec)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: patterns must be defined as a map, received %s", ErrInvalidPattern, typeName(spec))
	}
	if rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: all pattern keys must be strings, received keys of type %s",
			ErrInvalidPattern, rv.Type().Key())
	}

	validators := make(map[string]Validator, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		name := it.Key().String()
		value := it.Value().Interface()
		v, err := toValidator(value)
		if err != nil {
			return nil, fmt.Errorf("%w: parameter '%s': %w", ErrInvalidPattern, name, err)
		}
		validators[name] = v
	}

	return &Pattern{
		validators: validators,
		names:      slices.Sorted(maps.Keys(validators)),
	}, nil
}

// MustPattern is like NewPattern but panics on error.
func MustPattern(spec any) *Pattern {
	p, err := NewPattern(spec)
	if err != nil {
		panic(err)
	}
	return p
}

// Validator returns the validator registered for name.
func (p *Pattern) Validator(name string) (Validator, error) {
	v, ok := p.validators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %w: '%s'", ErrInvalidPattern, ErrNoValidator, name)
	}
	return v, nil
}

// Len returns the number of entries.
func (p *Pattern) Len() int { return len(p.names) }

// Names returns the parameter names in iteration order.
func (p *Pattern) Names() []string { return slices.Clone(p.names) }

// All iterates over (name, validator) pairs sorted by name.
// The order carries no meaning: entries are independent of each other.
func (p *Pattern) All() iter.Seq2[string, Validator] {
	return func(yield func(string, Validator) bool) {
		for _, name := range p.names {
			if !yield(name, p.validators[name]) {
				return
			}
		}
	}
}

// Match checks that every pattern key is a parameter bound by the given call.
// Binding errors are returned unchanged. No validator is applied.
func (p *Pattern) Match(c Callable, args []any, kwargs map[string]any) (*Pattern, error) {
	sig, err := signatureOf(c)
	if err != nil {
		return nil, err
	}
	bound, err := sig.Bind(args, kwargs)
	if err != nil {
		return nil, err
	}
	for _, name := range p.names {
		if _, ok := bound[name]; !ok {
			return nil, mismatch(sig, name)
		}
	}
	return p, nil
}

// MatchSignature checks the pattern keys against the declared parameter
// names only, independently of any call.
func (p *Pattern) MatchSignature(c Callable) (*Pattern, error) {
	sig, err := signatureOf(c)
	if err != nil {
		return nil, err
	}
	for _, name := range p.names {
		if !sig.Has(name) {
			return nil, mismatch(sig, name)
		}
	}
	return p, nil
}

func mismatch(sig *Signature, name string) error {
	return fmt.Errorf("%w: %w: there is no parameter named '%s' in callable %s",
		ErrInvalidPattern, ErrPatternMismatch, name, sig)
}

func signatureOf(c Callable) (*Signature, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: 'nil'", ErrNotCallable)
	}
	if rv := reflect.ValueOf(c); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, fmt.Errorf("%w: '%s'", ErrNotCallable, rv.Type())
	}
	sig := c.CallableSignature()
	if sig == nil {
		return nil, fmt.Errorf("%w: callable has no signature", ErrNotCallable)
	}
	return sig, nil
}
