package rules

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/argsv"
)

// Rule is a Validator built from a display name and a check function.
type Rule struct {
	name  string
	check func(value any) error
}

// New creates a Rule. The check returns nil to accept the value.
func New(name string, check func(value any) error) Rule {
	return Rule{name: name, check: check}
}

func (r Rule) Name() string { return r.name }

func (r Rule) Validate(value any) error { return r.check(value) }

// TypeOf accepts values whose dynamic type is T, or implements T when T is an interface.
func TypeOf[T any]() Rule {
	want := reflect.TypeFor[T]()
	return New(fmt.Sprintf("typeof(%s)", want), func(value any) error {
		if _, ok := value.(T); !ok {
			return fmt.Errorf("%w: expected %s, got %s", ErrType, want, typeString(value))
		}
		return nil
	})
}

// All applies validators in order and stops at the first rejection.
// It panics on nil entries.
func All(validators ...argsv.Validator) *argsv.CompositeValidator {
	entries := make([]any, len(validators))
	for i, v := range validators {
		entries[i] = v
	}
	return argsv.MustComposite(entries...)
}

// Not rejects values the inner validator accepts.
func Not(inner argsv.Validator) Rule {
	return New(fmt.Sprintf("not(%s)", inner.Name()), func(value any) error {
		if inner.Validate(value) == nil {
			return fmt.Errorf("%w: %s", ErrNegated, inner.Name())
		}
		return nil
	})
}

// Key applies inner to fn(value). A non-nil error from fn rejects the value.
//
// Example:
//
//	rules.Key("upper", func(v any) (any, error) {
//		s, ok := v.(string)
//		if !ok {
//			return nil, rules.ErrType
//		}
//		return strings.ToUpper(s), nil
//	}, rules.Eq("HELLO"))
func Key(name string, fn func(value any) (any, error), inner argsv.Validator) Rule {
	return New(fmt.Sprintf("%s(%s)", name, inner.Name()), func(value any) error {
		k, err := fn(value)
		if err != nil {
			return err
		}
		return inner.Validate(k)
	})
}

func typeString(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
