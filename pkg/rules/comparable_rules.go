package rules

import (
	"cmp"
	"fmt"
	"reflect"
)

// Eq accepts values deeply equal to want.
func Eq(want any) Rule {
	return New(fmt.Sprintf("eq(%v)", want), func(value any) error {
		if !reflect.DeepEqual(value, want) {
			return fmt.Errorf("%w: %v != %v", ErrNotEqual, value, want)
		}
		return nil
	})
}

// Ne rejects values deeply equal to other.
func Ne(other any) Rule {
	return New(fmt.Sprintf("ne(%v)", other), func(value any) error {
		if reflect.DeepEqual(value, other) {
			return fmt.Errorf("%w: %v == %v", ErrEqual, value, other)
		}
		return nil
	})
}

// Gt accepts values of type T greater than bound.
func Gt[T cmp.Ordered](bound T) Rule {
	return ordered("gt", bound, func(v T) bool { return v > bound }, "must be greater than %v")
}

// Ge accepts values of type T greater than or equal to bound.
func Ge[T cmp.Ordered](bound T) Rule {
	return ordered("ge", bound, func(v T) bool { return v >= bound }, "must be at least %v")
}

// Lt accepts values of type T less than bound.
func Lt[T cmp.Ordered](bound T) Rule {
	return ordered("lt", bound, func(v T) bool { return v < bound }, "must be less than %v")
}

// Le accepts values of type T less than or equal to bound.
func Le[T cmp.Ordered](bound T) Rule {
	return ordered("le", bound, func(v T) bool { return v <= bound }, "must be at most %v")
}

// FromTo accepts values of type T within [lo, hi].
func FromTo[T cmp.Ordered](lo, hi T) Rule {
	return New(fmt.Sprintf("fromto(%v, %v)", lo, hi), func(value any) error {
		v, ok := value.(T)
		if !ok {
			return fmt.Errorf("%w: expected %T, got %s", ErrType, lo, typeString(value))
		}
		if v < lo || v > hi {
			return fmt.Errorf("%w: %v must be between %v and %v", ErrOutOfRange, v, lo, hi)
		}
		return nil
	})
}

func ordered[T cmp.Ordered](op string, bound T, ok func(T) bool, msg string) Rule {
	return New(fmt.Sprintf("%s(%v)", op, bound), func(value any) error {
		v, isT := value.(T)
		if !isT {
			return fmt.Errorf("%w: expected %T, got %s", ErrType, bound, typeString(value))
		}
		if !ok(v) {
			return fmt.Errorf("%w: %v "+msg, ErrOutOfRange, v, bound)
		}
		return nil
	})
}
