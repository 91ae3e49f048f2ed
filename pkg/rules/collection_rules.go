package rules

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/dmitrymomot/argsv"
)

// ElementError reports which element of a collection was rejected.
type ElementError struct {
	// Index is the element position for slices and arrays, or the map key.
	Index any
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %v: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// Len applies inner to the length of a string, slice, array, map or channel.
func Len(inner argsv.Validator) Rule {
	return New(fmt.Sprintf("len(%s)", inner.Name()), func(value any) error {
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
			return inner.Validate(rv.Len())
		default:
			return fmt.Errorf("%w: object of type %s has no length", ErrNotIterable, typeString(value))
		}
	})
}

// Index applies inner to element i of a slice, array or string.
// Negative indexes count from the end.
func Index(i int, inner argsv.Validator) Rule {
	return New(fmt.Sprintf("index(%d, %s)", i, inner.Name()), func(value any) error {
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.String, reflect.Slice, reflect.Array:
		default:
			return fmt.Errorf("%w: object of type %s is not indexable", ErrNotIterable, typeString(value))
		}
		j := i
		if j < 0 {
			j += rv.Len()
		}
		if j < 0 || j >= rv.Len() {
			return fmt.Errorf("%w: index %d with length %d", ErrIndex, i, rv.Len())
		}
		return inner.Validate(rv.Index(j).Interface())
	})
}

// Each applies inner to every element of a slice or array, in order,
// and stops at the first rejection.
func Each(inner argsv.Validator) Rule {
	return New(fmt.Sprintf("each(%s)", inner.Name()), func(value any) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return fmt.Errorf("%w: object of type %s", ErrNotIterable, typeString(value))
		}
		for i := range rv.Len() {
			if err := inner.Validate(rv.Index(i).Interface()); err != nil {
				return &ElementError{Index: i, Err: err}
			}
		}
		return nil
	})
}

// EachKey applies inner to every key of a map.
// Keys are visited in the order of their formatted representation.
func EachKey(inner argsv.Validator) Rule {
	return eachMap("eachkey", inner, func(k, _ reflect.Value) any { return k.Interface() })
}

// EachValue applies inner to every value of a map, visiting keys as EachKey does.
func EachValue(inner argsv.Validator) Rule {
	return eachMap("eachvalue", inner, func(_, v reflect.Value) any { return v.Interface() })
}

func eachMap(op string, inner argsv.Validator, pick func(k, v reflect.Value) any) Rule {
	return New(fmt.Sprintf("%s(%s)", op, inner.Name()), func(value any) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Map {
			return fmt.Errorf("%w: expected a map, got %s", ErrNotIterable, typeString(value))
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return compareFormatted(a.Interface(), b.Interface())
		})
		for _, k := range keys {
			if err := inner.Validate(pick(k, rv.MapIndex(k))); err != nil {
				return &ElementError{Index: k.Interface(), Err: err}
			}
		}
		return nil
	})
}

func compareFormatted(a, b any) int {
	sa, sb := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}
