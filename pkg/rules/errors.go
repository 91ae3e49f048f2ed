package rules

import "errors"

// Rejection causes reported by the rules in this package.
var (
	// ErrType is returned when a value is not of the expected Go type.
	ErrType = errors.New("unexpected type")

	// ErrNotEqual is returned by Eq when the value differs from the expected one.
	ErrNotEqual = errors.New("value is not equal")

	// ErrEqual is returned by Ne when the value equals the forbidden one.
	ErrEqual = errors.New("value is equal")

	// ErrOutOfRange is returned by ordering rules when a bound is violated.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotIterable is returned when a collection rule receives a non-collection.
	ErrNotIterable = errors.New("value is not iterable")

	// ErrIndex is returned by Index when the index is out of bounds.
	ErrIndex = errors.New("index out of range")

	// ErrNegated is returned by Not when the inner validator accepts.
	ErrNegated = errors.New("value satisfies negated validator")

	// ErrInvalidTag is returned when a validation tag cannot be compiled.
	ErrInvalidTag = errors.New("invalid validation tag")
)
