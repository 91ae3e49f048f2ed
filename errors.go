package argsv

import "errors"

// Construction errors.
var (
	// ErrInvalidValidator is returned when a validator cannot be built from the given input.
	ErrInvalidValidator = errors.New("invalid validator")

	// ErrInvalidPattern is returned when a pattern is malformed or does not fit a callable.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNoValidator is returned when a pattern has no validator for the requested parameter.
	ErrNoValidator = errors.New("there is no validator for this argument")

	// ErrPatternMismatch is returned when a pattern names a parameter the callable does not declare.
	ErrPatternMismatch = errors.New("pattern does not match callable")

	// ErrInvalidSignature is returned when a parameter list cannot describe a callable.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrNotCallable is returned when a value that must be a function is not one.
	ErrNotCallable = errors.New("object is not callable")
)

// Call-time errors.
var (
	// ErrBinding is returned when call arguments cannot be bound to the declared parameters.
	ErrBinding = errors.New("cannot bind arguments")

	// ErrArgumentType is returned when a value cannot be passed to a predicate's parameter.
	ErrArgumentType = errors.New("argument type mismatch")

	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
)
