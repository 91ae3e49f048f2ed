package argsv

import (
	"errors"
	"fmt"
	"go/token"
	"reflect"
	"strings"
)

// ValidationError reports the first parameter whose validator rejected its argument.
// It embeds the parameter name, the rejecting validator's display name and the cause.
type ValidationError struct {
	Param     string
	Validator string
	Err       error
}

// Error implements the error interface.
// The last line names the root cause type and message, unwrapping composite entries.
func (e *ValidationError) Error() string {
	cause := RootCause(e.Err)
	var b strings.Builder
	fmt.Fprintf(&b, "validation stopped while checking the argument passed to parameter '%s'\n", e.Param)
	fmt.Fprintf(&b, "from validator: %s\n", e.Validator)
	if cause == nil {
		b.WriteString(" └── <nil>")
		return b.String()
	}
	fmt.Fprintf(&b, " └── %s: %s", ErrorType(cause), cause.Error())
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is reports ErrValidation so callers can detect rejections without errors.As.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// IsValidationError reports whether err contains a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ExtractValidationError returns the *ValidationError in err's chain or nil.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// DefaultValidationError is the rejection produced when a predicate returns false.
type DefaultValidationError struct {
	Validator string
}

func (e *DefaultValidationError) Error() string {
	return "validation failed due to return false from validator " + e.Validator
}

// PanicError carries a value recovered from a panicking predicate.
type PanicError struct {
	Validator string
	Value     any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("validator %s panicked: %v", e.Validator, e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// EntryError is the rejection of a composite validator.
// It records which entry failed so the diagnostic name is carried by the error
// rather than stored on the validator.
type EntryError struct {
	Position int
	Entry    string
	Err      error
}

func (e *EntryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("entry %d (%s) rejected the value", e.Position, e.Entry)
	}
	return e.Err.Error()
}

func (e *EntryError) Unwrap() error { return e.Err }

// ValidatorName returns "CompositeValidator('<entry>' in position N)".
// Nested composites report their own failing entry as <entry>.
func (e *EntryError) ValidatorName() string {
	name := e.Entry
	if inner, ok := e.Err.(*EntryError); ok {
		name = inner.ValidatorName()
	}
	return fmt.Sprintf("CompositeValidator('%s' in position %d)", name, e.Position)
}

// RootCause strips composite entry layers and returns the error a leaf validator produced.
func RootCause(err error) error {
	for {
		ee, ok := err.(*EntryError)
		if !ok {
			return err
		}
		err = ee.Err
	}
}

// ErrorType returns the bare name of the first exported type in err's Unwrap
// chain, without package or pointer prefix. Wrappers built by fmt.Errorf and
// sentinels built by errors.New have unexported types and are skipped; a chain
// made only of those reports "error".
func ErrorType(err error) string {
	if err == nil {
		return "<nil>"
	}
	for e := err; e != nil; e = unwrapFirst(e) {
		t := reflect.TypeOf(e)
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if token.IsExported(t.Name()) {
			return t.Name()
		}
	}
	return "error"
}

// unwrapFirst follows single and joined wrappers, taking the first branch of a join.
func unwrapFirst(err error) error {
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return u.Unwrap()
	case interface{ Unwrap() []error }:
		if errs := u.Unwrap(); len(errs) > 0 {
			return errs[0]
		}
	}
	return nil
}
