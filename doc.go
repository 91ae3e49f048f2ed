// Package argsv validates the arguments of a call before the call happens.
//
// A Pattern maps parameter names to Validators. An Invocation binds one
// concrete call (positional and keyword arguments) to the parameters a
// Callable declares, then applies each validator to the value bound to its
// parameter. The first rejection stops validation and is returned as a
// *ValidationError naming the parameter, the validator and the root cause.
//
// Key Features:
//
//   - Predicates: any single-parameter function is a Validator
//   - Composite validators with fail-fast AND semantics
//   - Call binding with defaults, keyword-only parameters and collectors
//   - Wrapped functions that only run when their arguments are valid
//   - Struct fields as arguments, with go-playground tags via pkg/rules
//
// Basic Usage:
//
//	f := argsv.MustFunc(func(a, b int) int { return a - b },
//		argsv.Arg("a"), argsv.Arg("b"))
//
//	positive := argsv.MustNamed("positive", func(x int) bool { return x > 0 })
//	err := argsv.Validate(f, argsv.Spec{"b": positive}, []any{9, -1}, nil)
//
//	if ve := argsv.ExtractValidationError(err); ve != nil {
//		fmt.Println(ve)
//		// validation stopped while checking the argument passed to parameter 'b'
//		// from validator: positive
//		//  └── DefaultValidationError: validation failed due to return false from validator positive
//	}
//
// Guarding a function:
//
//	sub := argsv.MustWrap(f, argsv.Spec{"b": rules.Gt(0)})
//	out, err := sub.Call(9, 1) // []any{8}, nil
//
// Predicates:
//
// A predicate returns nothing, a bool, an error, or a bool and an error.
// Returning false rejects with a *DefaultValidationError, returning an error
// rejects with that error as the cause and a panic is recovered into a
// *PanicError. Values are never converted: a value that is not assignable to
// the predicate's parameter type is rejected with ErrArgumentType.
//
// Errors:
//
// Construction problems wrap ErrInvalidValidator, ErrInvalidPattern,
// ErrInvalidSignature or ErrNotCallable. A pattern key that names no
// parameter wraps ErrPatternMismatch. Calls that cannot be bound wrap
// ErrBinding and are returned unchanged, never as a *ValidationError.
//
// Concurrency:
//
// Validators, Patterns, Signatures, Funcs and Wrapped functions are immutable
// once built and safe for concurrent use. Predicates are only as safe as the
// functions they wrap.
package argsv
