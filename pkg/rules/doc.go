// Package rules provides ready-made argsv validators: type checks,
// comparisons, ranges, collection traversal and go-playground/validator tags.
//
// Every constructor returns a value implementing argsv.Validator with a
// readable display name such as "gt(5)" or "each(typeof(int))", which is the
// name reported by argsv.ValidationError when the rule rejects an argument.
//
// # Usage
//
//	err := argsv.Validate(fn, argsv.Spec{
//	    "a":    rules.TypeOf[int](),
//	    "b":    rules.All(rules.TypeOf[int](), rules.Gt(0), rules.Ne(5)),
//	    "args": rules.Each(rules.TypeOf[int]()),
//	    "mail": rules.Tag("required,email"),
//	}, args, kwargs)
//
// # Error Handling
//
// Rejections wrap the sentinel errors declared in errors.go (ErrType,
// ErrOutOfRange, ...), so callers can match causes with errors.Is after
// unwrapping the argsv.ValidationError. Collection rules report the failing
// element through *ElementError.
//
// Rules hold no mutable state and are safe for concurrent use.
package rules
