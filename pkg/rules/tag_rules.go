package rules

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared go-playground instance used by Tag.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Tag validates a value against a go-playground/validator tag such as
// "required,email" or "gte=1,lte=10". It panics if the tag names an
// unknown validation function; use TagWith to get an error instead.
func Tag(tag string) Rule {
	r, err := TagWith(validate, tag)
	if err != nil {
		panic(err)
	}
	return r
}

// TagWith is like Tag but uses v, which may carry custom validations
// registered with RegisterValidation.
func TagWith(v *validator.Validate, tag string) (Rule, error) {
	if v == nil {
		v = validate
	}
	if err := compileTag(v, tag); err != nil {
		return Rule{}, err
	}
	return New(fmt.Sprintf("tag(%s)", tag), func(value any) error {
		return v.Var(value, tag)
	}), nil
}

// compileTag parses the tag once so unknown validation functions surface at
// construction. go-playground reports them by panicking.
func compileTag(v *validator.Validate, tag string) (err error) {
	if tag == "" {
		return fmt.Errorf("%w: empty tag", ErrInvalidTag)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %q: %v", ErrInvalidTag, tag, r)
		}
	}()
	_ = v.Var(nil, tag)
	return nil
}
