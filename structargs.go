package argsv

import (
	"fmt"
	"reflect"
	"strings"
)

// StructArguments binds the exported fields of a struct to argument names.
//
// Supported struct tags:
//   - `arg:"name"` - binds the field under "name"
//   - `arg:"-"`    - skips the field
//
// Untagged exported fields are bound under their Go field name.
// Embedded structs are not flattened.
func StructArguments(v any) (*Signature, Arguments, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil, fmt.Errorf("%w: target must be a non-nil pointer", ErrBinding)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("%w: target must be a struct or a pointer to struct, got %s", ErrBinding, typeName(v))
	}

	rt := rv.Type()
	bound := make(Arguments, rt.NumField())
	params := make([]Param, 0, rt.NumField())

	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		if tag, ok := field.Tag.Lookup("arg"); ok {
			if idx := strings.Index(tag, ","); idx != -1 {
				tag = tag[:idx]
			}
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}

		if _, dup := bound[name]; dup {
			return nil, nil, fmt.Errorf("%w: field %s: duplicate argument name '%s'", ErrBinding, field.Name, name)
		}
		bound[name] = rv.Field(i).Interface()
		params = append(params, KwOnly(name))
	}

	sig, err := NewSignature(rt.Name(), params...)
	if err != nil {
		return nil, nil, err
	}
	return sig, bound, nil
}

// ValidateStruct applies spec to the fields of v bound by StructArguments.
// Pattern keys must name bound fields; the first rejection is returned as a
// *ValidationError.
//
// Example:
//
//	type Signup struct {
//		Email string `arg:"email"`
//		Age   int    `arg:"age"`
//	}
//
//	err := argsv.ValidateStruct(req, argsv.Spec{
//		"email": rules.Tag("required,email"),
//		"age":   rules.Ge(18),
//	})
func ValidateStruct(v any, spec any, opts ...Option) error {
	sig, bound, err := StructArguments(v)
	if err != nil {
		return err
	}
	p, err := NewPattern(spec)
	if err != nil {
		return err
	}
	if _, err := p.MatchSignature(sig); err != nil {
		return err
	}
	o := newOptions(opts)
	return applyPattern(p, bound, sig.Name(), o.log)
}
