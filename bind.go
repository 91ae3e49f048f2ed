package argsv

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Arguments maps declared parameter names to the values bound for one call.
// Collectors hold a []any (positional) or a map[string]any (keyword).
type Arguments map[string]any

// Get returns the value bound to name.
func (a Arguments) Get(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}

// Names returns the bound names in sorted order.
func (a Arguments) Names() []string {
	return slices.Sorted(maps.Keys(a))
}

// Bind resolves a call's positional and keyword arguments against the
// declared parameters. Every declared parameter is present in the result:
// collectors default to an empty []any or map[string]any.
func (s *Signature) Bind(args []any, kwargs map[string]any) (Arguments, error) {
	bound := make(Arguments, len(s.params))
	callee := s.String()

	var (
		positional []Param
		varPos     *Param
		varKw      *Param
	)
	for i := range s.params {
		p := &s.params[i]
		switch p.Kind {
		case Positional:
			positional = append(positional, *p)
		case VarPositional:
			varPos = p
		case VarKeyword:
			varKw = p
		}
	}

	n := min(len(args), len(positional))
	for i := range n {
		bound[positional[i].Name] = args[i]
	}
	if len(args) > len(positional) {
		if varPos == nil {
			return nil, fmt.Errorf("%w: %s takes %d positional arguments but %d were given",
				ErrBinding, callee, len(positional), len(args))
		}
		bound[varPos.Name] = slices.Clone(args[len(positional):])
	} else if varPos != nil {
		bound[varPos.Name] = []any{}
	}

	var extra map[string]any
	if varKw != nil {
		extra = make(map[string]any)
	}
	for _, key := range slices.Sorted(maps.Keys(kwargs)) {
		p, ok := s.param(key)
		if !ok || p.Kind == VarPositional || p.Kind == VarKeyword {
			if extra == nil {
				return nil, fmt.Errorf("%w: %s got an unexpected keyword argument '%s'", ErrBinding, callee, key)
			}
			extra[key] = kwargs[key]
			continue
		}
		if _, dup := bound[key]; dup {
			return nil, fmt.Errorf("%w: %s got multiple values for argument '%s'", ErrBinding, callee, key)
		}
		bound[key] = kwargs[key]
	}
	if varKw != nil {
		bound[varKw.Name] = extra
	}

	var missing []string
	for _, p := range s.params {
		if _, ok := bound[p.Name]; ok {
			continue
		}
		if p.HasDefault {
			bound[p.Name] = p.Default
			continue
		}
		missing = append(missing, "'"+p.Name+"'")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s missing %d required argument(s): %s", ErrBinding, callee, len(missing), strings.Join(missing, ", "))
	}

	return bound, nil
}

func (s *Signature) param(name string) (Param, bool) {
	for _, p := range s.params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}
