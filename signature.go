package argsv

import (
	"fmt"
	"slices"
	"strings"
)

// ParamKind describes how a declared parameter receives its argument.
type ParamKind int

const (
	// Positional parameters are filled by position or by keyword.
	Positional ParamKind = iota
	// KeywordOnly parameters are filled by keyword only.
	KeywordOnly
	// VarPositional collects surplus positional arguments into a []any.
	VarPositional
	// VarKeyword collects surplus keyword arguments into a map[string]any.
	VarKeyword
)

func (k ParamKind) String() string {
	switch k {
	case Positional:
		return "positional"
	case KeywordOnly:
		return "keyword_only"
	case VarPositional:
		return "var_positional"
	case VarKeyword:
		return "var_keyword"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// Param is a single declared parameter.
type Param struct {
	Name       string
	Kind       ParamKind
	Default    any
	HasDefault bool
}

// Arg declares a required positional parameter.
func Arg(name string) Param { return Param{Name: name, Kind: Positional} }

// Opt declares a positional parameter with a default value.
func Opt(name string, def any) Param {
	return Param{Name: name, Kind: Positional, Default: def, HasDefault: true}
}

// KwOnly declares a required keyword-only parameter.
func KwOnly(name string) Param { return Param{Name: name, Kind: KeywordOnly} }

// KwOpt declares a keyword-only parameter with a default value.
func KwOpt(name string, def any) Param {
	return Param{Name: name, Kind: KeywordOnly, Default: def, HasDefault: true}
}

// Args declares the collector for surplus positional arguments.
func Args(name string) Param { return Param{Name: name, Kind: VarPositional} }

// Kwargs declares the collector for surplus keyword arguments.
func Kwargs(name string) Param { return Param{Name: name, Kind: VarKeyword} }

// Callable is anything that exposes a declared parameter list.
type Callable interface {
	CallableSignature() *Signature
}

// Signature is a named, validated parameter list.
// It is immutable after construction.
type Signature struct {
	name   string
	params []Param
}

// NewSignature validates params and returns a Signature.
func NewSignature(name string, params ...Param) (*Signature, error) {
	if err := checkParams(params); err != nil {
		return nil, err
	}
	return &Signature{name: name, params: slices.Clone(params)}, nil
}

// MustSignature is like NewSignature but panics on error.
func MustSignature(name string, params ...Param) *Signature {
	s, err := NewSignature(name, params...)
	if err != nil {
		panic(err)
	}
	return s
}

// checkParams enforces the declaration order: positional parameters, then the
// positional collector and keyword-only parameters, then the keyword collector.
func checkParams(params []Param) error {
	seen := make(map[string]struct{}, len(params))
	var varPos, varKw, kwOnly, optional bool
	for i, p := range params {
		if p.Name == "" {
			return fmt.Errorf("%w: parameter %d has no name", ErrInvalidSignature, i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate parameter '%s'", ErrInvalidSignature, p.Name)
		}
		seen[p.Name] = struct{}{}

		if varKw {
			return fmt.Errorf("%w: parameter '%s' follows the keyword collector", ErrInvalidSignature, p.Name)
		}

		switch p.Kind {
		case Positional:
			if varPos || kwOnly {
				return fmt.Errorf("%w: positional parameter '%s' follows a collector or keyword-only parameter",
					ErrInvalidSignature, p.Name)
			}
			if p.HasDefault {
				optional = true
			} else if optional {
				return fmt.Errorf("%w: required parameter '%s' follows a parameter with a default", ErrInvalidSignature, p.Name)
			}
		case KeywordOnly:
			kwOnly = true
		case VarPositional:
			if varPos {
				return fmt.Errorf("%w: more than one positional collector", ErrInvalidSignature)
			}
			if kwOnly {
				return fmt.Errorf("%w: positional collector '%s' follows a keyword-only parameter",
					ErrInvalidSignature, p.Name)
			}
			if p.HasDefault {
				return fmt.Errorf("%w: collector '%s' cannot have a default", ErrInvalidSignature, p.Name)
			}
			varPos = true
		case VarKeyword:
			if p.HasDefault {
				return fmt.Errorf("%w: collector '%s' cannot have a default", ErrInvalidSignature, p.Name)
			}
			varKw = true
		default:
			return fmt.Errorf("%w: parameter '%s' has unknown kind %s", ErrInvalidSignature, p.Name, p.Kind)
		}
	}
	return nil
}

// CallableSignature implements Callable.
func (s *Signature) CallableSignature() *Signature { return s }

// Name returns the callable's display name.
func (s *Signature) Name() string { return s.name }

// Params returns a copy of the declared parameters.
func (s *Signature) Params() []Param { return slices.Clone(s.params) }

// ParamNames returns the declared parameter names in declaration order.
func (s *Signature) ParamNames() []string {
	names := make([]string, len(s.params))
	for i, p := range s.params {
		names[i] = p.Name
	}
	return names
}

// Has reports whether name is a declared parameter.
func (s *Signature) Has(name string) bool {
	return slices.ContainsFunc(s.params, func(p Param) bool { return p.Name == name })
}

func (s *Signature) String() string {
	name := s.name
	if name == "" {
		name = "<anonymous>"
	}
	return name + "(" + strings.Join(s.ParamNames(), ", ") + ")"
}
