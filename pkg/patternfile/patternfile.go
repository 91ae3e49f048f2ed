package patternfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/argsv"
	"github.com/dmitrymomot/argsv/pkg/rules"
)

// ErrInvalidFile is returned when a pattern file cannot be parsed or is malformed.
var ErrInvalidFile = errors.New("invalid pattern file")

// File is a parsed pattern document.
type File struct {
	Name   string            `yaml:"name"`
	Params []ParamSpec       `yaml:"params"`
	Rules  map[string]string `yaml:"rules"`
}

// ParamSpec declares one parameter of the described callable.
type ParamSpec struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Default *any   `yaml:"default"`
}

var kinds = map[string]argsv.ParamKind{
	"":               argsv.Positional,
	"positional":     argsv.Positional,
	"keyword_only":   argsv.KeywordOnly,
	"var_positional": argsv.VarPositional,
	"var_keyword":    argsv.VarKeyword,
}

// Load reads and parses the pattern file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return Parse(data)
}

// Parse decodes a pattern document. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	for i, p := range f.Params {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: parameter %d has no name", ErrInvalidFile, i)
		}
		if _, ok := kinds[p.Kind]; !ok {
			return nil, fmt.Errorf("%w: parameter '%s' has unknown kind %q", ErrInvalidFile, p.Name, p.Kind)
		}
	}
	return &f, nil
}

// Signature builds the declared parameter list.
func (f *File) Signature() (*argsv.Signature, error) {
	params := make([]argsv.Param, len(f.Params))
	for i, p := range f.Params {
		params[i] = argsv.Param{Name: p.Name, Kind: kinds[p.Kind]}
		if p.Default != nil {
			params[i].Default = *p.Default
			params[i].HasDefault = true
		}
	}
	return argsv.NewSignature(f.Name, params...)
}

// Pattern compiles every rule with the shared go-playground instance.
func (f *File) Pattern() (*argsv.Pattern, error) {
	return f.PatternWith(nil)
}

// PatternWith compiles every rule with v, which may carry custom validations.
func (f *File) PatternWith(v *validator.Validate) (*argsv.Pattern, error) {
	spec := make(argsv.Spec, len(f.Rules))
	for name, tag := range f.Rules {
		r, err := rules.TagWith(v, tag)
		if err != nil {
			return nil, fmt.Errorf("%w: rule for '%s': %w", ErrInvalidFile, name, err)
		}
		spec[name] = r
	}
	return argsv.NewPattern(spec)
}
