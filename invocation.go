package argsv

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/argsv/pkg/logger"
)

// Option configures an Invocation or a Wrapped function.
type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger sets the logger used to report rejections at debug level.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Invocation validates one concrete call of a callable against a pattern.
type Invocation struct {
	callable Callable
	sig      *Signature
	pattern  *Pattern
	args     []any
	kwargs   map[string]any
	opts     options
}

// New prepares the validation of a call. It builds the pattern from spec and
// matches it against the callable for this call shape, so construction fails
// with an ErrInvalidPattern or ErrBinding error when they are incompatible.
func New(c Callable, spec any, args []any, kwargs map[string]any, opts ...Option) (*Invocation, error) {
	sig, err := signatureOf(c)
	if err != nil {
		return nil, err
	}
	inv := &Invocation{
		callable: c,
		sig:      sig,
		args:     slices.Clone(args),
		kwargs:   maps.Clone(kwargs),
		opts:     newOptions(opts),
	}

	p, err := NewPattern(spec)
	if err != nil {
		return nil, err
	}
	if inv.pattern, err = p.Match(c, inv.args, inv.kwargs); err != nil {
		return nil, err
	}
	return inv, nil
}

// Validate is shorthand for New followed by Invocation.Validate.
func Validate(c Callable, spec any, args []any, kwargs map[string]any, opts ...Option) error {
	inv, err := New(c, spec, args, kwargs, opts...)
	if err != nil {
		return err
	}
	return inv.Validate()
}

// Callable returns the callable being validated.
func (inv *Invocation) Callable() Callable { return inv.callable }

// Pattern returns the matched pattern.
func (inv *Invocation) Pattern() *Pattern { return inv.pattern }

// Args returns a copy of the positional arguments.
func (inv *Invocation) Args() []any { return slices.Clone(inv.args) }

// Kwargs returns a copy of the keyword arguments.
func (inv *Invocation) Kwargs() map[string]any { return maps.Clone(inv.kwargs) }

// Validate binds the call and applies every validator of the pattern to its
// bound value. It stops at the first rejection and returns it as a
// *ValidationError. Binding errors are returned unchanged.
func (inv *Invocation) Validate() error {
	bound, err := inv.sig.Bind(inv.args, inv.kwargs)
	if err != nil {
		return err
	}
	return inv.apply(bound)
}

// apply runs the pattern over an already bound mapping.
func (inv *Invocation) apply(bound Arguments) error {
	return applyPattern(inv.pattern, bound, inv.sig.Name(), inv.opts.log)
}

func applyPattern(p *Pattern, bound Arguments, callee string, log *slog.Logger) error {
	for name, v := range p.All() {
		value := bound[name]
		err := v.Validate(value)
		if err == nil {
			continue
		}

		verr := &ValidationError{Param: name, Validator: displayName(v, err), Err: err}
		log.LogAttrs(context.Background(), slog.LevelDebug, "argument rejected",
			logger.Callable(callee),
			logger.Param(name),
			logger.Validator(verr.Validator),
			logger.Error(RootCause(err)),
		)
		return verr
	}
	return nil
}

// displayName prefers the diagnostic name carried by a composite rejection.
func displayName(v Validator, err error) string {
	if ee, ok := err.(*EntryError); ok {
		return ee.ValidatorName()
	}
	return v.Name()
}
