package argsv_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/argsv"
	"github.com/dmitrymomot/argsv/pkg/rules"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("calls through when valid", func(t *testing.T) {
		t.Parallel()
		f := argsv.MustFunc(add, argsv.Arg("a"), argsv.Arg("b"))
		w, err := argsv.Wrap(f, argsv.Spec{"b": isPositive})
		require.NoError(t, err)
		assert.Same(t, f, w.Func())
		assert.Equal(t, []string{"b"}, w.Pattern().Names())

		out, err := w.Call(9, 1)
		require.NoError(t, err)
		assert.Equal(t, []any{10}, out)

		out, err = w.CallKw([]any{9}, map[string]any{"b": 2})
		require.NoError(t, err)
		assert.Equal(t, []any{11}, out)
	})

	t.Run("body does not run on rejection", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		f := argsv.MustFunc(func(a, b int) int {
			calls.Add(1)
			return a + b
		}, argsv.Arg("a"), argsv.Arg("b"))
		w := argsv.MustWrap(f, argsv.Spec{"b": isPositive})

		out, err := w.Call(9, -1)
		require.Error(t, err)
		assert.Nil(t, out)
		assert.True(t, argsv.IsValidationError(err))
		assert.Zero(t, calls.Load())

		_, err = w.Call(1, 2, 3)
		assert.ErrorIs(t, err, argsv.ErrBinding)
		assert.Zero(t, calls.Load())

		_, err = w.Call("x", 1)
		assert.ErrorIs(t, err, argsv.ErrArgumentType)
		assert.Zero(t, calls.Load())

		_, err = w.Call(1, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("mismatch detected at wrap time", func(t *testing.T) {
		t.Parallel()
		f := argsv.MustFunc(add, argsv.Arg("a"), argsv.Arg("b"))
		_, err := argsv.Wrap(f, argsv.Spec{"c": isInt})
		assert.ErrorIs(t, err, argsv.ErrPatternMismatch)

		_, err = argsv.Wrap(f, 42)
		assert.ErrorIs(t, err, argsv.ErrInvalidPattern)

		_, err = argsv.Wrap(nil, argsv.Spec{})
		assert.ErrorIs(t, err, argsv.ErrNotCallable)

		assert.Panics(t, func() { argsv.MustWrap(f, argsv.Spec{"c": isInt}) })
	})

	t.Run("variadic collector", func(t *testing.T) {
		t.Parallel()
		f := argsv.MustFunc(collect, argsv.Args("args"))
		w := argsv.MustWrap(f, argsv.Spec{"args": rules.Each(rules.TypeOf[int]())})

		out, err := w.Call(1, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, []any{3}, out)

		_, err = w.Call(1, "two")
		assert.True(t, argsv.IsValidationError(err))
	})

	t.Run("safe for concurrent calls", func(t *testing.T) {
		t.Parallel()
		w := argsv.MustWrap(argsv.MustFunc(add, argsv.Arg("a"), argsv.Arg("b")), argsv.Spec{"a": isPositive})
		done := make(chan struct{})
		for i := range 4 {
			go func() {
				defer func() { done <- struct{}{} }()
				for j := range 50 {
					out, err := w.Call(i+1, j)
					if assert.NoError(t, err) {
						assert.Equal(t, []any{i + 1 + j}, out)
					}
					_, err = w.Call(-i, j)
					assert.Error(t, err)
				}
			}()
		}
		for range 4 {
			<-done
		}
	})
}

func TestGuard1(t *testing.T) {
	t.Parallel()

	double, err := argsv.Guard1(func(a int) int { return a * 2 }, "a",
		argsv.Spec{"a": rules.Ge(0)})
	require.NoError(t, err)

	v, err := double(21)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = double(-1)
	require.Error(t, err)
	assert.Zero(t, v)
	ve := argsv.ExtractValidationError(err)
	require.NotNil(t, ve)
	assert.Equal(t, "a", ve.Param)
	assert.Equal(t, "ge(0)", ve.Validator)
	assert.ErrorIs(t, err, rules.ErrOutOfRange)

	_, err = argsv.Guard1(func(a int) int { return a }, "a", argsv.Spec{"b": isInt})
	assert.ErrorIs(t, err, argsv.ErrPatternMismatch)
}
