package argsv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/argsv"
)

func TestNewSignature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  []argsv.Param
		wantErr string
	}{
		{
			name:   "positional, collectors and keyword only",
			params: []argsv.Param{argsv.Arg("a"), argsv.Opt("b", 1), argsv.Args("args"), argsv.KwOnly("k"), argsv.Kwargs("kw")},
		},
		{
			name:    "empty name",
			params:  []argsv.Param{argsv.Arg("")},
			wantErr: "has no name",
		},
		{
			name:    "duplicate name",
			params:  []argsv.Param{argsv.Arg("a"), argsv.KwOnly("a")},
			wantErr: "duplicate parameter 'a'",
		},
		{
			name:    "required after optional",
			params:  []argsv.Param{argsv.Opt("a", nil), argsv.Arg("b")},
			wantErr: "required parameter 'b' follows a parameter with a default",
		},
		{
			name:    "two positional collectors",
			params:  []argsv.Param{argsv.Args("a"), argsv.Args("b")},
			wantErr: "more than one positional collector",
		},
		{
			name:    "two keyword collectors",
			params:  []argsv.Param{argsv.Kwargs("a"), argsv.Kwargs("b")},
			wantErr: "parameter 'b' follows the keyword collector",
		},
		{
			name:    "positional after keyword collector",
			params:  []argsv.Param{argsv.Kwargs("kw"), argsv.Arg("a")},
			wantErr: "parameter 'a' follows the keyword collector",
		},
		{
			name:    "keyword only after keyword collector",
			params:  []argsv.Param{argsv.Arg("a"), argsv.Kwargs("kw"), argsv.KwOnly("k")},
			wantErr: "parameter 'k' follows the keyword collector",
		},
		{
			name:    "positional after positional collector",
			params:  []argsv.Param{argsv.Args("rest"), argsv.Arg("b")},
			wantErr: "positional parameter 'b' follows a collector or keyword-only parameter",
		},
		{
			name:    "positional after keyword only",
			params:  []argsv.Param{argsv.KwOnly("k"), argsv.Opt("b", 1)},
			wantErr: "positional parameter 'b' follows a collector or keyword-only parameter",
		},
		{
			name:    "positional collector after keyword only",
			params:  []argsv.Param{argsv.KwOnly("k"), argsv.Args("rest")},
			wantErr: "positional collector 'rest' follows a keyword-only parameter",
		},
		{
			name:    "collector with default",
			params:  []argsv.Param{{Name: "args", Kind: argsv.VarPositional, HasDefault: true}},
			wantErr: "cannot have a default",
		},
		{
			name:    "unknown kind",
			params:  []argsv.Param{{Name: "x", Kind: argsv.ParamKind(42)}},
			wantErr: "unknown kind ParamKind(42)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sig, err := argsv.NewSignature("f", tt.params...)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Len(t, sig.Params(), len(tt.params))
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, argsv.ErrInvalidSignature)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSignature_Accessors(t *testing.T) {
	t.Parallel()

	sig := argsv.MustSignature("f", argsv.Arg("a"), argsv.Args("rest"))
	assert.Equal(t, "f", sig.Name())
	assert.Equal(t, []string{"a", "rest"}, sig.ParamNames())
	assert.True(t, sig.Has("rest"))
	assert.False(t, sig.Has("b"))
	assert.Equal(t, "f(a, rest)", sig.String())
	assert.Same(t, sig, sig.CallableSignature())
	assert.Equal(t, "var_positional", argsv.VarPositional.String())

	assert.Equal(t, "<anonymous>()", argsv.MustSignature("").String())
	assert.Panics(t, func() { argsv.MustSignature("f", argsv.Arg("")) })
}

func TestSignature_Bind(t *testing.T) {
	t.Parallel()

	t.Run("positional in declaration order", func(t *testing.T) {
		t.Parallel()
		sig := argsv.MustSignature("f", argsv.Arg("a"), argsv.Arg("b"))
		bound, err := sig.Bind([]any{9, 1}, nil)
		require.NoError(t, err)
		assert.Equal(t, argsv.Arguments{"a": 9, "b": 1}, bound)
	})

	t.Run("keywords fill positional parameters", func(t *testing.T) {
		t.Parallel()
		sig := argsv.MustSignature("f", argsv.Arg("a"), argsv.Arg("b"))
		bound, err := sig.Bind([]any{9}, map[string]any{"b": 1})
		require.NoError(t, err)
		assert.Equal(t, argsv.Arguments{"a": 9, "b": 1}, bound)
	})

	t.Run("defaults fill the rest", func(t *testing.T) {
		t.Parallel()
		sig := argsv.MustSignature("f", argsv.Opt("a", nil), argsv.Opt("b", 7), argsv.KwOpt("k", "x"))
		bound, err := sig.Bind(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, argsv.Arguments{"a": nil, "b": 7, "k": "x"}, bound)

		v, ok := bound.Get("a")
		assert.True(t, ok)
		assert.Nil(t, v)
		_, ok = bound.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, []string{"a", "b", "k"}, bound.Names())
	})

	t.Run("surplus positional into collector", func(t *testing.T) {
		t.Parallel()
		sig := argsv.MustSignature("f", argsv.Arg("a"), argsv.Args("args"))
		bound, err := sig.Bind([]any{1, "first", "second"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, bound["a"])
		assert.Equal(t, []any{"first", "second"}, bound["args"])
	})

	t.Run("unused collectors are empty", func(t *testing.T) {
		t.Parallel()
		sig := argsv.MustSignature("f", argsv.Args("args"), argsv.Kwargs("kwargs"))
		bound, err := sig.Bind(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []any{}, bound["args"])
		assert.Equal(t, map[string]any{}, bound["kwargs"])
	})

	t.Run("surplus keywords into collector", func(t *testing.T) {
		t.Parallel()
		sig := argsv.MustSignature("f", argsv.Arg("a"), argsv.Kwargs("kw"))
		bound, err := sig.Bind(nil, map[string]any{"a": 1, "x": 2, "kw": 3})
		require.NoError(t, err)
		assert.Equal(t, 1, bound["a"])
		assert.Equal(t, map[string]any{"x": 2, "kw": 3}, bound["kw"])
	})

	t.Run("keyword only parameters ignore positional arguments", func(t *testing.T) {
		t.Parallel()
		sig := argsv.MustSignature("f", argsv.Args("args"), argsv.KwOnly("k"))
		bound, err := sig.Bind([]any{1, 2}, map[string]any{"k": "v"})
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2}, bound["args"])
		assert.Equal(t, "v", bound["k"])

		_, err = sig.Bind([]any{1, 2}, nil)
		assert.ErrorIs(t, err, argsv.ErrBinding)
	})

	t.Run("surplus goes to the collector after declared positionals", func(t *testing.T) {
		t.Parallel()
		sig := argsv.MustSignature("f", argsv.Arg("a"), argsv.Args("rest"), argsv.KwOpt("b", 0), argsv.Kwargs("kw"))
		bound, err := sig.Bind([]any{1, 2, 3}, map[string]any{"b": 4, "c": 5})
		require.NoError(t, err)
		assert.Equal(t, 1, bound["a"])
		assert.Equal(t, []any{2, 3}, bound["rest"])
		assert.Equal(t, 4, bound["b"])
		assert.Equal(t, map[string]any{"c": 5}, bound["kw"])
	})

	t.Run("collector is a copy of the arguments", func(t *testing.T) {
		t.Parallel()
		sig := argsv.MustSignature("f", argsv.Args("args"))
		args := []any{1, 2}
		bound, err := sig.Bind(args, nil)
		require.NoError(t, err)
		args[0] = 100
		assert.Equal(t, []any{1, 2}, bound["args"])
	})

	t.Run("binding errors", func(t *testing.T) {
		t.Parallel()
		sig := argsv.MustSignature("f", argsv.Arg("a"), argsv.Arg("b"))

		tests := []struct {
			name    string
			args    []any
			kwargs  map[string]any
			wantErr string
		}{
			{name: "too many positional", args: []any{1, 2, 3}, wantErr: "f(a, b) takes 2 positional arguments but 3 were given"},
			{name: "unexpected keyword", args: []any{1, 2}, kwargs: map[string]any{"c": 3}, wantErr: "unexpected keyword argument 'c'"},
			{name: "multiple values", args: []any{1, 2}, kwargs: map[string]any{"a": 3}, wantErr: "got multiple values for argument 'a'"},
			{name: "missing required", args: nil, wantErr: "missing 2 required argument(s): 'a', 'b'"},
		}
		for _, tt := range tests {
			_, err := sig.Bind(tt.args, tt.kwargs)
			require.Error(t, err, tt.name)
			assert.ErrorIs(t, err, argsv.ErrBinding, tt.name)
			assert.Contains(t, err.Error(), tt.wantErr, tt.name)
		}
	})

	t.Run("collector name is not a keyword", func(t *testing.T) {
		t.Parallel()
		sig := argsv.MustSignature("f", argsv.Args("args"))
		_, err := sig.Bind(nil, map[string]any{"args": 1})
		assert.ErrorIs(t, err, argsv.ErrBinding)
	})
}
