package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/argsv/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestParam(t *testing.T) {
	attr := logger.Param("b")
	require.Equal(t, "param", attr.Key)
	assert.Equal(t, "b", attr.Value.String())
}

func TestValidator(t *testing.T) {
	attr := logger.Validator("gt(0)")
	require.Equal(t, "validator", attr.Key)
	assert.Equal(t, "gt(0)", attr.Value.String())
}

func TestCallable(t *testing.T) {
	attr := logger.Callable("signup")
	require.Equal(t, "callable", attr.Key)
	assert.Equal(t, "signup", attr.Value.String())

	empty := logger.Callable("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestPattern(t *testing.T) {
	attr := logger.Pattern("testdata/signup.yaml")
	require.Equal(t, "pattern", attr.Key)
	assert.Equal(t, "testdata/signup.yaml", attr.Value.String())
}

func TestComponent(t *testing.T) {
	attr := logger.Component("cli")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "cli", attr.Value.String())
}
