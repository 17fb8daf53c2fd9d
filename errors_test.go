package jsonbound_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	jsonbound "github.com/jsonbound/jsonbound"
)

func TestExpectedFormat(t *testing.T) {
	msg := jsonbound.Expected("an integer", 42.5)
	require.Equal(t, "Expected an integer, but got:\n    42.5", msg)
}

func TestExpectedDumpsContainers(t *testing.T) {
	msg := jsonbound.Expected("a string", map[string]any{"a": 1})
	require.Contains(t, msg, "Expected a string, but got:")
	require.Contains(t, msg, `"a": 1`)
}

func TestMissingFieldMessage(t *testing.T) {
	_, err := jsonbound.Decode(jsonbound.Field("a", jsonbound.Integer()), map[string]any{})
	require.Error(t, err)
	require.Contains(t, err.Error(), `an object with a field named "a"`)
}

func TestFieldTraceReadsOutsideIn(t *testing.T) {
	_, err := jsonbound.Decode(jsonbound.Field("a", jsonbound.Integer()), map[string]any{"a": "x"})
	require.Error(t, err)

	msg := err.Error()
	require.Contains(t, msg, "Expected an integer, but got:")
	require.Contains(t, msg, `while decoding the field "a" of:`)
	// Deepest mismatch first, enclosing context after.
	require.Less(t,
		strings.Index(msg, "Expected an integer"),
		strings.Index(msg, `while decoding the field "a"`))
}

func TestNestedFieldTraceStacks(t *testing.T) {
	d := jsonbound.At([]string{"a", "b"}, jsonbound.Integer())
	_, err := jsonbound.Decode(d, map[string]any{"a": map[string]any{"b": "x"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), `while decoding the field "b" of:`)
	require.Contains(t, err.Error(), `while decoding the field "a" of:`)
}

func TestIndexTrace(t *testing.T) {
	_, err := jsonbound.Decode(jsonbound.Many(jsonbound.Integer()), []any{1, "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "while decoding the item at index 1 of:")
}

func TestDictTrace(t *testing.T) {
	_, err := jsonbound.Decode(jsonbound.Dict(jsonbound.Integer()), map[string]any{"bad": "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `while decoding the value at key "bad" of:`)
}

func TestOneOfAggregatesEveryBranch(t *testing.T) {
	d := jsonbound.OneOf(
		jsonbound.Map(func(n int) any { return n }, jsonbound.Integer()),
		jsonbound.Map(func(b bool) any { return b }, jsonbound.Bool()),
	)
	_, err := jsonbound.Decode(d, "x")
	require.Error(t, err)

	msg := err.Error()
	require.Contains(t, msg, "All alternatives failed:")
	require.Contains(t, msg, "1) Expected an integer")
	require.Contains(t, msg, "2) Expected a boolean")
}

func TestUnscopedLayoutHint(t *testing.T) {
	// String() runs against the whole object and fails without a Field
	// wrapper, so the message should point at the authoring mistake.
	d := jsonbound.Object(jsonbound.Key("v", jsonbound.String()))
	_, err := jsonbound.Decode(d, map[string]any{"v": "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "wrap it in Field or At")
	require.Contains(t, err.Error(), `"v"`)
}

func TestScopedLayoutFailureKeepsFieldTrace(t *testing.T) {
	d := jsonbound.Object(jsonbound.Key("v", jsonbound.Field("v", jsonbound.Integer())))
	_, err := jsonbound.Decode(d, map[string]any{"v": "x"})
	require.Error(t, err)
	require.NotContains(t, err.Error(), "wrap it in Field or At")
	require.Contains(t, err.Error(), `while decoding the field "v" of:`)
}

func TestAsDecodeError(t *testing.T) {
	_, err := jsonbound.Decode(jsonbound.Integer(), "x")
	require.Error(t, err)

	de, ok := jsonbound.AsDecodeError(err)
	require.True(t, ok)
	require.Equal(t, err.Error(), de.Message)

	_, ok = jsonbound.AsDecodeError(errors.New("plain"))
	require.False(t, ok)

	_, ok = jsonbound.AsDecodeError(nil)
	require.False(t, ok)
}
