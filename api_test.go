package jsonbound_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	jsonbound "github.com/jsonbound/jsonbound"
)

func TestDecodeString(t *testing.T) {
	v, err := jsonbound.DecodeString(jsonbound.Field("value", jsonbound.Integer()), `{"value": 42}`)
	require.NoError(t, err)
	require.Equal(t, 42, v)

	_, err = jsonbound.DecodeString(jsonbound.Field("value", jsonbound.Integer()), `{"value": 42.5}`)
	require.Error(t, err)
	_, ok := jsonbound.AsDecodeError(err)
	require.True(t, ok)
}

func TestDecodeStringWholeFloatIsInteger(t *testing.T) {
	v, err := jsonbound.DecodeString(jsonbound.Integer(), `42.0`)
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestDecodeStringLargeInteger(t *testing.T) {
	// Survives the round trip without float truncation.
	v, err := jsonbound.DecodeString(jsonbound.Integer(), `9007199254740993`)
	require.NoError(t, err)
	require.Equal(t, 9007199254740993, v)
}

func TestDecodeStringNested(t *testing.T) {
	doc := `{"a": {"b": {"c": {"d": 42}}}}`
	v, err := jsonbound.DecodeString(jsonbound.At([]string{"a", "b", "c", "d"}, jsonbound.Integer()), doc)
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestDecodeStringParseFailurePropagatesUnchanged(t *testing.T) {
	_, err := jsonbound.DecodeString(jsonbound.String(), `{nope`)
	require.Error(t, err)
	_, ok := jsonbound.AsDecodeError(err)
	require.False(t, ok)
}

func TestDecodeBytesAndReaderAgree(t *testing.T) {
	doc := `{"name": "Ada"}`
	d := jsonbound.Field("name", jsonbound.String())

	fromBytes, err := jsonbound.DecodeBytes(d, []byte(doc))
	require.NoError(t, err)

	fromReader, err := jsonbound.DecodeReader(d, strings.NewReader(doc))
	require.NoError(t, err)

	require.Equal(t, fromBytes, fromReader)
	require.Equal(t, "Ada", fromBytes)
}

// fixedDriver ignores its input and returns a canned value.
type fixedDriver struct {
	value any
}

func (f fixedDriver) DecodeBytes([]byte) (any, error)     { return f.value, nil }
func (f fixedDriver) DecodeReader(io.Reader) (any, error) { return f.value, nil }
func (f fixedDriver) Name() string                        { return "fixed" }

func TestSetDriver(t *testing.T) {
	jsonbound.SetDriver(fixedDriver{value: map[string]any{"value": 7}})
	defer jsonbound.UseDefaultDriver()

	v, err := jsonbound.DecodeString(jsonbound.Field("value", jsonbound.Integer()), "ignored")
	require.NoError(t, err)
	require.Equal(t, 7, v)

	jsonbound.SetDriver(nil) // ignored
	v, err = jsonbound.DecodeString(jsonbound.Field("value", jsonbound.Integer()), "ignored")
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestDecodeNullDocument(t *testing.T) {
	v, err := jsonbound.DecodeString(jsonbound.Null("fallback"), `null`)
	require.NoError(t, err)
	require.Equal(t, "fallback", v)

	u, err := jsonbound.DecodeString(jsonbound.Unknown(), `null`)
	require.NoError(t, err)
	require.Nil(t, u)
}
