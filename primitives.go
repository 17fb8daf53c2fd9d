package jsonbound

import (
	"encoding/json"
	"math"
)

// String accepts exactly string values.
func String() Decoder[string] { return Decoder[string]{n: &node{kind: kindString}} }

// Number accepts any finite numeric value and produces a float64.
// Not-a-number and infinities are rejected.
func Number() Decoder[float64] { return Decoder[float64]{n: &node{kind: kindNumber}} }

// Integer accepts numeric values that are numerically equal to their
// truncation, so 42 and 42.0 pass while 42.5 fails.
func Integer() Decoder[int] { return Decoder[int]{n: &node{kind: kindInteger}} }

// Bool accepts exactly true and false.
func Bool() Decoder[bool] { return Decoder[bool]{n: &node{kind: kindBool}} }

// Unknown always succeeds, passing the value through untouched.
func Unknown() Decoder[any] { return Decoder[any]{n: &node{kind: kindUnknown}} }

// Null succeeds only on JSON null, producing the fallback.
func Null[T any](fallback T) Decoder[T] {
	return Decoder[T]{n: &node{kind: kindNull, fallback: fallback}}
}

// Succeed ignores the input entirely and produces v.
func Succeed[T any](v T) Decoder[T] {
	return Decoder[T]{n: &node{kind: kindSucceed, fallback: v}}
}

// Fail ignores the input entirely and fails with msg. Combine with
// AndThen and Expected to build custom decoders whose failures read
// like the built-in ones.
func Fail[T any](msg string) Decoder[T] {
	return Decoder[T]{n: &node{kind: kindFail, text: msg}}
}

// toFloat widens the numeric representations that reach the engine:
// float64 from plain unmarshalling, json.Number from the default
// driver, and Go integer types from values handed directly to Decode.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toInt accepts values numerically equal to their truncation. Every
// conversion is range-checked; a value that does not fit int is
// rejected rather than silently wrapped.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int64AsInt(n)
	case uint:
		if uint64(n) > uint64(math.MaxInt) {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > uint64(math.MaxInt) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int64AsInt(i)
		}
	}
	f, ok := toFloat(v)
	if !ok || math.Trunc(f) != f {
		return 0, false
	}
	// float64(MaxInt64) rounds up to 2^63, so the upper bound is >=.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64AsInt(int64(f))
}

func int64AsInt(n int64) (int, bool) {
	if int64(int(n)) != n {
		return 0, false
	}
	return int(n), true
}
