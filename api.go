package jsonbound

import "io"

// Decode applies a decoder to an already-materialized untyped value and
// returns the typed result, or a *DecodeError carrying the first
// unrecovered failure message.
func Decode[T any](d Decoder[T], value any) (T, error) {
	res := run(d.n, value)
	if !res.ok {
		var zero T
		return zero, &DecodeError{Message: res.msg}
	}
	return as[T](res.val), nil
}

// DecodeString parses text with the active JSON driver and decodes the
// resulting value. A parse failure propagates unchanged; it is the
// driver's error, not a *DecodeError.
func DecodeString[T any](d Decoder[T], text string) (T, error) {
	return DecodeBytes(d, []byte(text))
}

// DecodeBytes is DecodeString for a byte slice.
func DecodeBytes[T any](d Decoder[T], data []byte) (T, error) {
	v, err := activeDriver().DecodeBytes(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode(d, v)
}

// DecodeReader is DecodeString for an io.Reader.
func DecodeReader[T any](d Decoder[T], r io.Reader) (T, error) {
	v, err := activeDriver().DecodeReader(r)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode(d, v)
}
