// Package yaml provides YAML entry points for jsonbound decoders: a
// YAML document is parsed into the same untyped value shapes the JSON
// driver produces, then decoded by the same engine.
package yaml

import (
	"fmt"

	goyaml "gopkg.in/yaml.v3"

	jsonbound "github.com/jsonbound/jsonbound"
)

// DecodeBytes parses a YAML document and applies the decoder. A parse
// failure propagates unchanged.
func DecodeBytes[T any](d jsonbound.Decoder[T], data []byte) (T, error) {
	var v any
	if err := goyaml.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, err
	}
	return jsonbound.Decode(d, normalize(v))
}

// DecodeString is DecodeBytes for a string.
func DecodeString[T any](d jsonbound.Decoder[T], text string) (T, error) {
	return DecodeBytes(d, []byte(text))
}

// normalize maps yaml.v3 output onto the value shapes the decoder
// engine expects: mappings become map[string]any regardless of how the
// library keyed them.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}
