package jsonbound

// Many decodes every item of an array with d. Decoding aborts on the
// first failing item; the message names its index. An empty array
// yields an empty (non-nil) slice.
func Many[T any](d Decoder[T]) Decoder[[]T] {
	return Decoder[[]T]{n: &node{
		kind:  kindMany,
		child: d.n,
		assemble: func(items []any) any {
			out := make([]T, len(items))
			for i, item := range items {
				out[i] = as[T](item)
			}
			return out
		},
	}}
}

// Dict decodes every value of an object with the same d, keyed by the
// object's own (arbitrary) key names. The output is a freshly allocated
// map, never an alias of the input; a single invalid value aborts the
// whole decode.
func Dict[T any](d Decoder[T]) Decoder[map[string]T] {
	return Decoder[map[string]T]{n: &node{
		kind:  kindDict,
		child: d.n,
		assembleMap: func(entries map[string]any) any {
			out := make(map[string]T, len(entries))
			for k, v := range entries {
				out[k] = as[T](v)
			}
			return out
		},
	}}
}
