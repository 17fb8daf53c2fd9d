package jsonbound

// Field scopes d to the named member of an object. The input must be a
// non-null object carrying the key; on failure the message records the
// field name and the containing value.
func Field[T any](name string, d Decoder[T]) Decoder[T] {
	return Decoder[T]{n: &node{kind: kindField, key: name, child: d.n}}
}

// OptionalField is Field except that a missing key yields fallback
// instead of failing. A present key still has to satisfy d.
func OptionalField[T any](name string, fallback T, d Decoder[T]) Decoder[T] {
	return Decoder[T]{n: &node{kind: kindField, key: name, child: d.n, fallback: fallback, hasFallback: true}}
}

// At scopes d to a nested member, outermost name first. It is the right
// fold of Field over the path in reverse, so At([]string{"a", "b"}, d)
// is Field("a", Field("b", d)). An empty path is d itself.
func At[T any](path []string, d Decoder[T]) Decoder[T] {
	out := d
	for i := len(path) - 1; i >= 0; i-- {
		out = Field(path[i], out)
	}
	return out
}

// OptionalAt is the analogous fold over OptionalField: the fallback
// bubbles up through every missing level, no matter how many levels are
// absent.
func OptionalAt[T any](path []string, fallback T, d Decoder[T]) Decoder[T] {
	out := d
	for i := len(path) - 1; i >= 0; i-- {
		out = OptionalField(path[i], fallback, out)
	}
	return out
}

// Index scopes d to the i-th item of an array, symmetric with Field.
func Index[T any](i int, d Decoder[T]) Decoder[T] {
	return Decoder[T]{n: &node{kind: kindIndex, index: i, child: d.n}}
}
