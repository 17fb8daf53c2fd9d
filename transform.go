package jsonbound

// Map applies f to the child's result on success; failures propagate
// unchanged.
func Map[A, B any](f func(A) B, d Decoder[A]) Decoder[B] {
	return Decoder[B]{n: &node{
		kind:      kindMap,
		child:     d.n,
		transform: func(v any) any { return f(as[A](v)) },
	}}
}

// AndThen decodes with d first, then applies f to obtain the next
// decoder and re-applies it to the original value. This lets later
// decoding depend on conditions read earlier, such as a success flag
// gating which shape to expect next.
func AndThen[A, B any](f func(A) Decoder[B], d Decoder[A]) Decoder[B] {
	return Decoder[B]{n: &node{
		kind:  kindAndThen,
		child: d.n,
		chain: func(v any) *node { return f(as[A](v)).n },
	}}
}

// OneOf tries each alternative in order against the same value and
// keeps the first success. When every alternative fails, the failure
// enumerates each branch's complete message so the caller can see why
// every alternative was rejected, not just the first.
func OneOf[T any](alts ...Decoder[T]) Decoder[T] {
	ns := make([]*node, len(alts))
	for i, d := range alts {
		ns[i] = d.n
	}
	return Decoder[T]{n: &node{kind: kindOneOf, alts: ns}}
}

// Optional is exactly OneOf(d, Succeed(fallback)): any failure of d is
// indistinguishable from falling through to the fallback.
func Optional[T any](fallback T, d Decoder[T]) Decoder[T] {
	return OneOf(d, Succeed(fallback))
}

// Lazy defers evaluation of a decoder to interpretation time, which is
// what lets a decoder refer to itself before its own definition is
// complete. The thunk runs once per interpretation, never at
// construction, and its result is not cached.
func Lazy[T any](thunk func() Decoder[T]) Decoder[T] {
	return Decoder[T]{n: &node{
		kind:  kindLazy,
		thunk: func() *node { return thunk().n },
	}}
}
