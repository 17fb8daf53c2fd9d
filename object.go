package jsonbound

// Entry pairs an output key with the decoder producing that key's
// value. Entries are ordered: Object assigns keys in declaration order.
type Entry struct {
	key string
	n   *node
}

// Key builds an Object layout entry. The decoder runs against the whole
// value being decoded, not the named member; wrap it with Field or At
// to target a member of the input.
func Key[T any](name string, d Decoder[T]) Entry {
	return Entry{key: name, n: d.n}
}

// Object assembles a map from an ordered layout of entries. Every entry
// decoder is applied to the whole current value, so a bare primitive can
// be lifted into an object:
//
//	Object(Key("value", Integer()))
//
// decodes the input 42 into map[string]any{"value": 42}.
func Object(layout ...Entry) Decoder[map[string]any] {
	slots := make([]layoutSlot, len(layout))
	for i, e := range layout {
		slots[i] = layoutSlot{key: e.key, n: e.n}
	}
	return Decoder[map[string]any]{n: &node{kind: kindObject, layout: slots}}
}

// Binding pairs an output key with the decoder producing its value and
// the setter that places it on a freshly constructed T.
type Binding[T any] struct {
	key    string
	n      *node
	assign func(target T, v any)
}

// Bind builds an Instance layout entry. As with Key, the decoder runs
// against the whole value being decoded; scope it with Field or At.
func Bind[T, V any](name string, d Decoder[V], set func(target T, v V)) Binding[T] {
	return Binding[T]{
		key: name,
		n:   d.n,
		assign: func(target T, v any) {
			set(target, as[V](v))
		},
	}
}

// Instance is Object built on top of a caller-supplied aggregate instead
// of a plain map: construct produces an empty T (typically a pointer to
// a zero struct) and each binding's setter assigns one decoded value, in
// layout order. The factory is a capability, not reflection; the engine
// never inspects T.
func Instance[T any](construct func() T, layout ...Binding[T]) Decoder[T] {
	slots := make([]layoutSlot, len(layout))
	for i, b := range layout {
		assign := b.assign
		slots[i] = layoutSlot{
			key: b.key,
			n:   b.n,
			assign: func(target any, v any) {
				assign(as[T](target), v)
			},
		}
	}
	return Decoder[T]{n: &node{
		kind:      kindInstance,
		layout:    slots,
		construct: func() any { return construct() },
	}}
}
