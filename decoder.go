package jsonbound

// Decoder describes how to validate and transform one untyped value
// into one typed value. A Decoder is immutable: constructing one never
// inspects input, and running one never mutates shared state, so a
// single Decoder may be applied arbitrarily many times, concurrently or
// sequentially.
type Decoder[T any] struct {
	n *node
}

// nodeKind discriminates the decoder variants. The interpreter in
// interp.go switches exhaustively over it.
type nodeKind uint8

const (
	kindString nodeKind = iota
	kindNumber
	kindInteger
	kindBool
	kindUnknown
	kindNull
	kindField
	kindIndex
	kindObject
	kindInstance
	kindMany
	kindDict
	kindMap
	kindAndThen
	kindOneOf
	kindLazy
	kindSucceed
	kindFail
)

// node is the untyped decoder representation shared by every Decoder[T].
// Only the fields relevant to a given kind are populated. Type-specific
// behavior (transforms, slice/map materialization, instance factories)
// is erased into any-shaped capabilities at construction time so the
// interpreter stays monomorphic.
type node struct {
	kind nodeKind

	key   string // kindField, kindDict entries in traces
	text  string // kindFail message
	index int    // kindIndex

	child *node   // kindField, kindIndex, kindMany, kindDict, kindMap, kindAndThen
	alts  []*node // kindOneOf

	layout []layoutSlot // kindObject, kindInstance; order is output order

	fallback    any // kindField default, kindNull production, kindSucceed value
	hasFallback bool

	transform func(any) any   // kindMap
	chain     func(any) *node // kindAndThen
	thunk     func() *node    // kindLazy; evaluated per invocation, never cached

	construct   func() any               // kindInstance factory capability
	assemble    func([]any) any          // kindMany: erased []T materialization
	assembleMap func(map[string]any) any // kindDict: erased map[string]T materialization
}

// layoutSlot pairs an output key with the decoder responsible for that
// key's value. assign is non-nil only for Instance layouts.
type layoutSlot struct {
	key    string
	n      *node
	assign func(target any, v any)
}

// as recovers the typed value a child decoder produced. Construction
// guarantees the dynamic type; the only legitimate miss is a nil value
// (JSON null through Unknown, or a nil Succeed), which maps to the zero
// value of T.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}
