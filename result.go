package jsonbound

// result is the internal success/failure wrapper. Failure is a plain
// value here so that alternation can try a branch, discard its failure,
// and move on without the cost and control flow of raising on every
// rejected branch. Results live only for the duration of one
// interpretation call tree; they are never stored.
//
// viaField marks a failure raised by a Field/OptionalField step. Object
// and Instance layouts consult it to decide whether a child failure
// deserves the unscoped-decoder hint.
type result struct {
	ok       bool
	val      any
	msg      string
	viaField bool
}

func pass(v any) result { return result{ok: true, val: v} }

func reject(msg string) result { return result{msg: msg} }

func rejectViaField(msg string) result { return result{msg: msg, viaField: true} }
