package jsonbound

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsonbound/jsonbound/internal/render"
)

// DecodeError is the single failure kind surfaced by the boundary API.
// All error detail is carried as text: the deepest mismatch first, then
// one trace line per enclosing field, index, or object traversed when
// it occurred.
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string { return e.Message }

// AsDecodeError extracts a DecodeError from an error using errors.As
// internally. It reports false for parse failures propagated unchanged
// from the JSON driver.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

const dumpIndent = "    "

// Expected renders the standard mismatch header: a one-line description
// of what the decoder wanted, followed by an indented, size-bounded
// dump of the offending value. It is exported so custom decoders built
// with AndThen and Fail can produce messages in the same shape as the
// built-in failures.
func Expected(description string, value any) string {
	return "Expected " + description + ", but got:\n" + indentBlock(render.Dump(value), dumpIndent)
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func inFieldTrace(name string, container any, msg string) string {
	return msg + "\nwhile decoding the field " + strconv.Quote(name) + " of:\n" +
		indentBlock(render.Dump(container), dumpIndent)
}

func atIndexTrace(i int, seq any, msg string) string {
	return fmt.Sprintf("%s\nwhile decoding the item at index %d of:\n%s",
		msg, i, indentBlock(render.Dump(seq), dumpIndent))
}

func atKeyTrace(key string, container any, msg string) string {
	return fmt.Sprintf("%s\nwhile decoding the value at key %q of:\n%s",
		msg, key, indentBlock(render.Dump(container), dumpIndent))
}

// allFailed aggregates OneOf branch failures as a fan-out: each branch
// keeps its complete independent message, delimited and indexed.
func allFailed(msgs []string) string {
	if len(msgs) == 0 {
		return "All alternatives failed: no alternatives were provided"
	}
	b := &strings.Builder{}
	b.WriteString("All alternatives failed:")
	for i, msg := range msgs {
		fmt.Fprintf(b, "\n\n  %d) %s", i+1, strings.ReplaceAll(msg, "\n", "\n     "))
	}
	return b.String()
}

// unscopedHint rewrites a layout child failure that did not come through
// a Field step. Decoders in an Object or Instance layout decode the
// whole current value, and forgetting the Field wrapper is a common
// authoring mistake.
func unscopedHint(key, msg string) string {
	return fmt.Sprintf("the decoder for %q ran against the enclosing value and failed; "+
		"wrap it in Field or At to decode a member of the object: %s", key, msg)
}
