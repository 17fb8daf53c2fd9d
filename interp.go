package jsonbound

import (
	"fmt"
	"sort"
)

// run applies a decoder node to a value. It dispatches purely on the
// node's kind; recursion depth is bounded by the nesting depth of the
// input (and, for Lazy decoders, by how deep the recursive structure
// actually goes).
func run(n *node, v any) result {
	if n == nil {
		// A zero-value Decoder carries no behavior; report the misuse
		// instead of dereferencing it.
		return reject("Cannot run a zero-value Decoder; construct decoders with functions like String, Field, or Object")
	}
	switch n.kind {
	case kindString:
		if s, ok := v.(string); ok {
			return pass(s)
		}
		return reject(Expected("a string", v))

	case kindNumber:
		if f, ok := toFloat(v); ok {
			return pass(f)
		}
		return reject(Expected("a number", v))

	case kindInteger:
		if i, ok := toInt(v); ok {
			return pass(i)
		}
		return reject(Expected("an integer", v))

	case kindBool:
		if b, ok := v.(bool); ok {
			return pass(b)
		}
		return reject(Expected("a boolean", v))

	case kindUnknown:
		return pass(v)

	case kindNull:
		if v == nil {
			return pass(n.fallback)
		}
		return reject(Expected("null", v))

	case kindField:
		m, ok := v.(map[string]any)
		if !ok || m == nil {
			return rejectViaField(Expected(fmt.Sprintf("an object with a field named %q", n.key), v))
		}
		member, present := m[n.key]
		if !present {
			if n.hasFallback {
				return pass(n.fallback)
			}
			return rejectViaField(Expected(fmt.Sprintf("an object with a field named %q", n.key), v))
		}
		res := run(n.child, member)
		if !res.ok {
			return rejectViaField(inFieldTrace(n.key, v, res.msg))
		}
		return res

	case kindIndex:
		xs, ok := v.([]any)
		if !ok {
			return reject(Expected("an array", v))
		}
		if n.index < 0 || n.index >= len(xs) {
			return reject(Expected(fmt.Sprintf("an array with an item at index %d", n.index), v))
		}
		res := run(n.child, xs[n.index])
		if !res.ok {
			return reject(atIndexTrace(n.index, v, res.msg))
		}
		return res

	case kindMany:
		xs, ok := v.([]any)
		if !ok {
			return reject(Expected("an array", v))
		}
		items := make([]any, 0, len(xs))
		for i, item := range xs {
			res := run(n.child, item)
			if !res.ok {
				return reject(atIndexTrace(i, v, res.msg))
			}
			items = append(items, res.val)
		}
		return pass(n.assemble(items))

	case kindDict:
		m, ok := v.(map[string]any)
		if !ok || m == nil {
			return reject(Expected("an object", v))
		}
		// Sorted iteration keeps the first reported failure deterministic.
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make(map[string]any, len(m))
		for _, k := range keys {
			res := run(n.child, m[k])
			if !res.ok {
				return reject(atKeyTrace(k, v, res.msg))
			}
			entries[k] = res.val
		}
		return pass(n.assembleMap(entries))

	case kindObject, kindInstance:
		var target any
		var agg map[string]any
		if n.kind == kindInstance {
			target = n.construct()
		} else {
			agg = make(map[string]any, len(n.layout))
		}
		// Each child decoder runs against the whole current value;
		// callers scope per-field access with Field/At themselves.
		for _, slot := range n.layout {
			res := run(slot.n, v)
			if !res.ok {
				if !res.viaField {
					return reject(unscopedHint(slot.key, res.msg))
				}
				return reject(res.msg)
			}
			if slot.assign != nil {
				slot.assign(target, res.val)
			} else {
				agg[slot.key] = res.val
			}
		}
		if n.kind == kindInstance {
			return pass(target)
		}
		return pass(agg)

	case kindMap:
		res := run(n.child, v)
		if !res.ok {
			return res
		}
		return pass(n.transform(res.val))

	case kindAndThen:
		res := run(n.child, v)
		if !res.ok {
			return res
		}
		// The produced decoder is re-applied to the original value, not
		// the intermediate result.
		return run(n.chain(res.val), v)

	case kindOneOf:
		msgs := make([]string, 0, len(n.alts))
		for _, alt := range n.alts {
			res := run(alt, v)
			if res.ok {
				return res
			}
			msgs = append(msgs, res.msg)
		}
		return reject(allFailed(msgs))

	case kindLazy:
		return run(n.thunk(), v)

	case kindSucceed:
		return pass(n.fallback)

	case kindFail:
		return reject(n.text)
	}

	return reject(fmt.Sprintf("unhandled decoder kind %d", n.kind))
}
