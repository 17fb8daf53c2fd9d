// Package render pretty-prints arbitrary untyped values with hard size
// bounds, so that deeply nested or very large structures stay readable
// when embedded in decode failure messages.
package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Options bound the rendered output.
type Options struct {
	MaxDepth  int // containers nested deeper render as [...] or {...}
	MaxItems  int // entries shown per container before eliding
	MaxString int // runes shown per string before eliding
}

// DefaultOptions are the bounds used for failure messages.
func DefaultOptions() Options { return Options{MaxDepth: 4, MaxItems: 8, MaxString: 60} }

// Dump renders v with the default bounds.
func Dump(v any) string { return DumpWith(v, DefaultOptions()) }

// DumpWith renders v with explicit bounds.
func DumpWith(v any, o Options) string {
	b := &strings.Builder{}
	write(b, v, o, 0)
	return b.String()
}

func write(b *strings.Builder, v any, o Options, depth int) {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		b.WriteString(strconv.FormatBool(t))
	case string:
		b.WriteString(quote(t, o.MaxString))
	case json.Number:
		b.WriteString(t.String())
	case float64:
		b.WriteString(strconv.FormatFloat(t, 'g', -1, 64))
	case float32:
		b.WriteString(strconv.FormatFloat(float64(t), 'g', -1, 32))
	case int:
		b.WriteString(strconv.Itoa(t))
	case int64:
		b.WriteString(strconv.FormatInt(t, 10))
	case uint64:
		b.WriteString(strconv.FormatUint(t, 10))
	case []any:
		writeArray(b, t, o, depth)
	case map[string]any:
		writeObject(b, t, o, depth)
	default:
		fmt.Fprintf(b, "%v", t)
	}
}

func writeArray(b *strings.Builder, xs []any, o Options, depth int) {
	if len(xs) == 0 {
		b.WriteString("[]")
		return
	}
	if depth >= o.MaxDepth {
		b.WriteString("[...]")
		return
	}
	pad := strings.Repeat("  ", depth+1)
	b.WriteString("[\n")
	for i, item := range xs {
		if o.MaxItems > 0 && i == o.MaxItems {
			fmt.Fprintf(b, "%s... (+%d more)\n", pad, len(xs)-o.MaxItems)
			break
		}
		b.WriteString(pad)
		write(b, item, o, depth+1)
		if i < len(xs)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("]")
}

func writeObject(b *strings.Builder, m map[string]any, o Options, depth int) {
	if len(m) == 0 {
		b.WriteString("{}")
		return
	}
	if depth >= o.MaxDepth {
		b.WriteString("{...}")
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pad := strings.Repeat("  ", depth+1)
	b.WriteString("{\n")
	for i, k := range keys {
		if o.MaxItems > 0 && i == o.MaxItems {
			fmt.Fprintf(b, "%s... (+%d more)\n", pad, len(keys)-o.MaxItems)
			break
		}
		b.WriteString(pad)
		b.WriteString(strconv.Quote(k))
		b.WriteString(": ")
		write(b, m[k], o, depth+1)
		if i < len(keys)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("}")
}

func quote(s string, max int) string {
	if max > 0 {
		rs := []rune(s)
		if len(rs) > max {
			s = string(rs[:max]) + "..."
		}
	}
	return strconv.Quote(s)
}
