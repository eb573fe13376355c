package tw

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Tree is a parsed configuration tree: string-keyed maps whose leaves are
// strings, numbers, booleans or lists. It is produced outside this package
// (see package twconfig) and treated as read-only here.
type Tree = map[string]any

// asMap accepts both map[string]any and the map[any]any shape some decoders
// produce for non-string keys (e.g. YAML shade keys like `500:`).
func asMap(v any) (Tree, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(Tree, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	case map[string]string:
		out := make(Tree, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	}
	return nil, false
}

// asString renders scalar leaves as CSS-ready strings. Numbers lose any
// trailing zeros so that 0.50 and 0.5 compare equal.
func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case int32:
		return strconv.FormatInt(int64(s), 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	}
	return "", false
}

// asStringList accepts a list of scalars or a single comma separated string.
func asStringList(v any) ([]string, bool) {
	switch l := v.(type) {
	case []string:
		return l, true
	case []any:
		out := make([]string, 0, len(l))
		for _, item := range l {
			if s, ok := asString(item); ok {
				out = append(out, s)
			}
		}
		return out, true
	case string:
		parts := strings.Split(l, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, true
	}
	return nil, false
}

func cloneValue(v any) any {
	if m, ok := asMap(v); ok {
		return cloneTree(m)
	}
	if l, ok := v.([]any); ok {
		out := make([]any, len(l))
		for i, item := range l {
			out[i] = cloneValue(item)
		}
		return out
	}
	return v
}

func cloneTree(t Tree) Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = cloneValue(v)
	}
	return out
}

// deepMerge writes src into dst key by key. Where both sides hold maps the
// merge recurses, otherwise src wins. Keys only present in dst survive.
func deepMerge(dst, src Tree) {
	for k, v := range src {
		if sm, ok := asMap(v); ok {
			if dm, ok := asMap(dst[k]); ok {
				merged := cloneTree(dm)
				deepMerge(merged, sm)
				dst[k] = merged
				continue
			}
		}
		dst[k] = cloneValue(v)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
