package structural

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Pairs converts a mapping into a sequence of [key, value] pairs sorted by
// key, so the output is deterministic despite Go's randomized map iteration.
func Pairs(obj map[string]any) [][2]any {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([][2]any, 0, len(obj))
	for _, k := range keys {
		pairs = append(pairs, [2]any{k, obj[k]})
	}
	return pairs
}

// FromPairs builds a mapping from a sequence of [key, value] pairs, applying
// last-writer-wins semantics for duplicate keys. Non-string keys are
// stringified with their default format.
func FromPairs(pairs [][2]any) map[string]any {
	result := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, ok := pair[0].(string)
		if !ok {
			key = fmt.Sprintf("%v", pair[0])
		}
		result[key] = pair[1]
	}
	return result
}

// ParseQuery converts a URL query string into a mapping. Single-valued
// parameters are stored as plain strings and repeated parameters as arrays,
// preserving their order of appearance. A leading "?" is tolerated.
// Malformed input falls back to an empty mapping rather than an error.
func ParseQuery(qs string) map[string]any {
	qs = strings.TrimPrefix(strings.TrimSpace(qs), "?")
	if qs == "" {
		return map[string]any{}
	}

	values, err := url.ParseQuery(qs)
	if err != nil {
		return map[string]any{}
	}

	result := make(map[string]any, len(values))
	for k, vs := range values {
		if len(vs) == 1 {
			result[k] = vs[0]
			continue
		}
		arr := make([]any, len(vs))
		for i, v := range vs {
			arr[i] = v
		}
		result[k] = arr
	}
	return result
}
