package structural

import "strings"

// Get walks obj along the dot-separated path and returns the value found
// there. The second return value reports presence: a missing key or a
// non-mapping intermediate makes the whole path absent, which is distinct
// from a stored nil value. Get never mutates obj and never fails.
//
//	v, ok := structural.Get(cfg, "server.tls.cert")
func Get(obj map[string]any, path string) (any, bool) {
	if obj == nil || path == "" {
		return nil, false
	}

	current := any(obj)
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Set assigns value at the dot-separated path inside obj, mutating obj in
// place. Intermediate mappings are created as needed; an intermediate that
// exists but is not a mapping is overwritten with a fresh one. This is the
// only operation in the package that mutates its argument.
//
// After a successful Set, Get(obj, path) returns value. Callers sharing obj
// across goroutines must synchronize externally.
func Set(obj map[string]any, path string, value any) error {
	if obj == nil {
		return ErrNilMapping
	}
	if path == "" {
		return ErrEmptyPath
	}

	segments := strings.Split(path, ".")
	current := obj
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}

	current[segments[len(segments)-1]] = value
	return nil
}
