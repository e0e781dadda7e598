package structural

import "reflect"

// kind is the tagged classification of a nested-structure value. Dispatching
// on an explicit tag keeps merge/equal/clone logic from conflating arrays,
// mappings and nil the way duck-typed probing does.
type kind int

const (
	kindPrimitive kind = iota
	kindArray
	kindMapping
)

func kindOf(v any) kind {
	switch v.(type) {
	case map[string]any:
		return kindMapping
	case []any:
		return kindArray
	default:
		return kindPrimitive
	}
}

// containerID returns a stable identity for a map or slice container so
// recursion can recognize a structure it is already inside of.
func containerID(v any) uintptr {
	return reflect.ValueOf(v).Pointer()
}

// Merge deeply merges source into target and returns a fresh mapping.
// Neither input is mutated. Keys present only in target keep their values;
// keys present in source overwrite, except when both sides hold mappings,
// which are merged recursively. Arrays are never merged element-wise: the
// source array replaces the target one wholesale, as does any other kind
// conflict (source wins). Nil inputs are treated as empty mappings.
//
// Values that are not merged recursively are carried over by reference;
// callers that need full isolation should Clone the result. Merge returns
// ErrCycleDetected when the recursive merge encounters a mapping that
// contains itself, which would otherwise recurse without bound.
func Merge(target, source map[string]any) (map[string]any, error) {
	return mergeMaps(target, source, make(map[uintptr]bool), make(map[uintptr]bool))
}

// targetPath and sourcePath track the chains of mappings currently being
// merged on each side. The sides are tracked separately so that merging a
// map with itself, or with a map sharing subtrees, is not mistaken for a
// cycle.
func mergeMaps(target, source map[string]any, targetPath, sourcePath map[uintptr]bool) (map[string]any, error) {
	if target != nil {
		id := containerID(target)
		if targetPath[id] {
			return nil, ErrCycleDetected
		}
		targetPath[id] = true
		defer delete(targetPath, id)
	}
	if source != nil {
		id := containerID(source)
		if sourcePath[id] {
			return nil, ErrCycleDetected
		}
		sourcePath[id] = true
		defer delete(sourcePath, id)
	}

	result := make(map[string]any, len(target)+len(source))
	for k, v := range target {
		result[k] = v
	}

	for k, sv := range source {
		tv, exists := result[k]
		if exists && kindOf(tv) == kindMapping && kindOf(sv) == kindMapping {
			merged, err := mergeMaps(tv.(map[string]any), sv.(map[string]any), targetPath, sourcePath)
			if err != nil {
				return nil, err
			}
			result[k] = merged
			continue
		}
		result[k] = sv
	}

	return result, nil
}

// Equal reports whether a and b are structurally equal. Mappings are equal
// when they hold the same keys with pairwise-equal values; arrays when they
// have the same length and pairwise-equal elements; primitives by value,
// with numeric values compared across integer and floating-point
// representations (1 equals 1.0, as JSON decoding produces). NaN follows
// IEEE semantics and is not equal to anything, itself included. Key order
// never matters. Equal never panics on well-formed structures; values
// outside the nested-structure domain compare unequal unless identical
// comparable primitives.
//
// Cyclic structures terminate: a pair of containers already under
// comparison is assumed equal, the same convention reflect.DeepEqual uses.
func Equal(a, b any) bool {
	return equalValues(a, b, make(map[visitPair]bool))
}

type visitPair struct {
	a, b uintptr
}

func equalValues(a, b any, visited map[visitPair]bool) bool {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		// A numeric primitive never shares a kind with a container, so the
		// only cross-kind leniency needed is handled below.
		return false
	}

	switch ka {
	case kindMapping:
		am, bm := a.(map[string]any), b.(map[string]any)
		if len(am) != len(bm) {
			return false
		}
		pair := visitPair{containerID(am), containerID(bm)}
		if visited[pair] {
			return true
		}
		visited[pair] = true
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !equalValues(av, bv, visited) {
				return false
			}
		}
		return true

	case kindArray:
		aa, ba := a.([]any), b.([]any)
		if len(aa) != len(ba) {
			return false
		}
		if len(aa) == 0 {
			return true
		}
		pair := visitPair{containerID(aa), containerID(ba)}
		if visited[pair] {
			return true
		}
		visited[pair] = true
		for i := range aa {
			if !equalValues(aa[i], ba[i], visited) {
				return false
			}
		}
		return true

	default:
		return equalPrimitives(a, b)
	}
}

func equalPrimitives(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	af, aNum := numericValue(a)
	bf, bNum := numericValue(b)
	if aNum || bNum {
		// == on float64 gives IEEE semantics: NaN compares unequal.
		return aNum && bNum && af == bf
	}

	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	default:
		// Outside the nested-structure domain. Comparing with == could
		// panic for uncomparable types, so these are simply unequal.
		return false
	}
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Clone returns a fully independent deep copy of value: no container is
// shared with the input at any nesting level. The copy is an explicit
// recursive walk rather than a serialization round-trip, so non-finite
// floats survive intact. Values outside the nested-structure domain
// (functions, channels, structs, typed slices, ...) fail with
// ErrNotCloneable, and self-referential structures fail with
// ErrCycleDetected instead of recursing forever.
func Clone(value any) (any, error) {
	return cloneValue(value, make(map[uintptr]bool))
}

// MustClone is like Clone but panics on error. Useful for static fixture
// data known to be well-formed.
func MustClone(value any) any {
	cloned, err := Clone(value)
	if err != nil {
		panic("structural: " + err.Error())
	}
	return cloned
}

func cloneValue(value any, onPath map[uintptr]bool) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil

	case map[string]any:
		id := containerID(v)
		if onPath[id] {
			return nil, ErrCycleDetected
		}
		onPath[id] = true
		defer delete(onPath, id)

		result := make(map[string]any, len(v))
		for k, elem := range v {
			cloned, err := cloneValue(elem, onPath)
			if err != nil {
				return nil, err
			}
			result[k] = cloned
		}
		return result, nil

	case []any:
		if len(v) == 0 {
			return []any{}, nil
		}
		id := containerID(v)
		if onPath[id] {
			return nil, ErrCycleDetected
		}
		onPath[id] = true
		defer delete(onPath, id)

		result := make([]any, len(v))
		for i, elem := range v {
			cloned, err := cloneValue(elem, onPath)
			if err != nil {
				return nil, err
			}
			result[i] = cloned
		}
		return result, nil

	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, nil

	default:
		return nil, ErrNotCloneable
	}
}
