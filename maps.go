package immu

// Merge returns a fresh map containing every entry of a and b. On key
// conflict the entry from b wins (keep-last). Neither input is mutated; nil
// inputs are treated as empty.
func Merge[K comparable, V any](a, b map[K]V) map[K]V {
	out := make(map[K]V, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// MergeFunc merges a and b into a fresh map, calling resolve(key, av, bv) for
// keys present in both. Keys present in only one input are copied unchanged.
// resolve returning the a-side value yields keep-first semantics.
func MergeFunc[K comparable, V any](a, b map[K]V, resolve func(k K, av, bv V) V) map[K]V {
	out := make(map[K]V, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, bv := range b {
		if av, ok := out[k]; ok {
			out[k] = resolve(k, av, bv)
			continue
		}
		out[k] = bv
	}
	return out
}
