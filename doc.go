package immu

// Package immu provides:
//
// - An immutable generic binary tree (Tree) with in-order traversal and structure-preserving Map/TryMap
// - Optional values via Option (Some/None, Or coalescing, MapOption/FlatMap chaining, Compact)
// - Small generic containers and helpers (Stack, Merge/MergeFunc for maps, Wrap for coordinates)
// - JSON/YAML tree documents with a stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Every container value is immutable once built; operations return new values, never mutate.
// - Keep the whole public API in the root package; place the CLI under cmd/immu.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  t := immu.NewNode(5, immu.Of(6), immu.Of(7))
//  t.Values()                                   // => [6 5 7]
//  u := immu.Map(t, func(v int) int { return v + 1 })
//  u.Values()                                   // => [7 6 8]
//
//  t2, err := immu.DecodeTreeJSON[string](data)
//  out, err := immu.EncodeTreeJSON(t2)
//
