package immu

import (
	"gopkg.in/yaml.v3"
)

// DecodeTreeYAML parses a YAML tree document into a Tree[T]. The document
// shape matches the JSON codec: nested value/left/right mappings, with null
// or an absent key meaning Leaf. Scalar values are retyped to T through the
// JSON codec, so the same documents decode identically from either format.
// Errors are reported as Issues, pointer-addressed like DecodeTreeJSON.
func DecodeTreeYAML[T any](data []byte) (Tree[T], error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Tree[T]{}, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return treeFromDoc[T](doc)
}
