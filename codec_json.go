package immu

import (
	"strings"

	json "github.com/goccy/go-json"
)

// Tree documents use a nested object form: a node is
// {"value": v, "left": <node>, "right": <node>} and Leaf is null (or an
// absent "left"/"right" key). The codec is strict: "value" is required and
// keys other than value/left/right are rejected.

// treeWire mirrors the document shape for encoding.
type treeWire[T any] struct {
	Value T            `json:"value"`
	Left  *treeWire[T] `json:"left,omitempty"`
	Right *treeWire[T] `json:"right,omitempty"`
}

// EncodeTreeJSON renders t as a JSON tree document. Leaf encodes as null.
func EncodeTreeJSON[T any](t Tree[T]) ([]byte, error) {
	return json.Marshal(wireFromNode(t.root))
}

func wireFromNode[T any](n *node[T]) *treeWire[T] {
	if n == nil {
		return nil
	}
	return &treeWire[T]{
		Value: n.value,
		Left:  wireFromNode(n.left),
		Right: wireFromNode(n.right),
	}
}

// DecodeTreeJSON parses a JSON tree document into a Tree[T]. On failure the
// returned error is an Issues value carrying every problem found, each
// addressed by a JSON Pointer into the document; the tree result is Leaf.
func DecodeTreeJSON[T any](data []byte) (Tree[T], error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Tree[T]{}, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return treeFromDoc[T](doc)
}

// treeFromDoc converts an already-decoded document (JSON or YAML shaped as
// map[string]any) into a typed tree.
func treeFromDoc[T any](doc any) (Tree[T], error) {
	root, iss := nodeFromDoc[T](doc, "")
	if len(iss) > 0 {
		return Tree[T]{}, iss
	}
	return Tree[T]{root: root}, nil
}

func nodeFromDoc[T any](doc any, path string) (*node[T], Issues) {
	if doc == nil {
		return nil, nil
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, Issues{{Path: ptr(path), Code: CodeInvalidType, Message: "expected object or null"}}
	}
	var iss Issues
	for k := range m {
		switch k {
		case "value", "left", "right":
		default:
			iss = AppendIssues(iss, Issue{Path: ptr(path + "/" + escapePtr(k)), Code: CodeUnknownKey, Message: "unknown key"})
		}
	}
	n := &node[T]{}
	raw, ok := m["value"]
	if !ok {
		iss = AppendIssues(iss, Issue{Path: ptr(path + "/value"), Code: CodeRequired, Message: "required property missing"})
	} else {
		v, err := convertValue[T](raw)
		if err != nil {
			iss = AppendIssues(iss, Issue{Path: ptr(path + "/value"), Code: CodeInvalidType, Message: err.Error(), Cause: err})
		} else {
			n.value = v
		}
	}
	left, lis := nodeFromDoc[T](m["left"], path+"/left")
	iss = append(iss, lis...)
	right, ris := nodeFromDoc[T](m["right"], path+"/right")
	iss = append(iss, ris...)
	if len(iss) > 0 {
		return nil, iss
	}
	n.left, n.right = left, right
	return n, nil
}

// convertValue retypes one document value as T through a JSON round trip.
// It keeps the per-node error local so the caller can report a precise path.
func convertValue[T any](raw any) (T, error) {
	var v T
	b, err := json.Marshal(raw)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, err
	}
	return v, nil
}

// ptr renders an accumulated path as a JSON Pointer ("" means the root "/").
func ptr(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

// escapePtr applies JSON Pointer token escaping (RFC 6901).
func escapePtr(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// MarshalJSON encodes Some as the held value and None as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

// UnmarshalJSON decodes null as None and anything else as Some of T.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
