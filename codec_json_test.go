package immu_test

import (
	"reflect"
	"testing"

	immu "github.com/reoring/immu"
)

func TestEncodeTreeJSON_LeafIsNull(t *testing.T) {
	b, err := immu.EncodeTreeJSON(immu.Leaf[int]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("expected null, got %s", b)
	}
}

func TestTreeJSON_RoundTrip(t *testing.T) {
	tr := immu.NewNode(5, immu.Of(6), immu.Of(7))
	b, err := immu.EncodeTreeJSON(tr)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	got, err := immu.DecodeTreeJSON[int](b)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if !reflect.DeepEqual(got.Values(), []int{6, 5, 7}) {
		t.Fatalf("expected [6 5 7], got %v", got.Values())
	}
}

func TestDecodeTreeJSON_AbsentChildrenAreLeaf(t *testing.T) {
	got, err := immu.DecodeTreeJSON[string]([]byte(`{"value":"root","left":{"value":"l"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got.Values(), []string{"l", "root"}) {
		t.Fatalf("expected [l root], got %v", got.Values())
	}
}

func TestDecodeTreeJSON_NullIsLeaf(t *testing.T) {
	got, err := immu.DecodeTreeJSON[int]([]byte(`null`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsLeaf() {
		t.Fatalf("expected Leaf for null document")
	}
}

func TestDecodeTreeJSON_MissingValue(t *testing.T) {
	_, err := immu.DecodeTreeJSON[int]([]byte(`{"value":1,"left":{}}`))
	iss, ok := immu.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 1 || iss[0].Code != immu.CodeRequired || iss[0].Path != "/left/value" {
		t.Fatalf("expected required at /left/value, got %+v", iss)
	}
}

func TestDecodeTreeJSON_UnknownKey(t *testing.T) {
	_, err := immu.DecodeTreeJSON[int]([]byte(`{"value":1,"color":"red"}`))
	iss, ok := immu.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 1 || iss[0].Code != immu.CodeUnknownKey || iss[0].Path != "/color" {
		t.Fatalf("expected unknown_key at /color, got %+v", iss)
	}
}

func TestDecodeTreeJSON_ValueTypeMismatch(t *testing.T) {
	_, err := immu.DecodeTreeJSON[int]([]byte(`{"value":1,"right":{"value":"nope"}}`))
	iss, ok := immu.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 1 || iss[0].Code != immu.CodeInvalidType || iss[0].Path != "/right/value" {
		t.Fatalf("expected invalid_type at /right/value, got %+v", iss)
	}
}

func TestDecodeTreeJSON_NonObjectNode(t *testing.T) {
	_, err := immu.DecodeTreeJSON[int]([]byte(`{"value":1,"left":[1,2]}`))
	iss, ok := immu.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 1 || iss[0].Code != immu.CodeInvalidType || iss[0].Path != "/left" {
		t.Fatalf("expected invalid_type at /left, got %+v", iss)
	}
}

func TestDecodeTreeJSON_CollectsAllIssues(t *testing.T) {
	doc := []byte(`{"value":true,"left":{"extra":1},"right":"x"}`)
	tr, err := immu.DecodeTreeJSON[int](doc)
	if !tr.IsLeaf() {
		t.Fatalf("expected Leaf result on failure")
	}
	iss, ok := immu.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	// invalid root value, unknown key plus missing value on the left, invalid right node
	if len(iss) != 4 {
		t.Fatalf("expected 4 issues, got %d: %+v", len(iss), iss)
	}
}

func TestDecodeTreeJSON_Malformed(t *testing.T) {
	_, err := immu.DecodeTreeJSON[int]([]byte(`{`))
	iss, ok := immu.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != immu.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestOptionJSON(t *testing.T) {
	b, err := immu.Some(7).MarshalJSON()
	if err != nil || string(b) != "7" {
		t.Fatalf("expected 7, got %s (%v)", b, err)
	}
	b, err = immu.None[int]().MarshalJSON()
	if err != nil || string(b) != "null" {
		t.Fatalf("expected null, got %s (%v)", b, err)
	}

	var o immu.Option[int]
	if err := o.UnmarshalJSON([]byte("7")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := o.Unwrap(); !ok || v != 7 {
		t.Fatalf("expected Some(7), got %v %v", v, ok)
	}
	if err := o.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.IsSome() {
		t.Fatalf("expected None after null")
	}
}
