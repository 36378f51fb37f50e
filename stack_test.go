package immu_test

import (
	"testing"

	immu "github.com/reoring/immu"
)

func TestStack_LIFO(t *testing.T) {
	var s immu.Stack[string]
	s.Push("a")
	s.Push("b")
	s.Push("c")
	if s.Len() != 3 {
		t.Fatalf("expected len 3, got %d", s.Len())
	}
	if v, ok := s.Peek(); !ok || v != "c" {
		t.Fatalf("expected peek c, got %q %v", v, ok)
	}
	for _, want := range []string{"c", "b", "a"} {
		v, ok := s.Pop()
		if !ok || v != want {
			t.Fatalf("expected pop %q, got %q %v", want, v, ok)
		}
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("expected pop on empty stack to report absence")
	}
}

func TestStack_Clear(t *testing.T) {
	var s immu.Stack[int]
	s.Push(1)
	s.Push(2)
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty stack after Clear, got len %d", s.Len())
	}
	if _, ok := s.Peek(); ok {
		t.Fatalf("expected peek on cleared stack to report absence")
	}
}
