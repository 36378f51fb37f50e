package immu

// Tree is an immutable binary tree of T. The zero value is Leaf, the empty
// tree. A non-empty tree is built with Of or NewNode and never changes
// afterwards; every transformation returns a new Tree.
//
// Tree is not a search tree: node placement is decided entirely by the caller
// at construction time, and the type offers no insert or delete. Because a
// Tree is never mutated it may be shared freely across goroutines without
// synchronization.
type Tree[T any] struct {
	root *node[T]
}

// node is the non-empty variant. A nil *node is Leaf.
type node[T any] struct {
	value       T
	left, right *node[T]
}

// Leaf returns the empty tree. It is equivalent to the zero value Tree[T]{}
// and exists for call sites that read better with an explicit constructor.
func Leaf[T any]() Tree[T] { return Tree[T]{} }

// Of returns a single-node tree holding v, with two Leaf children.
func Of[T any](v T) Tree[T] {
	return Tree[T]{root: &node[T]{value: v}}
}

// NewNode composes a tree whose root holds v with the given subtrees.
// The subtrees are adopted as-is; since trees are immutable this is safe even
// when a subtree value is reused elsewhere.
func NewNode[T any](v T, left, right Tree[T]) Tree[T] {
	return Tree[T]{root: &node[T]{value: v, left: left.root, right: right.root}}
}

// IsLeaf reports whether the tree is empty.
func (t Tree[T]) IsLeaf() bool { return t.root == nil }

// Len returns the number of nodes in the tree.
func (t Tree[T]) Len() int {
	n := 0
	next := t.InOrder()
	for _, ok := next(); ok; _, ok = next() {
		n++
	}
	return n
}

// Values flattens the tree in-order (left subtree, node value, right subtree)
// into a fresh slice. For Leaf the result is an empty, non-nil slice. The
// traversal is iterative with an explicit stack, so arbitrarily unbalanced
// trees do not exhaust the call stack.
func (t Tree[T]) Values() []T {
	out := make([]T, 0, 8)
	var st Stack[*node[T]]
	cur := t.root
	for cur != nil || st.Len() > 0 {
		for cur != nil {
			st.Push(cur)
			cur = cur.left
		}
		n, _ := st.Pop()
		out = append(out, n.value)
		cur = n.right
	}
	return out
}

// InOrder returns a closure iterator over the in-order value sequence.
// Each call yields the next value; ok turns false once the sequence is
// exhausted and stays false. The iterator holds only a path-to-root stack, so
// it never materializes the whole sequence.
func (t Tree[T]) InOrder() func() (T, bool) {
	var st Stack[*node[T]]
	cur := t.root
	return func() (T, bool) {
		for cur != nil {
			st.Push(cur)
			cur = cur.left
		}
		n, ok := st.Pop()
		if !ok {
			var zero T
			return zero, false
		}
		cur = n.right
		return n.value, true
	}
}
