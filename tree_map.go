package immu

// Map returns a new tree with the same shape as t where every value has been
// replaced by fn(value). For Leaf the result is Leaf. fn is expected to be
// pure; it is invoked exactly once per node.
//
// Map is a package-level function because Go methods cannot introduce the
// result type parameter U. It recurses to a depth equal to the tree height;
// for pathologically deep trees prefer transforming via Values.
func Map[T, U any](t Tree[T], fn func(T) U) Tree[U] {
	return Tree[U]{root: mapNode(t.root, fn)}
}

func mapNode[T, U any](n *node[T], fn func(T) U) *node[U] {
	if n == nil {
		return nil
	}
	return &node[U]{
		value: fn(n.value),
		left:  mapNode(n.left, fn),
		right: mapNode(n.right, fn),
	}
}

// TryMap is Map for fallible transforms. The first error returned by fn
// aborts the whole call: the error is returned as-is and the result tree is
// Leaf. No partially transformed tree is ever observable. Nodes are visited
// in-order, so fn sees values in the same order Values reports them.
func TryMap[T, U any](t Tree[T], fn func(T) (U, error)) (Tree[U], error) {
	root, err := tryMapNode(t.root, fn)
	if err != nil {
		return Tree[U]{}, err
	}
	return Tree[U]{root: root}, nil
}

func tryMapNode[T, U any](n *node[T], fn func(T) (U, error)) (*node[U], error) {
	if n == nil {
		return nil, nil
	}
	left, err := tryMapNode(n.left, fn)
	if err != nil {
		return nil, err
	}
	v, err := fn(n.value)
	if err != nil {
		return nil, err
	}
	right, err := tryMapNode(n.right, fn)
	if err != nil {
		return nil, err
	}
	return &node[U]{value: v, left: left, right: right}, nil
}
