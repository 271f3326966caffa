package structures

import "golang.org/x/exp/constraints"

type bstNode[T constraints.Ordered] struct {
	val         T
	left, right *bstNode[T]
}

// BST is an unbalanced binary search tree. Insert and Has cost
// O(log n) on random input and degrade to O(n) on sorted input; real
// code reaches for a balanced tree or a sorted slice instead.
type BST[T constraints.Ordered] struct {
	root *bstNode[T]
	size int
}

// NewBST builds a tree from items, ignoring duplicates.
func NewBST[T constraints.Ordered](items ...T) *BST[T] {
	t := &BST[T]{}
	for _, it := range items {
		t.Insert(it)
	}
	return t
}

// Insert adds v and reports whether it was new.
func (t *BST[T]) Insert(v T) bool {
	n := &bstNode[T]{val: v}
	if t.root == nil {
		t.root = n
		t.size++
		return true
	}
	cur := t.root
	for {
		switch {
		case v < cur.val:
			if cur.left == nil {
				cur.left = n
				t.size++
				return true
			}
			cur = cur.left
		case v > cur.val:
			if cur.right == nil {
				cur.right = n
				t.size++
				return true
			}
			cur = cur.right
		default:
			return false
		}
	}
}

// Has reports whether v is stored.
func (t *BST[T]) Has(v T) bool {
	for cur := t.root; cur != nil; {
		switch {
		case v < cur.val:
			cur = cur.left
		case v > cur.val:
			cur = cur.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest element: the leftmost node.
func (t *BST[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmpty
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}
	return cur.val, nil
}

// Max returns the largest element: the rightmost node.
func (t *BST[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmpty
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}
	return cur.val, nil
}

// InOrder returns the elements in sorted order. Left, node, right is
// what makes a search tree a sorting structure.
func (t *BST[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*bstNode[T])
	walk = func(n *bstNode[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.val)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Len returns the element count.
func (t *BST[T]) Len() int { return t.size }
