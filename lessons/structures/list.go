package structures

import "errors"

// ErrEmpty reports a take from an empty container.
var ErrEmpty = errors.New("structures: empty container")

type listNode[T any] struct {
	val  T
	next *listNode[T]
}

// List is a singly linked list with a tail pointer, so both ends accept
// pushes in O(1). Reads anywhere else walk the chain.
type List[T any] struct {
	head, tail *listNode[T]
	size       int
}

// NewList builds a list holding items in order.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	for _, it := range items {
		l.PushBack(it)
	}
	return l
}

// PushFront prepends v.
func (l *List[T]) PushFront(v T) {
	n := &listNode[T]{val: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// PushBack appends v.
func (l *List[T]) PushBack(v T) {
	n := &listNode[T]{val: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	return n.val, nil
}

// Len returns the element count.
func (l *List[T]) Len() int { return l.size }

// Items copies the list into a slice, front to back.
func (l *List[T]) Items() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}
