package structures

// Stack is LIFO on a slice. Push and Pop are amortized O(1); the
// backing array grows by doubling and is reused after pops.
type Stack[T any] struct {
	items []T
}

// Push places v on top.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element. The vacated slot is zeroed
// so the stack does not pin popped values for the garbage collector.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmpty
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// Len returns the element count.
func (s *Stack[T]) Len() int { return len(s.items) }

// Queue is FIFO on a slice with a moving head index. Dequeue advances
// the head instead of shifting every element; once the dead prefix
// outgrows the live half, the live part is copied down and the index
// reset, keeping Dequeue amortized O(1).
type Queue[T any] struct {
	items []T
	head  int
}

// Enqueue appends v at the back.
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.head >= len(q.items) {
		return zero, ErrEmpty
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	if q.head > len(q.items)/2 && q.head > 16 {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return v, nil
}

// Len returns the element count.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }
