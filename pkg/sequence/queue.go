package sequence

// Queue is a FIFO of T backed by a growable ring buffer. The zero value is
// ready to use. Queue is not safe for concurrent use.
type Queue[T any] struct {
	items []T
	head  int
	size  int
}

func NewQueue[T any](values ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, v := range values {
		q.PushBack(v)
	}
	return q
}

func (q *Queue[T]) PushBack(value T) {
	if q.size == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.size)%len(q.items)] = value
	q.size++
}

func (q *Queue[T]) PopFront() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	value := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return value, true
}

func (q *Queue[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.items[q.head], true
}

// Rotate moves the front element to the back. It is a no-op on an empty queue.
func (q *Queue[T]) Rotate() {
	if q.size < 2 {
		return
	}
	value, _ := q.PopFront()
	q.PushBack(value)
}

func (q *Queue[T]) Len() int {
	return q.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Items returns a copy of the queued values, front first.
func (q *Queue[T]) Items() []T {
	out := make([]T, q.size)
	for i := 0; i < q.size; i++ {
		out[i] = q.items[(q.head+i)%len(q.items)]
	}
	return out
}

func (q *Queue[T]) grow() {
	capacity := len(q.items) * 2
	if capacity == 0 {
		capacity = 4
	}
	items := make([]T, capacity)
	copy(items, q.Items())
	q.items = items
	q.head = 0
}
