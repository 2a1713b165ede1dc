package monkey

// Queue is a first in, first out list of worry levels.
type Queue struct {
	Data []uint64
	head int
}

// Push appends a value to the tail.
func (q *Queue) Push(value uint64) {
	if q.head > 0 && q.Empty() {
		q.Reset()
	}
	q.Data = append(q.Data, value)
}

// Pop removes the value at the head.
func (q *Queue) Pop() (value uint64, ok bool) {
	value, ok = q.Peek()
	if ok {
		q.head++
	}
	return
}

// Peek returns the value at the head.
func (q *Queue) Peek() (value uint64, ok bool) {
	if q.Empty() {
		return
	}

	return q.Data[q.head], true
}

func (q *Queue) Empty() bool {
	return q.Len() == 0
}

func (q *Queue) Len() int {
	return len(q.Data) - q.head
}

// Items returns the queued values, head first.
func (q *Queue) Items() []uint64 {
	return q.Data[q.head:]
}

// Reset drops all values, keeping the storage.
func (q *Queue) Reset() {
	if len(q.Data) > 0 {
		q.Data = q.Data[:0]
	}
	q.head = 0
}
