package input

import "sync/atomic"

const (
	// QueueSize must be a power of two.
	QueueSize = 256
	queueMask = QueueSize - 1
)

// Queue is a lock-free MPSC ring buffer of input events.
//   - Push: lock-free CAS, any number of producers (event pump goroutines)
//   - Drain: single consumer, the scene tick
//
// Overflow: oldest events are overwritten when full.
type Queue struct {
	events    [QueueSize]Event
	published [QueueSize]atomic.Bool // slot fully written
	head      atomic.Uint64          // read index
	tail      atomic.Uint64          // write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event. Safe for concurrent producers.
func (q *Queue) Push(ev Event) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & queueMask
		q.events[idx] = ev
		q.published[idx].Store(true) // after the write

		head := q.head.Load()
		if next-head > QueueSize {
			q.head.CompareAndSwap(head, next-QueueSize)
		}
		return
	}
}

// Drain returns all pending events in FIFO order. Single consumer only.
func (q *Queue) Drain() []Event {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		avail := tail - head
		if avail > QueueSize {
			avail = QueueSize
			head = tail - QueueSize
		}

		out := make([]Event, 0, avail)
		for i := uint64(0); i < avail; i++ {
			idx := (head + i) & queueMask
			if !q.published[idx].Load() {
				break // writer still busy with this slot
			}
			out = append(out, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len is the approximate number of pending events.
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	n := tail - head
	if n > QueueSize {
		return QueueSize
	}
	return int(n)
}
