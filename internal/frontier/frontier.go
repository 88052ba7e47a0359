// Package frontier provides the priority queue behind the weighted grid
// searches: a binary min-heap over cell indices ordered by an int64
// priority, with ties broken first-pushed-first-popped.
//
// Entries are never updated in place. A search that finds a better priority
// for a cell pushes a fresh entry; the outdated one stays in the heap and is
// skipped by the caller when popped (lazy deletion).
package frontier

import "container/heap"

// Item is one heap entry.
type Item struct {
	Index    int   // cell index (row*cols+col)
	Priority int64 // ordering key, smaller first
	Cost     int64 // accumulated cost carried alongside the key
	seq      uint64
}

// Queue is a stable min-heap of Items. The zero value is not ready for use;
// call New.
type Queue struct {
	items itemHeap
	next  uint64
}

// New returns an empty Queue with room for capacity entries.
func New(capacity int) *Queue {
	q := &Queue{items: make(itemHeap, 0, capacity)}
	heap.Init(&q.items)
	return q
}

// Len returns the number of entries, stale ones included.
func (q *Queue) Len() int { return q.items.Len() }

// Push inserts a new entry. Among equal priorities, earlier pushes pop first.
func (q *Queue) Push(index int, priority, cost int64) {
	heap.Push(&q.items, Item{Index: index, Priority: priority, Cost: cost, seq: q.next})
	q.next++
}

// Pop removes and returns the entry with the smallest priority.
// It panics on an empty Queue.
func (q *Queue) Pop() Item {
	return heap.Pop(&q.items).(Item)
}

// itemHeap implements heap.Interface ordered by (Priority, seq).
type itemHeap []Item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
