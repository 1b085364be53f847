package inpaint

import "container/heap"

// bandItem is a narrow band entry. Entries are ordered by priority,
// then by row and finally by column, which makes the visiting order total.
type bandItem struct {
	priority float32
	x, y     int
}

func (a bandItem) less(b bandItem) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.y != b.y {
		return a.y < b.y
	}
	return a.x < b.x
}

type bandHeap []bandItem

func (h bandHeap) Len() int           { return len(h) }
func (h bandHeap) Less(i, j int) bool { return h[i].less(h[j]) }
func (h bandHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *bandHeap) Push(x any) { *h = append(*h, x.(bandItem)) }

func (h *bandHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// narrowBand is the min-priority queue driving the fast marching order.
// It tolerates duplicate coordinates; callers decide what a stale entry is.
type narrowBand struct {
	items bandHeap
}

func newNarrowBand(capacity int) *narrowBand {
	return &narrowBand{items: make(bandHeap, 0, capacity)}
}

func (b *narrowBand) len() int { return b.items.Len() }

func (b *narrowBand) push(priority float32, x, y int) {
	heap.Push(&b.items, bandItem{priority: priority, x: x, y: y})
}

// pop removes the smallest entry. The boolean is false on an empty band.
func (b *narrowBand) pop() (bandItem, bool) {
	if b.items.Len() == 0 {
		return bandItem{}, false
	}
	return heap.Pop(&b.items).(bandItem), true
}

// clone returns an independent copy of the band.
func (b *narrowBand) clone() *narrowBand {
	items := make(bandHeap, len(b.items), cap(b.items))
	copy(items, b.items)
	return &narrowBand{items: items}
}
