package script

import (
	"container/heap"
	"time"
)

// PendingTimer is one scheduled callback: an id, its absolute fire
// time, the insertion order used to break exact ties, and the
// callback itself.
type PendingTimer struct {
	ID          uint32
	FireAt      time.Time
	InsertionID uint64
	Callback    Callback
}

type timerHeap []*PendingTimer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if !h[i].FireAt.Equal(h[j].FireAt) {
		return h[i].FireAt.Before(h[j].FireAt)
	}
	return h[i].InsertionID < h[j].InsertionID
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) {
	*h = append(*h, x.(*PendingTimer))
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// TimerQueue is the cooperative min-heap ordered by (fire_at,
// insertion id) that SetTimeout/Pump are built on.
type TimerQueue struct {
	h       timerHeap
	nextID  uint32
	counter uint64
}

// NewTimerQueue returns an empty timer queue.
func NewTimerQueue() *TimerQueue {
	q := &TimerQueue{}
	heap.Init(&q.h)
	return q
}

// Schedule pushes a new pending timer firing at fireAt and returns its
// monotonically increasing id, per setTimeout's contract.
func (q *TimerQueue) Schedule(cb Callback, fireAt time.Time) uint32 {
	q.nextID++
	q.counter++
	heap.Push(&q.h, &PendingTimer{ID: q.nextID, FireAt: fireAt, InsertionID: q.counter, Callback: cb})
	return q.nextID
}

// Len reports the number of timers still pending.
func (q *TimerQueue) Len() int { return q.h.Len() }

// Pump fires every timer whose FireAt is at or before now, in
// non-decreasing fire_at order (ties broken by insertion id), by
// repeatedly popping the heap root rather than collecting a temporary
// slice of due timers first. An error returned by a callback is routed
// to console and does not stop the remaining timers from firing.
func (q *TimerQueue) Pump(now time.Time, console *Console) {
	for q.h.Len() > 0 {
		next := q.h[0]
		if next.FireAt.After(now) {
			return
		}
		heap.Pop(&q.h)
		if err := next.Callback.Invoke(); err != nil {
			console.Error(err.Error())
		}
	}
}
