package store

import "github.com/citypulse/app-announcements/internal/models"

// priorityEntry is one member of the featured/high-priority queue. seq is
// the store insertion sequence and breaks ties so ordering is deterministic.
type priorityEntry struct {
	ann *models.Announcement
	seq uint32
}

// priorityHeap is a min-heap over priority value, so the most important
// announcement sits at the root. It implements container/heap.Interface.
type priorityHeap []priorityEntry

func (h priorityHeap) Len() int { return len(h) }

func (h priorityHeap) Less(i, j int) bool {
	if h[i].ann.Priority != h[j].ann.Priority {
		return h[i].ann.Priority < h[j].ann.Priority
	}
	return h[i].seq < h[j].seq
}

func (h priorityHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *priorityHeap) Push(x any) {
	*h = append(*h, x.(priorityEntry))
}

func (h *priorityHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}
