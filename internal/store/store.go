// Package store owns the canonical in-memory announcement collection and
// the synchronized views over it: by id, by date, by category, an inverted
// text index and a priority queue of featured/high-priority items. All five
// views are maintained behind a single locked write path so no caller can
// ever observe a partially indexed announcement.
package store

import (
	"container/heap"
	"sort"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/uuid"

	"github.com/citypulse/app-announcements/internal/models"
)

const dateKeyLayout = "2006-01-02"

// DateKey reduces a timestamp to the calendar-date granularity used by the
// by-date view and range scans.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// AnnouncementStore holds the announcement catalog for the lifetime of the
// process. There is no delete or update; the store only grows.
type AnnouncementStore struct {
	mu sync.RWMutex

	// seq order of insertion; the position in this slice is the internal
	// document number referenced by the inverted index.
	bySeq []*models.Announcement

	byID       map[uuid.UUID]*models.Announcement
	byDate     map[string][]*models.Announcement
	dateKeys   []string // ascending, mirrors byDate's key set
	byCategory map[models.AnnouncementCategory][]*models.Announcement
	textIndex  map[string]*roaring.Bitmap
	featured   priorityHeap
}

// NewAnnouncementStore creates an empty store.
func NewAnnouncementStore() *AnnouncementStore {
	return &AnnouncementStore{
		byID:       make(map[uuid.UUID]*models.Announcement),
		byDate:     make(map[string][]*models.Announcement),
		byCategory: make(map[models.AnnouncementCategory][]*models.Announcement),
		textIndex:  make(map[string]*roaring.Bitmap),
	}
}

// Add inserts an announcement into every view. Callers must not reuse ids;
// a duplicate id overwrites the by-id entry but is not reported.
//
// Membership in the featured queue is decided once, here: featured
// announcements and those at High priority or above. It is not re-evaluated
// later, which is safe because announcements are immutable after Add.
func (s *AnnouncementStore) Add(a *models.Announcement) {
	if a == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq := uint32(len(s.bySeq))
	s.bySeq = append(s.bySeq, a)
	s.byID[a.ID] = a

	key := DateKey(a.Date)
	if _, ok := s.byDate[key]; !ok {
		s.insertDateKey(key)
	}
	s.byDate[key] = append(s.byDate[key], a)

	s.byCategory[a.Category] = append(s.byCategory[a.Category], a)

	for _, token := range Tokenize(indexText(a.Title, a.Description)) {
		bm, ok := s.textIndex[token]
		if !ok {
			bm = roaring.New()
			s.textIndex[token] = bm
		}
		bm.Add(seq)
	}

	if a.IsFeatured || a.Priority <= models.PriorityHigh {
		heap.Push(&s.featured, priorityEntry{ann: a, seq: seq})
	}
}

// insertDateKey keeps dateKeys sorted ascending. Called with the write lock
// held.
func (s *AnnouncementStore) insertDateKey(key string) {
	i := sort.SearchStrings(s.dateKeys, key)
	s.dateKeys = append(s.dateKeys, "")
	copy(s.dateKeys[i+1:], s.dateKeys[i:])
	s.dateKeys[i] = key
}

// GetByID returns the announcement with the given id, or nil when absent.
func (s *AnnouncementStore) GetByID(id uuid.UUID) *models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// All returns every announcement in insertion order.
func (s *AnnouncementStore) All() []*models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Announcement, len(s.bySeq))
	copy(out, s.bySeq)
	return out
}

// Len returns the number of stored announcements.
func (s *AnnouncementStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bySeq)
}

// ByCategory returns the category's announcements in insertion order.
func (s *AnnouncementStore) ByCategory(cat models.AnnouncementCategory) []*models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket := s.byCategory[cat]
	out := make([]*models.Announcement, len(bucket))
	copy(out, bucket)
	return out
}

// ByDateRange scans the ordered date view between two inclusive calendar
// dates. Time-of-day on the bounds is ignored.
func (s *AnnouncementStore) ByDateRange(from, to time.Time) []*models.Announcement {
	fromKey := DateKey(from)
	toKey := DateKey(to)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Announcement
	start := sort.SearchStrings(s.dateKeys, fromKey)
	for i := start; i < len(s.dateKeys) && s.dateKeys[i] <= toKey; i++ {
		out = append(out, s.byDate[s.dateKeys[i]]...)
	}
	return out
}

// IDsForToken returns a copy of the id set indexed under one normalized
// token, or an empty bitmap when the token is unknown.
func (s *AnnouncementStore) IDsForToken(token string) *roaring.Bitmap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if bm, ok := s.textIndex[token]; ok {
		return bm.Clone()
	}
	return roaring.New()
}

// Resolve maps internal document numbers back to announcements, in
// ascending document order.
func (s *AnnouncementStore) Resolve(ids *roaring.Bitmap) []*models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Announcement, 0, ids.GetCardinality())
	it := ids.Iterator()
	for it.HasNext() {
		seq := it.Next()
		if int(seq) < len(s.bySeq) {
			out = append(out, s.bySeq[seq])
		}
	}
	return out
}

// FeaturedByPriority returns the members of the priority queue ordered most
// important first. The read sorts a copy of the heap's backing slice, so
// the queue itself is never drained.
func (s *AnnouncementStore) FeaturedByPriority() []*models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make(priorityHeap, len(s.featured))
	copy(entries, s.featured)
	sort.Sort(entries)

	out := make([]*models.Announcement, len(entries))
	for i, e := range entries {
		out[i] = e.ann
	}
	return out
}

// UniqueCategories returns the set of categories with at least one
// announcement.
func (s *AnnouncementStore) UniqueCategories() map[models.AnnouncementCategory]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[models.AnnouncementCategory]struct{}, len(s.byCategory))
	for cat := range s.byCategory {
		out[cat] = struct{}{}
	}
	return out
}

// UniqueDates returns the distinct calendar dates present, ascending.
func (s *AnnouncementStore) UniqueDates() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.dateKeys))
	copy(out, s.dateKeys)
	return out
}

// CategoryCounts returns the number of announcements per category.
func (s *AnnouncementStore) CategoryCounts() map[models.AnnouncementCategory]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[models.AnnouncementCategory]int, len(s.byCategory))
	for cat, bucket := range s.byCategory {
		out[cat] = len(bucket)
	}
	return out
}
