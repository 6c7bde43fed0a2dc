package services

import (
	"sort"
	"strings"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/uuid"

	"github.com/citypulse/app-announcements/internal/models"
	"github.com/citypulse/app-announcements/internal/store"
)

// AnnouncementService exposes the read side of the announcement catalog.
// Every method materializes a fresh slice; callers can never mutate store
// internals through a returned value.
type AnnouncementService struct {
	store *store.AnnouncementStore

	// now is swappable so date-relative queries are testable.
	now func() time.Time
}

// NewAnnouncementService creates a service over the given store.
func NewAnnouncementService(s *store.AnnouncementStore) *AnnouncementService {
	return &AnnouncementService{
		store: s,
		now:   time.Now,
	}
}

// AddAnnouncement inserts an announcement into the catalog.
func (s *AnnouncementService) AddAnnouncement(a *models.Announcement) {
	s.store.Add(a)
}

// GetAnnouncementById returns the announcement with the given id, or nil.
func (s *AnnouncementService) GetAnnouncementById(id uuid.UUID) *models.Announcement {
	return s.store.GetByID(id)
}

// GetAllAnnouncements returns the whole catalog, newest date first. Equal
// dates are ordered by id so the result is deterministic.
func (s *AnnouncementService) GetAllAnnouncements() []*models.Announcement {
	all := s.store.All()
	sortByDateDesc(all)
	return all
}

// GetAnnouncementsByCategory returns one category, newest date first.
func (s *AnnouncementService) GetAnnouncementsByCategory(cat models.AnnouncementCategory) []*models.Announcement {
	bucket := s.store.ByCategory(cat)
	sortByDateDesc(bucket)
	return bucket
}

// GetAnnouncementsByDateRange returns announcements between two calendar
// dates, inclusive on both ends, newest first. Time-of-day on the bounds is
// ignored.
func (s *AnnouncementService) GetAnnouncementsByDateRange(from, to time.Time) []*models.Announcement {
	out := s.store.ByDateRange(from, to)
	sortByDateDesc(out)
	return out
}

// GetRecentAnnouncements returns the n newest announcements by date.
func (s *AnnouncementService) GetRecentAnnouncements(n int) []*models.Announcement {
	return truncate(s.GetAllAnnouncements(), n)
}

// GetRecentlyCreatedAnnouncements returns the n most recently published
// announcements, by creation time rather than occurrence date.
func (s *AnnouncementService) GetRecentlyCreatedAnnouncements(n int) []*models.Announcement {
	all := s.store.All()
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.String() < all[j].ID.String()
	})
	return truncate(all, n)
}

// GetUpcomingAnnouncements returns up to n announcements dated today or
// later, soonest first. The ascending order is deliberate: the nearest
// upcoming item is the useful one.
func (s *AnnouncementService) GetUpcomingAnnouncements(n int) []*models.Announcement {
	today := store.DateKey(s.now())

	all := s.store.All()
	upcoming := make([]*models.Announcement, 0, len(all))
	for _, a := range all {
		if store.DateKey(a.Date) >= today {
			upcoming = append(upcoming, a)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if !upcoming[i].Date.Equal(upcoming[j].Date) {
			return upcoming[i].Date.Before(upcoming[j].Date)
		}
		return upcoming[i].ID.String() < upcoming[j].ID.String()
	})
	return truncate(upcoming, n)
}

// GetFeaturedAnnouncements returns featured and high-priority announcements
// ordered most important first.
func (s *AnnouncementService) GetFeaturedAnnouncements() []*models.Announcement {
	return s.store.FeaturedByPriority()
}

// SearchAnnouncements performs an AND-of-terms text search over titles and
// descriptions. A blank term returns the whole catalog. Results come back
// newest date first.
func (s *AnnouncementService) SearchAnnouncements(term string) []*models.Announcement {
	if strings.TrimSpace(term) == "" {
		return s.GetAllAnnouncements()
	}

	var acc *roaring.Bitmap
	for _, token := range store.Tokenize(term) {
		ids := s.store.IDsForToken(token)
		if acc == nil {
			acc = ids
			continue
		}
		acc.And(ids)
		if acc.IsEmpty() {
			break
		}
	}
	if acc == nil {
		return s.GetAllAnnouncements()
	}

	out := s.store.Resolve(acc)
	sortByDateDesc(out)
	return out
}

// SearchWithFilters runs a text search and then narrows the result by
// category and date range. Filters only ever narrow; an unparseable
// category means no category filter, and the range applies only when both
// bounds are present. maxResults <= 0 means no limit.
func (s *AnnouncementService) SearchWithFilters(term, category string, from, to *time.Time, maxResults int) []*models.Announcement {
	out := s.SearchAnnouncements(term)

	if cat, ok := models.ParseCategory(category); ok {
		filtered := out[:0:0]
		for _, a := range out {
			if a.Category == cat {
				filtered = append(filtered, a)
			}
		}
		out = filtered
	}

	if from != nil && to != nil {
		fromKey := store.DateKey(*from)
		toKey := store.DateKey(*to)
		filtered := out[:0:0]
		for _, a := range out {
			key := store.DateKey(a.Date)
			if key >= fromKey && key <= toKey {
				filtered = append(filtered, a)
			}
		}
		out = filtered
	}

	return truncate(out, maxResults)
}

// GetUniqueCategories returns the categories that have announcements, as a
// name set.
func (s *AnnouncementService) GetUniqueCategories() map[string]struct{} {
	cats := s.store.UniqueCategories()
	out := make(map[string]struct{}, len(cats))
	for cat := range cats {
		out[cat.String()] = struct{}{}
	}
	return out
}

// GetUniqueDates returns the distinct calendar dates present, ascending.
func (s *AnnouncementService) GetUniqueDates() []string {
	return s.store.UniqueDates()
}

// CategoryCounts returns announcement counts per category.
func (s *AnnouncementService) CategoryCounts() map[models.AnnouncementCategory]int {
	return s.store.CategoryCounts()
}

// Count returns the catalog size.
func (s *AnnouncementService) Count() int {
	return s.store.Len()
}

func sortByDateDesc(anns []*models.Announcement) {
	sort.SliceStable(anns, func(i, j int) bool {
		if !anns[i].Date.Equal(anns[j].Date) {
			return anns[i].Date.After(anns[j].Date)
		}
		return anns[i].ID.String() < anns[j].ID.String()
	})
}

func truncate(anns []*models.Announcement, n int) []*models.Announcement {
	if n <= 0 || n >= len(anns) {
		return anns
	}
	return anns[:n]
}
