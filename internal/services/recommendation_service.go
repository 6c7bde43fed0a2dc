package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/citypulse/app-announcements/internal/models"
	"github.com/citypulse/app-announcements/internal/utils"
)

// DefaultSearchHistoryLimit caps the per-user search history.
const DefaultSearchHistoryLimit = 20

// RecommendationService tracks implicit user signals (searches and views)
// and derives personalized, trending and related announcement lists from
// them. Tracking is best-effort telemetry: every operation is a total
// function, and a blank user id or nil announcement is silently ignored so
// tracking can never break a request path.
type RecommendationService struct {
	announcements *AnnouncementService

	mu sync.RWMutex
	// searchHistory holds recent lower-cased terms per user, oldest first,
	// capped at historyLimit with FIFO eviction.
	searchHistory map[string][]string
	// categoryPrefs counts tracked interactions per category per user.
	categoryPrefs map[string]map[models.AnnouncementCategory]int
	// viewCounts is the global per-announcement view counter.
	viewCounts map[uuid.UUID]int
	// viewedBy records which announcements each user has seen.
	viewedBy map[string]map[uuid.UUID]struct{}
	// trending buckets announcement ids by their current view count. An id
	// moves buckets on every increment; empty buckets are removed.
	trending map[int][]uuid.UUID

	historyLimit int
	now          func() time.Time
}

// NewRecommendationService creates an engine reading candidates through the
// given announcement service. historyLimit <= 0 selects the default cap.
func NewRecommendationService(announcements *AnnouncementService, historyLimit int) *RecommendationService {
	if historyLimit <= 0 {
		historyLimit = DefaultSearchHistoryLimit
	}
	return &RecommendationService{
		announcements: announcements,
		searchHistory: make(map[string][]string),
		categoryPrefs: make(map[string]map[models.AnnouncementCategory]int),
		viewCounts:    make(map[uuid.UUID]int),
		viewedBy:      make(map[string]map[uuid.UUID]struct{}),
		trending:      make(map[int][]uuid.UUID),
		historyLimit:  historyLimit,
		now:           time.Now,
	}
}

// TrackSearch records a search term for a user. When the category name
// parses to a known category, the user's preference count for it is bumped
// as well; unknown names are ignored at this boundary.
func (r *RecommendationService) TrackSearch(userID, term, category string) {
	if strings.TrimSpace(userID) == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if t := strings.ToLower(strings.TrimSpace(term)); t != "" {
		history := append(r.searchHistory[userID], t)
		if len(history) > r.historyLimit {
			history = history[len(history)-r.historyLimit:]
		}
		r.searchHistory[userID] = history
	}

	if cat, ok := models.ParseCategory(category); ok {
		r.bumpPreference(userID, cat)
	}
}

// TrackView records that a user viewed an announcement: the global view
// count and trending bucket move, the user's viewed set grows, and the
// announcement's category counts toward the user's preferences.
func (r *RecommendationService) TrackView(userID string, a *models.Announcement) {
	if a == nil || strings.TrimSpace(userID) == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.viewCounts[a.ID]
	r.viewCounts[a.ID] = old + 1
	r.moveTrendingBucket(a.ID, old, old+1)

	viewed, ok := r.viewedBy[userID]
	if !ok {
		viewed = make(map[uuid.UUID]struct{})
		r.viewedBy[userID] = viewed
	}
	viewed[a.ID] = struct{}{}

	r.bumpPreference(userID, a.Category)
}

// bumpPreference increments a user's category counter. Caller holds the
// write lock.
func (r *RecommendationService) bumpPreference(userID string, cat models.AnnouncementCategory) {
	prefs, ok := r.categoryPrefs[userID]
	if !ok {
		prefs = make(map[models.AnnouncementCategory]int)
		r.categoryPrefs[userID] = prefs
	}
	prefs[cat]++
}

// moveTrendingBucket relocates an id from its old count bucket to the new
// one. The remove and append are a single critical section; without the
// lock a concurrent increment could lose the id. Caller holds the write
// lock.
func (r *RecommendationService) moveTrendingBucket(id uuid.UUID, oldCount, newCount int) {
	if oldCount > 0 {
		bucket := r.trending[oldCount]
		for i, existing := range bucket {
			if existing == id {
				bucket = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(bucket) == 0 {
			delete(r.trending, oldCount)
		} else {
			r.trending[oldCount] = bucket
		}
	}
	r.trending[newCount] = append(r.trending[newCount], id)
}

// GetUserPreferences returns a copy of the user's category counts, keyed by
// category name. Unknown users get an empty map.
func (r *RecommendationService) GetUserPreferences(userID string) map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int)
	for cat, count := range r.categoryPrefs[userID] {
		out[cat.String()] = count
	}
	return out
}

// GetRecommendations returns up to count announcements ranked for the user.
// Users with no recorded category preferences get the cold-start blend of
// trending and upcoming items; everyone else gets the full catalog scored
// against their tracked activity.
func (r *RecommendationService) GetRecommendations(userID string, count int) []*models.Announcement {
	if count <= 0 {
		return nil
	}

	r.mu.RLock()
	hasPrefs := len(r.categoryPrefs[userID]) > 0
	r.mu.RUnlock()

	if !hasPrefs {
		return r.coldStart(count)
	}
	return r.personalized(userID, count)
}

// coldStart blends trending and soonest-upcoming items, featured first and
// then by priority.
func (r *RecommendationService) coldStart(count int) []*models.Announcement {
	seen := make(map[uuid.UUID]struct{})
	var out []*models.Announcement

	for _, a := range r.GetTrendingAnnouncements(count) {
		if _, dup := seen[a.ID]; dup {
			continue
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	for _, a := range r.announcements.GetUpcomingAnnouncements(count) {
		if _, dup := seen[a.ID]; dup {
			continue
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsFeatured != out[j].IsFeatured {
			return out[i].IsFeatured
		}
		return out[i].Priority < out[j].Priority
	})

	if len(out) > count {
		out = out[:count]
	}
	return out
}

// personalized scores the whole catalog with an additive heuristic:
//
//	affinity   0-100 relative to the user's most-viewed category
//	featured   +20
//	priority   +(4 - value) * 5, so Critical earns more than Low
//	popularity +2 per global view
//	future     +10 when the date is still ahead
//	history    +15 per recent search term found in title or description
func (r *RecommendationService) personalized(userID string, count int) []*models.Announcement {
	catalog := r.announcements.GetAllAnnouncements()
	today := r.now()

	// Everything read from the engine's maps is copied while the lock is
	// held; trackers keep mutating them concurrently.
	r.mu.RLock()
	prefs := make(map[models.AnnouncementCategory]int, len(r.categoryPrefs[userID]))
	maxPref := 0
	for cat, c := range r.categoryPrefs[userID] {
		prefs[cat] = c
		if c > maxPref {
			maxPref = c
		}
	}
	history := make([]string, len(r.searchHistory[userID]))
	copy(history, r.searchHistory[userID])
	views := make(map[uuid.UUID]int, len(catalog))
	for _, a := range catalog {
		views[a.ID] = r.viewCounts[a.ID]
	}
	r.mu.RUnlock()

	type scored struct {
		ann   *models.Announcement
		score float64
	}
	ranked := make([]scored, 0, len(catalog))
	for _, a := range catalog {
		var score float64

		if maxPref > 0 {
			if c, ok := prefs[a.Category]; ok {
				score += float64(c) / float64(maxPref) * 100
			}
		}
		if a.IsFeatured {
			score += 20
		}
		score += float64(4-int(a.Priority)) * 5
		score += 2 * float64(views[a.ID])
		if a.Date.After(today) {
			score += 10
		}

		title := utils.FoldText(a.Title)
		desc := utils.FoldText(a.Description)
		for _, term := range history {
			folded := utils.FoldText(term)
			if strings.Contains(title, folded) || strings.Contains(desc, folded) {
				score += 15
			}
		}

		ranked = append(ranked, scored{ann: a, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > count {
		ranked = ranked[:count]
	}
	out := make([]*models.Announcement, len(ranked))
	for i, s := range ranked {
		out[i] = s.ann
	}
	return out
}

// GetTrendingAnnouncements walks the trending buckets from the highest view
// count down. When fewer than count announcements have been viewed at all,
// the list is padded with the soonest upcoming ones not already present.
func (r *RecommendationService) GetTrendingAnnouncements(count int) []*models.Announcement {
	if count <= 0 {
		return nil
	}

	r.mu.RLock()
	counts := make([]int, 0, len(r.trending))
	for c := range r.trending {
		counts = append(counts, c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	ids := make([]uuid.UUID, 0, count)
	for _, c := range counts {
		for _, id := range r.trending[c] {
			if len(ids) == count {
				break
			}
			ids = append(ids, id)
		}
		if len(ids) == count {
			break
		}
	}
	r.mu.RUnlock()

	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]*models.Announcement, 0, count)
	for _, id := range ids {
		// Ids that no longer resolve are skipped rather than surfaced.
		if a := r.announcements.GetAnnouncementById(id); a != nil {
			seen[a.ID] = struct{}{}
			out = append(out, a)
		}
	}

	if len(out) < count {
		for _, a := range r.announcements.GetUpcomingAnnouncements(count) {
			if len(out) == count {
				break
			}
			if _, dup := seen[a.ID]; dup {
				continue
			}
			seen[a.ID] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}

// GetRelatedAnnouncements gathers candidates that share something with the
// source (category, a close date, location, priority or featured status)
// and ranks them by a pairwise relevance score. The gathering phases only
// build the candidate set; the score sort decides the final order.
func (r *RecommendationService) GetRelatedAnnouncements(src *models.Announcement, count int) []*models.Announcement {
	if src == nil || count <= 0 {
		return nil
	}

	seen := map[uuid.UUID]struct{}{src.ID: {}}
	var candidates []*models.Announcement
	gather := func(pool []*models.Announcement, limit int, match func(*models.Announcement) bool) {
		taken := 0
		for _, a := range pool {
			if taken == limit {
				return
			}
			if _, dup := seen[a.ID]; dup || !match(a) {
				continue
			}
			seen[a.ID] = struct{}{}
			candidates = append(candidates, a)
			taken++
		}
	}

	all := r.announcements.GetAllAnnouncements()
	srcLoc := utils.FoldText(strings.TrimSpace(src.Location))

	gather(r.announcements.GetAnnouncementsByCategory(src.Category), count, func(*models.Announcement) bool {
		return true
	})
	gather(all, count/2, func(a *models.Announcement) bool {
		return withinDays(a.Date, src.Date, 7)
	})
	if srcLoc != "" {
		gather(all, count/3, func(a *models.Announcement) bool {
			loc := utils.FoldText(strings.TrimSpace(a.Location))
			return loc != "" && (strings.Contains(loc, srcLoc) || strings.Contains(srcLoc, loc))
		})
	}
	gather(all, count/3, func(a *models.Announcement) bool {
		return a.Priority == src.Priority || (a.IsFeatured && src.IsFeatured)
	})

	r.mu.RLock()
	views := make(map[uuid.UUID]int, len(candidates))
	for _, a := range candidates {
		views[a.ID] = r.viewCounts[a.ID]
	}
	r.mu.RUnlock()

	type scored struct {
		ann   *models.Announcement
		score float64
	}
	ranked := make([]scored, len(candidates))
	for i, a := range candidates {
		var score float64
		if a.Category == src.Category {
			score += 10
		}
		if a.Priority == src.Priority {
			score += 5
		}
		if a.IsFeatured && src.IsFeatured {
			score += 5
		}
		if withinDays(a.Date, src.Date, 7) {
			score += 3
		}
		if srcLoc != "" && utils.FoldText(strings.TrimSpace(a.Location)) == srcLoc {
			score += 4
		}
		score += 0.1 * float64(views[a.ID])
		ranked[i] = scored{ann: a, score: score}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > count {
		ranked = ranked[:count]
	}
	out := make([]*models.Announcement, len(ranked))
	for i, s := range ranked {
		out[i] = s.ann
	}
	return out
}

// SearchHistory returns a copy of the user's recent search terms, oldest
// first.
func (r *RecommendationService) SearchHistory(userID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.searchHistory[userID]
	out := make([]string, len(history))
	copy(out, history)
	return out
}

// HasViewed reports whether the user has a recorded view of the
// announcement.
func (r *RecommendationService) HasViewed(userID string, id uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.viewedBy[userID][id]
	return ok
}

// ViewCount returns the global view count for an announcement.
func (r *RecommendationService) ViewCount(id uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.viewCounts[id]
}

func withinDays(a, b time.Time, days int) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= time.Duration(days)*24*time.Hour
}
