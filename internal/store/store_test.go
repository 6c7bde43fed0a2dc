package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/citypulse/app-announcements/internal/models"
)

func newAnnouncement(title, desc string, cat models.AnnouncementCategory, date time.Time) *models.Announcement {
	return &models.Announcement{
		ID:          uuid.New(),
		Title:       title,
		Description: desc,
		Category:    cat,
		Date:        date,
		Priority:    models.PriorityNormal,
		CreatedAt:   time.Now(),
		CreatedBy:   "test",
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple words",
			input: "Road Closure Bridge",
			want:  []string{"road", "closure", "bridge"},
		},
		{
			name:  "punctuation stripped per token",
			input: "Oak Street Bridge closed.",
			want:  []string{"oak", "street", "bridge", "closed"},
		},
		{
			name:  "empty tokens discarded",
			input: "water -- supply",
			want:  []string{"water", "supply"},
		},
		{
			name:  "diacritics folded",
			input: "Gala Soirée",
			want:  []string{"gala", "soiree"},
		},
		{
			name:  "numbers kept",
			input: "Ward 12 update",
			want:  []string{"ward", "12", "update"},
		},
		{
			name:  "blank input",
			input: "   ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAddAndGetByID(t *testing.T) {
	s := NewAnnouncementStore()
	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	anns := []*models.Announcement{
		newAnnouncement("First", "one", models.CategoryEvent, date),
		newAnnouncement("Second", "two", models.CategoryNotice, date.AddDate(0, 0, 1)),
		newAnnouncement("Third", "three", models.CategoryEvent, date.AddDate(0, 0, 2)),
	}
	for _, a := range anns {
		s.Add(a)
	}

	if s.Len() != len(anns) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(anns))
	}
	for _, a := range anns {
		got := s.GetByID(a.ID)
		if got == nil || got.ID != a.ID {
			t.Errorf("GetByID(%s) did not return the stored announcement", a.ID)
		}
	}
	if got := s.GetByID(uuid.New()); got != nil {
		t.Errorf("GetByID(random) = %v, want nil", got)
	}
}

func TestByDateRangeInclusive(t *testing.T) {
	s := NewAnnouncementStore()
	base := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	onFrom := newAnnouncement("on from", "x", models.CategoryEvent, base)
	inside := newAnnouncement("inside", "x", models.CategoryEvent, base.AddDate(0, 0, 3))
	onTo := newAnnouncement("on to", "x", models.CategoryEvent, base.AddDate(0, 0, 7))
	outside := newAnnouncement("outside", "x", models.CategoryEvent, base.AddDate(0, 0, 8))
	for _, a := range []*models.Announcement{outside, onTo, inside, onFrom} {
		s.Add(a)
	}

	got := s.ByDateRange(base, base.AddDate(0, 0, 7))
	if len(got) != 3 {
		t.Fatalf("ByDateRange returned %d announcements, want 3", len(got))
	}
	for _, a := range got {
		if a.ID == outside.ID {
			t.Errorf("ByDateRange included announcement outside the range")
		}
	}

	// Time-of-day on the bounds must not matter.
	late := base.Add(23 * time.Hour)
	if got := s.ByDateRange(late, late); len(got) != 1 || got[0].ID != onFrom.ID {
		t.Errorf("ByDateRange with time-of-day bounds = %d results, want the boundary announcement", len(got))
	}
}

func TestInvertedIndex(t *testing.T) {
	s := NewAnnouncementStore()
	a := newAnnouncement("Road Closure Bridge", "Oak Street Bridge closed", models.CategoryServiceUpdate, time.Now())
	b := newAnnouncement("Clinic hours", "Extended clinic hours", models.CategoryNotice, time.Now())
	s.Add(a)
	s.Add(b)

	bridge := s.IDsForToken("bridge")
	if bridge.GetCardinality() != 1 {
		t.Fatalf("ids for %q = %d, want 1", "bridge", bridge.GetCardinality())
	}
	resolved := s.Resolve(bridge)
	if len(resolved) != 1 || resolved[0].ID != a.ID {
		t.Errorf("Resolve returned the wrong announcement")
	}

	if unknown := s.IDsForToken("zzz"); !unknown.IsEmpty() {
		t.Errorf("ids for unknown token not empty")
	}

	// The returned bitmap is a copy; mutating it must not affect the index.
	bridge.Clear()
	if s.IDsForToken("bridge").GetCardinality() != 1 {
		t.Errorf("mutating a returned bitmap changed the index")
	}
}

func TestFeaturedByPriority(t *testing.T) {
	s := NewAnnouncementStore()
	date := time.Now()

	critical := newAnnouncement("critical", "x", models.CategoryEmergency, date)
	critical.Priority = models.PriorityCritical

	featured := newAnnouncement("featured low", "x", models.CategoryEvent, date)
	featured.Priority = models.PriorityLow
	featured.IsFeatured = true

	high := newAnnouncement("high", "x", models.CategoryNotice, date)
	high.Priority = models.PriorityHigh

	plain := newAnnouncement("plain", "x", models.CategoryEvent, date)
	plain.Priority = models.PriorityNormal

	for _, a := range []*models.Announcement{featured, plain, critical, high} {
		s.Add(a)
	}

	got := s.FeaturedByPriority()
	if len(got) != 3 {
		t.Fatalf("FeaturedByPriority returned %d, want 3 (plain Normal excluded)", len(got))
	}
	wantOrder := []uuid.UUID{critical.ID, high.ID, featured.ID}
	for i, want := range wantOrder {
		if got[i].ID != want {
			t.Errorf("position %d = %q, want %q", i, got[i].Title, wantOrder)
		}
	}

	// The read must not consume the queue.
	again := s.FeaturedByPriority()
	if len(again) != len(got) {
		t.Errorf("second read returned %d, want %d", len(again), len(got))
	}
}

func TestDateKey(t *testing.T) {
	in := time.Date(2026, 8, 15, 23, 59, 0, 0, time.UTC)
	if got := DateKey(in); got != "2026-08-15" {
		t.Errorf("DateKey = %q, want 2026-08-15", got)
	}
}
