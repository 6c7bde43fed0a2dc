package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AnnouncementCategory is the closed set of announcement categories.
type AnnouncementCategory int

const (
	CategoryAnnouncement AnnouncementCategory = iota
	CategoryEvent
	CategoryServiceUpdate
	CategoryNotice
	CategoryProgram
	CategoryEmergency
)

var categoryNames = [...]string{
	"Announcement",
	"Event",
	"ServiceUpdate",
	"Notice",
	"Program",
	"Emergency",
}

// String returns the canonical name of the category.
func (c AnnouncementCategory) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// AllCategories returns every valid category in declaration order.
func AllCategories() []AnnouncementCategory {
	out := make([]AnnouncementCategory, len(categoryNames))
	for i := range categoryNames {
		out[i] = AnnouncementCategory(i)
	}
	return out
}

// ParseCategory resolves a category name to its enum value. Matching is
// case-insensitive. The boolean reports whether the name was recognized;
// callers treat an unrecognized name as "no category filter".
func ParseCategory(name string) (AnnouncementCategory, bool) {
	name = strings.TrimSpace(name)
	for i, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return AnnouncementCategory(i), true
		}
	}
	return 0, false
}

// AnnouncementPriority orders announcements by importance. Lower numeric
// value means higher importance; the priority queue and all comparisons
// rely on this encoding.
type AnnouncementPriority int

const (
	PriorityCritical AnnouncementPriority = iota
	PriorityHigh
	PriorityNormal
	PriorityLow
)

var priorityNames = [...]string{"Critical", "High", "Normal", "Low"}

func (p AnnouncementPriority) String() string {
	if p < 0 || int(p) >= len(priorityNames) {
		return "Unknown"
	}
	return priorityNames[p]
}

// ParsePriority resolves a priority name, defaulting to Normal when the
// name is not recognized.
func ParsePriority(name string) AnnouncementPriority {
	name = strings.TrimSpace(name)
	for i, n := range priorityNames {
		if strings.EqualFold(n, name) {
			return AnnouncementPriority(i)
		}
	}
	return PriorityNormal
}

// Announcement is a municipal announcement. The ID is assigned at creation
// and never changes; announcements are never mutated after being added to
// the store.
type Announcement struct {
	ID            uuid.UUID            `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Category      AnnouncementCategory `json:"category"`
	Date          time.Time            `json:"date"`
	Location      string               `json:"location,omitempty"`
	Duration      string               `json:"duration,omitempty"`
	AgeGroup      string               `json:"age_group,omitempty"`
	AffectedAreas string               `json:"affected_areas,omitempty"`
	ContactInfo   string               `json:"contact_info,omitempty"`
	IsFeatured    bool                 `json:"is_featured"`
	Priority      AnnouncementPriority `json:"priority"`
	CreatedAt     time.Time            `json:"created_at"`
	CreatedBy     string               `json:"created_by"`
}

// Equal reports identity equality (by ID).
func (a *Announcement) Equal(other *Announcement) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.ID == other.ID
}
