package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/citypulse/app-announcements/internal/models"
)

// SeedDefaultData loads the demo announcement set. The store is process
// lifetime only, so a fresh process starts from this fixed catalog until an
// admin publishes real announcements.
func (s *AnnouncementService) SeedDefaultData() {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	seed := []*models.Announcement{
		{
			Title:         "Road Closure on Oak Street Bridge",
			Description:   "The Oak Street Bridge will be **closed for maintenance**. Use the Main Road detour. Expected to reopen within two weeks.",
			Category:      models.CategoryServiceUpdate,
			Date:          today.AddDate(0, 0, 2),
			Location:      "Cape Town CBD",
			Duration:      "2 weeks",
			AffectedAreas: "Oak Street, Main Road",
			ContactInfo:   "roads@citypulse.gov.za",
			IsFeatured:    true,
			Priority:      models.PriorityHigh,
		},
		{
			Title:       "Community Clean-Up Day",
			Description: "Join your neighbours for the quarterly clean-up. Bags and gloves provided at the community hall.",
			Category:    models.CategoryEvent,
			Date:        today.AddDate(0, 0, 9),
			Location:    "Durban Central",
			Duration:    "1 day",
			AgeGroup:    "All ages",
			Priority:    models.PriorityNormal,
		},
		{
			Title:         "Scheduled Water Supply Interruption",
			Description:   "Water supply will be interrupted for reservoir maintenance between 08:00 and 16:00.",
			Category:      models.CategoryNotice,
			Date:          today.AddDate(0, 0, 4),
			Location:      "Johannesburg North",
			Duration:      "8 hours",
			AffectedAreas: "Wards 12, 14 and 15",
			ContactInfo:   "water@citypulse.gov.za",
			Priority:      models.PriorityHigh,
		},
		{
			Title:       "Youth Skills Development Program",
			Description: "Free eight-week coding and digital literacy program for residents aged 16 to 24. Limited seats, apply online.",
			Category:    models.CategoryProgram,
			Date:        today.AddDate(0, 0, 21),
			Location:    "Pretoria East",
			Duration:    "8 weeks",
			AgeGroup:    "16-24",
			IsFeatured:  true,
			Priority:    models.PriorityNormal,
		},
		{
			Title:         "Severe Weather Warning",
			Description:   "Heavy rainfall and localized flooding expected. Avoid low-lying river crossings and report blocked storm drains.",
			Category:      models.CategoryEmergency,
			Date:          today.AddDate(0, 0, 1),
			Location:      "Gqeberha",
			AffectedAreas: "Coastal wards",
			ContactInfo:   "Emergency line 107",
			IsFeatured:    true,
			Priority:      models.PriorityCritical,
		},
		{
			Title:       "Library Opening Hours Extended",
			Description: "All municipal libraries now open until 20:00 on weekdays during exam season.",
			Category:    models.CategoryAnnouncement,
			Date:        today.AddDate(0, 0, -3),
			Location:    "Bloemfontein",
			Priority:    models.PriorityLow,
		},
		{
			Title:       "Heritage Day Market",
			Description: "Local crafts, food stalls and live music on the town square. Free entry.",
			Category:    models.CategoryEvent,
			Date:        today.AddDate(0, 0, 14),
			Location:    "Cape Town CBD",
			Duration:    "1 day",
			AgeGroup:    "All ages",
			Priority:    models.PriorityNormal,
		},
		{
			Title:         "Refuse Collection Schedule Change",
			Description:   "Collection moves from Tuesdays to Wednesdays in the northern suburbs starting next month.",
			Category:      models.CategoryServiceUpdate,
			Date:          today.AddDate(0, 0, 28),
			Location:      "Johannesburg North",
			AffectedAreas: "Northern suburbs",
			Priority:      models.PriorityNormal,
		},
	}

	for _, a := range seed {
		a.ID = uuid.New()
		a.CreatedAt = now
		a.CreatedBy = "seed"
		s.AddAnnouncement(a)
	}
}
