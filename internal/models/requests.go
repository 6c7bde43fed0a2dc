package models

// CreateAnnouncementRequest is the admin payload for publishing an
// announcement. Category and Priority arrive as names and are parsed at
// the boundary; an unknown priority falls back to Normal.
type CreateAnnouncementRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Description   string `json:"description" validate:"required,max=4000"`
	Category      string `json:"category" validate:"required"`
	Date          string `json:"date" validate:"required"` // YYYY-MM-DD or RFC 3339
	Location      string `json:"location" validate:"max=256"`
	Duration      string `json:"duration" validate:"max=128"`
	AgeGroup      string `json:"age_group" validate:"max=64"`
	AffectedAreas string `json:"affected_areas" validate:"max=512"`
	ContactInfo   string `json:"contact_info" validate:"max=256"`
	IsFeatured    bool   `json:"is_featured"`
	Priority      string `json:"priority"`
}

// TrackSearchRequest records a search interaction for personalization.
type TrackSearchRequest struct {
	Term     string `json:"term" binding:"required,max=200"`
	Category string `json:"category"`
}

// CategorySummary is one entry of the categories listing.
type CategorySummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Views int    `json:"views"`
}

// CategoryListResponse wraps the categories listing.
type CategoryListResponse struct {
	Categories []CategorySummary `json:"categories"`
	Total      int               `json:"total"`
}

// AnnouncementSummary is one listing row: the announcement plus a short
// plain-text excerpt of its (possibly markdown) description.
type AnnouncementSummary struct {
	*Announcement
	Excerpt string `json:"excerpt"`
}

// AnnouncementListResponse wraps announcement listings with a total count.
type AnnouncementListResponse struct {
	Announcements []AnnouncementSummary `json:"announcements"`
	Total         int                   `json:"total"`
}

// CreateIssueReportRequest is the multipart form payload for reporting an
// issue. Files are read from the multipart form directly by the handler.
type CreateIssueReportRequest struct {
	Location    string `form:"location" binding:"required,max=256"`
	Category    string `form:"category" binding:"required"`
	Description string `form:"description" binding:"required,max=4000"`
}
