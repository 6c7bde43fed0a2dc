package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	middlewares "github.com/citypulse/app-announcements/internal/middleware"
	"github.com/citypulse/app-announcements/internal/models"
	"github.com/citypulse/app-announcements/internal/services"
	"github.com/citypulse/app-announcements/internal/utils"
)

const (
	dateQueryLayout = "2006-01-02"
	excerptLength   = 160
)

// listResponse wraps announcements for a listing, attaching a plain-text
// excerpt of each description.
func listResponse(anns []*models.Announcement) models.AnnouncementListResponse {
	items := make([]models.AnnouncementSummary, len(anns))
	for i, a := range anns {
		items[i] = models.AnnouncementSummary{
			Announcement: a,
			Excerpt:      utils.Excerpt(a.Description, excerptLength),
		}
	}
	return models.AnnouncementListResponse{Announcements: items, Total: len(anns)}
}

// AnnouncementHandler serves the announcement catalog endpoints.
type AnnouncementHandler struct {
	announcements   *services.AnnouncementService
	recommendations *services.RecommendationService
	validator       *validator.Validate
}

// NewAnnouncementHandler creates a new announcement handler.
func NewAnnouncementHandler(announcements *services.AnnouncementService, recommendations *services.RecommendationService) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcements:   announcements,
		recommendations: recommendations,
		validator:       validator.New(),
	}
}

// List godoc
// @Summary List and search announcements
// @Description Returns announcements newest first. A free-text query uses AND semantics across words; category and date range narrow the result further. Searches with a query are tracked for personalization.
// @Tags announcements
// @Produce json
// @Param q query string false "Free-text search term"
// @Param category query string false "Category filter" Enums(Announcement, Event, ServiceUpdate, Notice, Program, Emergency)
// @Param from query string false "Range start (YYYY-MM-DD, inclusive; applied only with to)"
// @Param to query string false "Range end (YYYY-MM-DD, inclusive; applied only with from)"
// @Param limit query int false "Maximum results" default(50)
// @Success 200 {object} models.AnnouncementListResponse
// @Failure 400 {object} map[string]string "Malformed date parameter"
// @Router /api/v1/announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	term := c.Query("q")
	category := c.Query("category")
	limit := parseIntQuery(c, "limit", 50)

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	if term != "" {
		h.recommendations.TrackSearch(middlewares.GetUserID(c), term, category)
	}

	result := h.announcements.SearchWithFilters(term, category, from, to, limit)
	c.JSON(http.StatusOK, listResponse(result))
}

// Get godoc
// @Summary Get one announcement
// @Description Returns a single announcement by id and records a view for the caller.
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement id (UUID)"
// @Success 200 {object} models.Announcement
// @Failure 400 {object} map[string]string "Malformed id"
// @Failure 404 {object} map[string]string "Unknown id"
// @Router /api/v1/announcements/{id} [get]
func (h *AnnouncementHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid announcement id"})
		return
	}

	a := h.announcements.GetAnnouncementById(id)
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "announcement not found"})
		return
	}

	h.recommendations.TrackView(middlewares.GetUserID(c), a)

	c.JSON(http.StatusOK, a)
}

// Recent godoc
// @Summary Most recent announcements by date
// @Tags announcements
// @Produce json
// @Param count query int false "Maximum results" default(10)
// @Success 200 {object} models.AnnouncementListResponse
// @Router /api/v1/announcements/recent [get]
func (h *AnnouncementHandler) Recent(c *gin.Context) {
	result := h.announcements.GetRecentAnnouncements(parseIntQuery(c, "count", 10))
	c.JSON(http.StatusOK, listResponse(result))
}

// Latest godoc
// @Summary Most recently published announcements
// @Description Orders by publication time rather than occurrence date.
// @Tags announcements
// @Produce json
// @Param count query int false "Maximum results" default(10)
// @Success 200 {object} models.AnnouncementListResponse
// @Router /api/v1/announcements/latest [get]
func (h *AnnouncementHandler) Latest(c *gin.Context) {
	result := h.announcements.GetRecentlyCreatedAnnouncements(parseIntQuery(c, "count", 10))
	c.JSON(http.StatusOK, listResponse(result))
}

// Upcoming godoc
// @Summary Upcoming announcements, soonest first
// @Tags announcements
// @Produce json
// @Param count query int false "Maximum results" default(10)
// @Success 200 {object} models.AnnouncementListResponse
// @Router /api/v1/announcements/upcoming [get]
func (h *AnnouncementHandler) Upcoming(c *gin.Context) {
	result := h.announcements.GetUpcomingAnnouncements(parseIntQuery(c, "count", 10))
	c.JSON(http.StatusOK, listResponse(result))
}

// Featured godoc
// @Summary Featured and high-priority announcements, most important first
// @Tags announcements
// @Produce json
// @Success 200 {object} models.AnnouncementListResponse
// @Router /api/v1/announcements/featured [get]
func (h *AnnouncementHandler) Featured(c *gin.Context) {
	result := h.announcements.GetFeaturedAnnouncements()
	c.JSON(http.StatusOK, listResponse(result))
}

// Categories godoc
// @Summary List categories with announcement and view counts
// @Tags categories
// @Produce json
// @Param sort_by query string false "Sort criterion" Enums(count, views, alpha) default(count)
// @Success 200 {object} models.CategoryListResponse
// @Failure 400 {object} map[string]string "Invalid sort_by"
// @Router /api/v1/categories [get]
func (h *AnnouncementHandler) Categories(c *gin.Context) {
	sortBy := c.DefaultQuery("sort_by", "count")
	if sortBy != "count" && sortBy != "views" && sortBy != "alpha" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid sort_by parameter",
			"details": "valid values: count, views, alpha",
		})
		return
	}

	counts := h.announcements.CategoryCounts()
	summaries := make([]models.CategorySummary, 0, len(counts))
	for cat, n := range counts {
		views := 0
		for _, a := range h.announcements.GetAnnouncementsByCategory(cat) {
			views += h.recommendations.ViewCount(a.ID)
		}
		summaries = append(summaries, models.CategorySummary{
			Name:  cat.String(),
			Count: n,
			Views: views,
		})
	}
	sortCategorySummaries(summaries, sortBy)

	c.JSON(http.StatusOK, models.CategoryListResponse{
		Categories: summaries,
		Total:      len(summaries),
	})
}

// Dates godoc
// @Summary Distinct announcement dates, ascending
// @Tags announcements
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/dates [get]
func (h *AnnouncementHandler) Dates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dates": h.announcements.GetUniqueDates()})
}

// Create godoc
// @Summary Publish an announcement
// @Description Admin only. The id and creation timestamp are assigned by the server.
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body models.CreateAnnouncementRequest true "Announcement payload"
// @Success 201 {object} models.Announcement
// @Failure 400 {object} map[string]string "Validation failure or unknown category"
// @Failure 403 {object} map[string]string "Missing admin role"
// @Router /api/v1/announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": err.Error()})
		return
	}

	category, ok := models.ParseCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category", "details": req.Category})
		return
	}

	date, err := parseFlexibleDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "details": "expected YYYY-MM-DD or RFC 3339"})
		return
	}

	a := &models.Announcement{
		ID:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		Category:      category,
		Date:          date,
		Location:      req.Location,
		Duration:      req.Duration,
		AgeGroup:      req.AgeGroup,
		AffectedAreas: req.AffectedAreas,
		ContactInfo:   req.ContactInfo,
		IsFeatured:    req.IsFeatured,
		Priority:      models.ParsePriority(req.Priority),
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     middlewares.GetUserID(c),
	}
	h.announcements.AddAnnouncement(a)

	c.JSON(http.StatusCreated, a)
}

func sortCategorySummaries(summaries []models.CategorySummary, sortBy string) {
	sort.SliceStable(summaries, func(i, j int) bool {
		switch sortBy {
		case "views":
			if summaries[i].Views != summaries[j].Views {
				return summaries[i].Views > summaries[j].Views
			}
		case "alpha":
			return summaries[i].Name < summaries[j].Name
		default:
			if summaries[i].Count != summaries[j].Count {
				return summaries[i].Count > summaries[j].Count
			}
		}
		return summaries[i].Name < summaries[j].Name
	})
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(c *gin.Context, param string, defaultValue int) int {
	valueStr := c.Query(param)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter. On a
// malformed value it writes the 400 response and reports false.
func parseDateQuery(c *gin.Context, param string) (*time.Time, bool) {
	valueStr := c.Query(param)
	if valueStr == "" {
		return nil, true
	}
	value, err := time.Parse(dateQueryLayout, valueStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid " + param + " parameter",
			"details": "expected YYYY-MM-DD",
		})
		return nil, false
	}
	return &value, true
}

func parseFlexibleDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateQueryLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
