package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	middlewares "github.com/citypulse/app-announcements/internal/middleware"
	"github.com/citypulse/app-announcements/internal/models"
	"github.com/citypulse/app-announcements/internal/services"
)

// RecommendationHandler serves personalization, trending and related-item
// endpoints.
type RecommendationHandler struct {
	announcements   *services.AnnouncementService
	recommendations *services.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(announcements *services.AnnouncementService, recommendations *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		announcements:   announcements,
		recommendations: recommendations,
	}
}

// TrackSearch godoc
// @Summary Record a search interaction
// @Description Appends the term to the caller's search history (bounded, FIFO). A valid category name also counts toward category preferences. Tracking never fails; malformed categories are ignored.
// @Tags tracking
// @Accept json
// @Produce json
// @Param event body models.TrackSearchRequest true "Search event"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string "Missing term"
// @Router /api/v1/track/search [post]
func (h *RecommendationHandler) TrackSearch(c *gin.Context) {
	var req models.TrackSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	h.recommendations.TrackSearch(middlewares.GetUserID(c), req.Term, req.Category)
	c.JSON(http.StatusAccepted, gin.H{"status": "recorded"})
}

// TrackView godoc
// @Summary Record an announcement view
// @Description Increments the announcement's global view count and the caller's category preference. Unknown ids are accepted and ignored, keeping tracking best-effort.
// @Tags tracking
// @Produce json
// @Param id path string true "Announcement id (UUID)"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string "Malformed id"
// @Router /api/v1/track/view/{id} [post]
func (h *RecommendationHandler) TrackView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid announcement id"})
		return
	}

	h.recommendations.TrackView(middlewares.GetUserID(c), h.announcements.GetAnnouncementById(id))
	c.JSON(http.StatusAccepted, gin.H{"status": "recorded"})
}

// Recommendations godoc
// @Summary Personalized announcement recommendations
// @Description Users without tracked activity get a trending/upcoming blend; users with history get the catalog ranked by preference affinity, priority, popularity and search-history matches.
// @Tags recommendations
// @Produce json
// @Param count query int false "Maximum results" default(10)
// @Success 200 {object} models.AnnouncementListResponse
// @Router /api/v1/recommendations [get]
func (h *RecommendationHandler) Recommendations(c *gin.Context) {
	result := h.recommendations.GetRecommendations(middlewares.GetUserID(c), parseIntQuery(c, "count", 10))
	c.JSON(http.StatusOK, listResponse(result))
}

// Trending godoc
// @Summary Most viewed announcements
// @Description Orders by global view count, padded with upcoming announcements when too few have been viewed.
// @Tags recommendations
// @Produce json
// @Param count query int false "Maximum results" default(10)
// @Success 200 {object} models.AnnouncementListResponse
// @Router /api/v1/trending [get]
func (h *RecommendationHandler) Trending(c *gin.Context) {
	result := h.recommendations.GetTrendingAnnouncements(parseIntQuery(c, "count", 10))
	c.JSON(http.StatusOK, listResponse(result))
}

// Related godoc
// @Summary Announcements related to one announcement
// @Description Candidates share the source's category, a close date, a location or priority/featured status, ranked by pairwise relevance.
// @Tags recommendations
// @Produce json
// @Param id path string true "Source announcement id (UUID)"
// @Param count query int false "Maximum results" default(6)
// @Success 200 {object} models.AnnouncementListResponse
// @Failure 400 {object} map[string]string "Malformed id"
// @Failure 404 {object} map[string]string "Unknown id"
// @Router /api/v1/announcements/{id}/related [get]
func (h *RecommendationHandler) Related(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid announcement id"})
		return
	}

	src := h.announcements.GetAnnouncementById(id)
	if src == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "announcement not found"})
		return
	}

	result := h.recommendations.GetRelatedAnnouncements(src, parseIntQuery(c, "count", 6))
	c.JSON(http.StatusOK, listResponse(result))
}

// Preferences godoc
// @Summary The caller's tracked category preferences
// @Tags recommendations
// @Produce json
// @Success 200 {object} map[string]int
// @Router /api/v1/me/preferences [get]
func (h *RecommendationHandler) Preferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.recommendations.GetUserPreferences(middlewares.GetUserID(c)))
}

// History godoc
// @Summary The caller's recent search terms, oldest first
// @Tags recommendations
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/me/history [get]
func (h *RecommendationHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"terms": h.recommendations.SearchHistory(middlewares.GetUserID(c))})
}
