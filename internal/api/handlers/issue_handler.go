package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citypulse/app-announcements/internal/models"
	"github.com/citypulse/app-announcements/internal/services"
	"github.com/citypulse/app-announcements/internal/utils"
)

// IssueHandler serves the resident issue reporting endpoints.
type IssueHandler struct {
	issues         *services.IssueService
	gatewayBaseURL string
}

// NewIssueHandler creates a new issue handler.
func NewIssueHandler(issues *services.IssueService, gatewayBaseURL string) *IssueHandler {
	return &IssueHandler{
		issues:         issues,
		gatewayBaseURL: gatewayBaseURL,
	}
}

// Create godoc
// @Summary Report a municipal issue
// @Description Accepts a multipart form with location, category, description and optional attachments (field name "attachments", 5 MB each). Returns the report with its reference number.
// @Tags issues
// @Accept multipart/form-data
// @Produce json
// @Param location formData string true "Where the issue is"
// @Param category formData string true "Issue category" Enums(Sanitation, Roads, Utilities, Water, Electricity, Other)
// @Param description formData string true "What is wrong"
// @Param attachments formData file false "Photos or documents"
// @Success 201 {object} models.IssueReport
// @Failure 400 {object} map[string]string "Validation or upload failure"
// @Router /api/v1/issues [post]
func (h *IssueHandler) Create(c *gin.Context) {
	var req models.CreateIssueReportRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form", "details": err.Error()})
		return
	}

	report, err := h.issues.CreateReport(&req, form.File["attachments"])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not create report", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.withAttachmentURLs(report))
}

// Get godoc
// @Summary Look up an issue report by reference number
// @Tags issues
// @Produce json
// @Param reference path string true "Reference number (CP-YYYYMMDD-NNNN)"
// @Success 200 {object} models.IssueReport
// @Failure 404 {object} map[string]string "Unknown reference"
// @Router /api/v1/issues/{reference} [get]
func (h *IssueHandler) Get(c *gin.Context) {
	report := h.issues.GetReport(c.Param("reference"))
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, h.withAttachmentURLs(report))
}

// SuggestLocations godoc
// @Summary Suggest municipal areas by prefix
// @Tags issues
// @Produce json
// @Param q query string true "Location prefix"
// @Success 200 {object} map[string][]string
// @Router /api/v1/locations/suggest [get]
func (h *IssueHandler) SuggestLocations(c *gin.Context) {
	suggestions := h.issues.LocationSuggestions(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// withAttachmentURLs rewrites stored paths into public URLs without
// mutating the stored report.
func (h *IssueHandler) withAttachmentURLs(report *models.IssueReport) *models.IssueReport {
	out := *report
	out.Attachments = make([]models.Attachment, len(report.Attachments))
	for i, att := range report.Attachments {
		att.StoredPath = utils.AttachmentURL(att.StoredPath, h.gatewayBaseURL)
		out.Attachments[i] = att
	}
	return &out
}
