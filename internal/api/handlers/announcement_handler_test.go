package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/citypulse/app-announcements/internal/models"
	"github.com/citypulse/app-announcements/internal/services"
	"github.com/citypulse/app-announcements/internal/store"
)

func newTestHandler() *AnnouncementHandler {
	anns := services.NewAnnouncementService(store.NewAnnouncementStore())
	rec := services.NewRecommendationService(anns, 0)
	return NewAnnouncementHandler(anns, rec)
}

func TestListResponseExcerpts(t *testing.T) {
	long := strings.Repeat("word ", 60)
	anns := []*models.Announcement{
		{
			ID:          uuid.New(),
			Title:       "Bridge closure",
			Description: "The **Oak Street Bridge** is closed",
			Category:    models.CategoryServiceUpdate,
			Date:        time.Now(),
		},
		{
			ID:          uuid.New(),
			Title:       "Long notice",
			Description: long,
			Category:    models.CategoryNotice,
			Date:        time.Now(),
		},
	}

	resp := listResponse(anns)
	if resp.Total != 2 || len(resp.Announcements) != 2 {
		t.Fatalf("total = %d, items = %d, want 2 and 2", resp.Total, len(resp.Announcements))
	}
	if got := resp.Announcements[0].Excerpt; got != "The Oak Street Bridge is closed" {
		t.Errorf("excerpt kept markdown: %q", got)
	}
	if got := resp.Announcements[1].Excerpt; len(got) > excerptLength+len("…") || !strings.HasSuffix(got, "…") {
		t.Errorf("long description not truncated: %q", got)
	}
	if resp.Announcements[0].Title != "Bridge closure" {
		t.Errorf("announcement fields not promoted into the summary")
	}
}

func TestListMalformedDatesSingleError(t *testing.T) {
	h := newTestHandler()
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
	}{
		{"both malformed", "from=bogus&to=also-bogus"},
		{"from malformed", "from=bogus&to=2026-08-20"},
		{"to malformed", "from=2026-08-10&to=bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/announcements?"+tt.query, nil)

			h.List(c)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not a single JSON object: %v (%s)", err, w.Body.String())
			}
			if body["error"] == "" {
				t.Errorf("error message missing: %s", w.Body.String())
			}
		})
	}
}
