package services

import (
	"fmt"
	"mime/multipart"
	"strings"
	"sync"
	"time"

	"github.com/citypulse/app-announcements/internal/constants"
	"github.com/citypulse/app-announcements/internal/models"
)

// IssueService handles resident issue reports: reference numbers,
// attachment storage and a process-lifetime report log.
type IssueService struct {
	references *ReferenceService
	storage    *StorageService

	mu      sync.RWMutex
	reports map[string]*models.IssueReport
}

// NewIssueService creates the issue reporting service.
func NewIssueService(references *ReferenceService, storage *StorageService) *IssueService {
	return &IssueService{
		references: references,
		storage:    storage,
		reports:    make(map[string]*models.IssueReport),
	}
}

// CreateReport stores a new issue report with its uploads. Upload failures
// abort the report so a reference never points at half-saved attachments.
func (s *IssueService) CreateReport(req *models.CreateIssueReportRequest, files []*multipart.FileHeader) (*models.IssueReport, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}

	attachments := make([]models.Attachment, 0, len(files))
	for _, file := range files {
		saved, err := s.storage.Save(file)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, *saved)
	}

	report := &models.IssueReport{
		Location:    strings.TrimSpace(req.Location),
		Category:    models.ParseIssueCategory(req.Category),
		Description: req.Description,
		Attachments: attachments,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		ref := s.references.CreateReference()
		if _, taken := s.reports[ref]; !taken {
			report.ReferenceNumber = ref
			break
		}
	}
	s.reports[report.ReferenceNumber] = report

	return report, nil
}

// GetReport returns the report with the given reference number, or nil.
func (s *IssueService) GetReport(reference string) *models.IssueReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reports[reference]
}

// LocationSuggestions returns known municipal areas starting with the
// query, case-insensitively. A blank query suggests nothing.
func (s *IssueService) LocationSuggestions(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var out []string
	for _, loc := range constants.KnownLocations {
		if len(loc) >= len(query) && strings.EqualFold(loc[:len(query)], query) {
			out = append(out, loc)
		}
	}
	return out
}
