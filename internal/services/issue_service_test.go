package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/citypulse/app-announcements/internal/models"
)

func newTestIssueService(t *testing.T) *IssueService {
	t.Helper()
	storage, err := NewStorageService(t.TempDir(), 5)
	if err != nil {
		t.Fatalf("NewStorageService: %v", err)
	}
	return NewIssueService(NewReferenceService(), storage)
}

func TestReferenceFormat(t *testing.T) {
	refs := NewReferenceService()
	refs.now = func() time.Time { return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC) }

	re := regexp.MustCompile(`^CP-20260815-\d{4}$`)
	for i := 0; i < 50; i++ {
		ref := refs.CreateReference()
		if !re.MatchString(ref) {
			t.Fatalf("reference %q does not match CP-YYYYMMDD-NNNN", ref)
		}
	}
}

func TestCreateAndGetReport(t *testing.T) {
	s := newTestIssueService(t)

	report, err := s.CreateReport(&models.CreateIssueReportRequest{
		Location:    "  Soweto ",
		Category:    "roads",
		Description: "Pothole on the main road",
	}, nil)
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if report.ReferenceNumber == "" {
		t.Fatal("report has no reference number")
	}
	if report.Location != "Soweto" {
		t.Errorf("location = %q, want trimmed %q", report.Location, "Soweto")
	}
	if report.Category != models.IssueRoads {
		t.Errorf("category = %s, want Roads", report.Category)
	}
	if len(report.Attachments) != 0 {
		t.Errorf("unexpected attachments: %d", len(report.Attachments))
	}

	got := s.GetReport(report.ReferenceNumber)
	if got == nil || got.ReferenceNumber != report.ReferenceNumber {
		t.Errorf("GetReport did not return the stored report")
	}
	if s.GetReport("CP-19700101-0000") != nil {
		t.Errorf("unknown reference returned a report")
	}
}

func TestCreateReportNilRequest(t *testing.T) {
	s := newTestIssueService(t)
	if _, err := s.CreateReport(nil, nil); err == nil {
		t.Error("nil request did not error")
	}
}

func TestCreateReportUnknownCategory(t *testing.T) {
	s := newTestIssueService(t)

	report, err := s.CreateReport(&models.CreateIssueReportRequest{
		Location:    "Gqeberha",
		Category:    "space debris",
		Description: "something fell",
	}, nil)
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if report.Category != models.IssueOther {
		t.Errorf("unknown category mapped to %s, want Other", report.Category)
	}
}

func TestLocationSuggestions(t *testing.T) {
	s := newTestIssueService(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"case insensitive prefix", "cape", []string{"Cape Town CBD"}},
		{"upper case", "DUR", []string{"Durban Central"}},
		{"no match", "zzz", nil},
		{"blank", "   ", nil},
		{"full name", "Soweto", []string{"Soweto"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.LocationSuggestions(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("LocationSuggestions(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("suggestion[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
