package models

import (
	"strings"
	"time"
)

// IssueCategory is the closed set of municipal issue categories.
type IssueCategory int

const (
	IssueSanitation IssueCategory = iota
	IssueRoads
	IssueUtilities
	IssueWater
	IssueElectricity
	IssueOther
)

var issueCategoryNames = [...]string{
	"Sanitation",
	"Roads",
	"Utilities",
	"Water",
	"Electricity",
	"Other",
}

func (c IssueCategory) String() string {
	if c < 0 || int(c) >= len(issueCategoryNames) {
		return "Other"
	}
	return issueCategoryNames[c]
}

// ParseIssueCategory resolves an issue category name, defaulting to Other.
func ParseIssueCategory(name string) IssueCategory {
	name = strings.TrimSpace(name)
	for i, n := range issueCategoryNames {
		if strings.EqualFold(n, name) {
			return IssueCategory(i)
		}
	}
	return IssueOther
}

// Attachment is a stored upload belonging to an issue report.
type Attachment struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	StoredPath  string `json:"stored_path"`
	LengthBytes int64  `json:"length_bytes"`
}

// IssueReport is a resident-submitted service issue. Reports are identified
// by their reference number rather than a synthetic id.
type IssueReport struct {
	ReferenceNumber string        `json:"reference_number"`
	Location        string        `json:"location"`
	Category        IssueCategory `json:"category"`
	Description     string        `json:"description"`
	Attachments     []Attachment  `json:"attachments"`
	CreatedAt       time.Time     `json:"created_at"`
}
