package model

import "time"

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentPartTime EmploymentType = "part-time"
	EmploymentContract EmploymentType = "contract"
	EmploymentGig      EmploymentType = "gig"
)

type UnionStatus string

const (
	UnionStatusUnionized UnionStatus = "unionized"
	UnionStatusFriendly  UnionStatus = "union-friendly"
	UnionStatusNotListed UnionStatus = "not-listed"
)

// FairWorkPosting is a fair-work job posting in the unionized board.
type FairWorkPosting struct {
	ID             int            `json:"id"`
	Title          string         `json:"title"`
	Organization   string         `json:"organization"`
	Location       string         `json:"location"`
	WageMin        *float64       `json:"wage_min,omitempty"`
	WageMax        *float64       `json:"wage_max,omitempty"`
	WageText       string         `json:"wage_text"`
	EmploymentType EmploymentType `json:"employment_type"`
	UnionStatus    UnionStatus    `json:"union_status"`
	Description    string         `json:"description"`
	WorkerNotes    string         `json:"worker_notes,omitempty"`
	ApplicationURL string         `json:"application_url,omitempty"`
	PostedDate     time.Time      `json:"posted_date"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
}

// FairWorkPostingCreateRequest creates a new posting.
type FairWorkPostingCreateRequest struct {
	Title          string         `json:"title" binding:"required" validate:"required"`
	Organization   string         `json:"organization" binding:"required" validate:"required"`
	Location       string         `json:"location" binding:"required" validate:"required"`
	WageMin        *float64       `json:"wage_min,omitempty"`
	WageMax        *float64       `json:"wage_max,omitempty"`
	WageText       string         `json:"wage_text" binding:"required" validate:"required"`
	EmploymentType EmploymentType `json:"employment_type" binding:"required" validate:"required,oneof=full-time part-time contract gig"`
	UnionStatus    UnionStatus    `json:"union_status" binding:"required" validate:"required,oneof=unionized union-friendly not-listed"`
	Description    string         `json:"description" binding:"required" validate:"required"`
	WorkerNotes    string         `json:"worker_notes,omitempty"`
	ApplicationURL string         `json:"application_url,omitempty"`
}

// FairWorkFilter carries the optional query filters for the postings list.
type FairWorkFilter struct {
	Skip           int
	Limit          int
	Location       string
	EmploymentType EmploymentType
	UnionStatus    UnionStatus
}
