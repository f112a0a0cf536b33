package project

import "time"

type Project struct {
	ID            string
	TenantID      string
	Name          string
	ClientName    *string
	Category      *string
	Description   *string
	InitialNotes  *string
	Status        ProjectStatus
	ProjectHeadID *string
	StartDate     *time.Time
	EndDate       *time.Time
	CreatedBy     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for responses
	ProjectHeadName *string
}

type ProjectStatus string

const (
	StatusPlanning  ProjectStatus = "planning"
	StatusActive    ProjectStatus = "active"
	StatusOnHold    ProjectStatus = "on_hold"
	StatusCompleted ProjectStatus = "completed"
	StatusCancelled ProjectStatus = "cancelled"
)
