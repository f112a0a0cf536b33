package employee

import (
	"time"
)

type Employee struct {
	ID               string
	TenantID         string
	DepartmentID     *string
	EmployeeCode     string
	FullName         string
	PersonalEmail    *string
	Gender           Gender
	Designation      *string
	EmploymentType   EmploymentType
	DateOfJoining    time.Time
	ProbationEndDate *time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined for responses
	DepartmentName *string
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "full_time"
	EmploymentTypePartTime EmploymentType = "part_time"
	EmploymentTypeContract EmploymentType = "contract"
	EmploymentTypeIntern   EmploymentType = "intern"
)

type Department struct {
	ID        string
	TenantID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
