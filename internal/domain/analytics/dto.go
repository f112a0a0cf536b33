package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Input records are flat projections of the join shapes the repositories
// return. Optional joins (department, leave type) are explicit pointers with
// defined fallbacks ("Unassigned", "Unknown") applied during aggregation, so
// partial data degrades instead of failing the batch.

type ApplicationRecord struct {
	ID             string
	EmployeeID     string
	DepartmentName *string
	LeaveTypeID    string
	LeaveTypeName  *string
	LeaveTypeCode  *string
	StartDate      time.Time
	DaysCount      decimal.Decimal
	Status         string
}

type BalanceRecord struct {
	EmployeeID         string
	EntitledDays       decimal.Decimal
	CarriedForwardDays decimal.Decimal
	AdjustedDays       decimal.Decimal
	UsedDays           decimal.Decimal
}

type EmployeeRecord struct {
	ID             string
	FullName       string
	DepartmentName *string
	DateOfJoining  time.Time
}

// ========== ANNUAL ANALYTICS ==========

type MonthlyLeaveTrend struct {
	Month    string  `json:"month"`
	Approved float64 `json:"approved"`
	Pending  float64 `json:"pending"`
	Rejected float64 `json:"rejected"`
}

type DepartmentUsage struct {
	Department    string `json:"department"`
	TotalDays     int    `json:"total_days"`
	EmployeeCount int    `json:"employee_count"`
}

type LeaveTypeDistribution struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	TotalDays  int    `json:"total_days"`
	Percentage int    `json:"percentage"`
}

type BalanceSummary struct {
	TotalEntitled   int `json:"total_entitled"`
	TotalUsed       int `json:"total_used"`
	TotalAvailable  int `json:"total_available"`
	UtilizationRate int `json:"utilization_rate"`
}

type AnnualAnalytics struct {
	MonthlyTrends         []MonthlyLeaveTrend     `json:"monthly_trends"`
	DepartmentUsage       []DepartmentUsage       `json:"department_usage"`
	LeaveTypeDistribution []LeaveTypeDistribution `json:"leave_type_distribution"`
	BalanceSummary        BalanceSummary          `json:"balance_summary"`
	TotalApplications     int                     `json:"total_applications"`
	ApprovedApplications  int                     `json:"approved_applications"`
}

// ========== PER-EMPLOYEE STATS ==========

type EmployeeLeaveStats struct {
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	DepartmentName       string  `json:"department_name"`
	TotalEntitled        float64 `json:"total_entitled"`
	TotalUsed            float64 `json:"total_used"`
	TotalBalance         float64 `json:"total_balance"`
	PendingRequests      int     `json:"pending_requests"`
	DateOfJoining        string  `json:"date_of_joining"`
	TotalWorkingDays     int     `json:"total_working_days"`
	LeaveTaken           float64 `json:"leave_taken"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}
