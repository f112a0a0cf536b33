package analytics

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/analytics"
	"github.com/brightops/peoplehub-backend-go/internal/domain/employee"
	"github.com/brightops/peoplehub-backend-go/internal/domain/leave"
	"github.com/brightops/peoplehub-backend-go/internal/pkg/export"
	"golang.org/x/sync/errgroup"
)

// AnalyticsService assembles the tenant-wide leave dashboard. The three
// source queries are independent and fetched concurrently; aggregation
// itself is pure and lives in the analytics domain package.
type AnalyticsService struct {
	leave.LeaveApplicationRepository
	leave.LeaveBalanceRepository
	employee.EmployeeRepository
}

func NewAnalyticsService(
	leaveApplicationRepository leave.LeaveApplicationRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	employeeRepository employee.EmployeeRepository,
) *AnalyticsService {
	return &AnalyticsService{
		LeaveApplicationRepository: leaveApplicationRepository,
		LeaveBalanceRepository:     leaveBalanceRepository,
		EmployeeRepository:         employeeRepository,
	}
}

func (s *AnalyticsService) GetAnnualAnalytics(ctx context.Context, tenantID string, year int) (analytics.AnnualAnalytics, error) {
	var (
		apps     []leave.LeaveApplication
		balances []leave.LeaveBalance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		apps, err = s.LeaveApplicationRepository.GetByTenantAndYear(gctx, tenantID, year)
		if err != nil {
			return fmt.Errorf("failed to fetch applications: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		balances, err = s.LeaveBalanceRepository.GetByTenantAndYear(gctx, tenantID, year)
		if err != nil {
			return fmt.Errorf("failed to fetch balances: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return analytics.AnnualAnalytics{}, err
	}

	return analytics.ComputeAnnualAnalytics(toApplicationRecords(apps), toBalanceRecords(balances), year), nil
}

func (s *AnalyticsService) GetEmployeeStats(ctx context.Context, tenantID string, year int, asOf time.Time) ([]analytics.EmployeeLeaveStats, error) {
	var (
		employees []employee.Employee
		balances  []leave.LeaveBalance
		pending   []leave.LeaveApplication
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.EmployeeRepository.GetByTenantID(gctx, tenantID, true)
		if err != nil {
			return fmt.Errorf("failed to fetch employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		balances, err = s.LeaveBalanceRepository.GetByTenantAndYear(gctx, tenantID, year)
		if err != nil {
			return fmt.Errorf("failed to fetch balances: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		pending, err = s.LeaveApplicationRepository.GetPendingByTenant(gctx, tenantID)
		if err != nil {
			return fmt.Errorf("failed to fetch pending applications: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return analytics.ComputeEmployeeStats(
		toEmployeeRecords(employees),
		toBalanceRecords(balances),
		toApplicationRecords(pending),
		year,
		asOf,
	), nil
}

func (s *AnalyticsService) ExportEmployeeStatsCSV(ctx context.Context, w io.Writer, tenantID string, year int, asOf time.Time) error {
	stats, err := s.GetEmployeeStats(ctx, tenantID, year, asOf)
	if err != nil {
		return err
	}
	return export.WriteEmployeeStatsCSV(w, stats, year)
}

func (s *AnalyticsService) ExportEmployeeStatsPDF(ctx context.Context, w io.Writer, tenantID string, year int, asOf time.Time) error {
	stats, err := s.GetEmployeeStats(ctx, tenantID, year, asOf)
	if err != nil {
		return err
	}
	return export.WriteEmployeeStatsPDF(w, stats, year)
}

func toApplicationRecords(apps []leave.LeaveApplication) []analytics.ApplicationRecord {
	records := make([]analytics.ApplicationRecord, 0, len(apps))
	for _, a := range apps {
		records = append(records, analytics.ApplicationRecord{
			ID:             a.ID,
			EmployeeID:     a.EmployeeID,
			DepartmentName: a.DepartmentName,
			LeaveTypeID:    a.LeaveTypeID,
			LeaveTypeName:  a.LeaveTypeName,
			LeaveTypeCode:  a.LeaveTypeCode,
			StartDate:      a.StartDate,
			DaysCount:      a.DaysCount,
			Status:         string(a.Status),
		})
	}
	return records
}

func toBalanceRecords(balances []leave.LeaveBalance) []analytics.BalanceRecord {
	records := make([]analytics.BalanceRecord, 0, len(balances))
	for _, b := range balances {
		records = append(records, analytics.BalanceRecord{
			EmployeeID:         b.EmployeeID,
			EntitledDays:       b.EntitledDays,
			CarriedForwardDays: b.CarriedForwardDays,
			AdjustedDays:       b.AdjustedDays,
			UsedDays:           b.UsedDays,
		})
	}
	return records
}

func toEmployeeRecords(employees []employee.Employee) []analytics.EmployeeRecord {
	records := make([]analytics.EmployeeRecord, 0, len(employees))
	for _, e := range employees {
		records = append(records, analytics.EmployeeRecord{
			ID:             e.ID,
			FullName:       e.FullName,
			DepartmentName: e.DepartmentName,
			DateOfJoining:  e.DateOfJoining,
		})
	}
	return records
}
