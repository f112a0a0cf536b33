package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/employee"
	"github.com/brightops/peoplehub-backend-go/internal/domain/leave"
	"github.com/brightops/peoplehub-backend-go/internal/pkg/database"
	"github.com/brightops/peoplehub-backend-go/internal/repository/postgresql"
)

// ApplicationService drives the leave request lifecycle: apply, approve,
// reject, cancel. Balance deduction happens only at approval, inside a
// transaction that locks the balance row.
type ApplicationService struct {
	db *database.DB
	leave.LeaveTypeRepository
	leave.LeaveBalanceRepository
	leave.LeaveApplicationRepository
	employee.EmployeeRepository
}

func NewApplicationService(
	db *database.DB,
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	leaveApplicationRepository leave.LeaveApplicationRepository,
	employeeRepository employee.EmployeeRepository,
) *ApplicationService {
	return &ApplicationService{
		db:                         db,
		LeaveTypeRepository:        leaveTypeRepository,
		LeaveBalanceRepository:     leaveBalanceRepository,
		LeaveApplicationRepository: leaveApplicationRepository,
		EmployeeRepository:         employeeRepository,
	}
}

func (s *ApplicationService) Apply(ctx context.Context, tenantID, employeeID string, req leave.ApplyLeaveRequest) (leave.ApplyLeaveResult, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplyLeaveResult{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leave.ApplyLeaveResult{}, fmt.Errorf("failed to get employee: %w", err)
	}

	lt, err := s.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.ApplyLeaveResult{}, err
	}
	if lt.TenantID != tenantID {
		return leave.ApplyLeaveResult{}, leave.ErrLeaveTypeNotFound
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.ApplyLeaveResult{}, leave.ErrInvalidDateRange
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.ApplyLeaveResult{}, leave.ErrInvalidDateRange
	}

	var bal *leave.LeaveBalance
	b, err := s.LeaveBalanceRepository.GetByEmployeeTypeYear(ctx, employeeID, lt.ID, startDate.Year())
	switch {
	case err == nil:
		bal = &b
	case errors.Is(err, leave.ErrLeaveBalanceNotFound):
		// No balance row yet; validation falls back to the base entitlement.
	default:
		return leave.ApplyLeaveResult{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	comp, err := leave.ValidateAndCompute(emp, &lt, bal, startDate, endDate)
	if err != nil {
		return leave.ApplyLeaveResult{}, err
	}

	hasOverlap, err := s.LeaveApplicationRepository.CheckOverlapping(ctx, employeeID, startDate, endDate)
	if err != nil {
		return leave.ApplyLeaveResult{}, fmt.Errorf("failed to check overlapping applications: %w", err)
	}
	if hasOverlap {
		return leave.ApplyLeaveResult{}, leave.ErrOverlappingLeave
	}

	app := leave.LeaveApplication{
		TenantID:      tenantID,
		EmployeeID:    employeeID,
		LeaveTypeID:   lt.ID,
		StartDate:     startDate,
		EndDate:       endDate,
		DaysCount:     comp.DaysCount,
		IsLOP:         comp.IsOverBalance,
		LOPDays:       comp.LOPDays,
		Reason:        req.Reason,
		AttachmentURL: req.AttachmentURL,
		Status:        leave.LeaveStatusPending,
	}

	var warnings []string
	if shortfall := leave.NoticeShortfall(&lt, time.Now().UTC(), startDate); shortfall > 0 {
		warnings = append(warnings, fmt.Sprintf("filed %d day(s) short of the required advance notice", shortfall))
	}
	if comp.ExceedsMaxPerYear {
		warnings = append(warnings, fmt.Sprintf("request exceeds the yearly limit of %d days for this leave type", *lt.MaxDaysPerYear))
	}
	if comp.MedicalProofRequired && app.AttachmentURL == nil {
		warnings = append(warnings, "medical proof is required for leave of this duration")
	}

	if !lt.RequiresApproval {
		// Auto-approve: create and deduct in one transaction.
		err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
			app.Status = leave.LeaveStatusApproved
			created, err := s.LeaveApplicationRepository.Create(ctx, app)
			if err != nil {
				return fmt.Errorf("failed to create leave application: %w", err)
			}
			app = created
			return s.deductBalance(ctx, app)
		})
		if err != nil {
			return leave.ApplyLeaveResult{}, err
		}
		return leave.ApplyLeaveResult{Application: app, Warnings: warnings}, nil
	}

	created, err := s.LeaveApplicationRepository.Create(ctx, app)
	if err != nil {
		return leave.ApplyLeaveResult{}, fmt.Errorf("failed to create leave application: %w", err)
	}
	return leave.ApplyLeaveResult{Application: created, Warnings: warnings}, nil
}

func (s *ApplicationService) Approve(ctx context.Context, tenantID, approverID, applicationID string) (leave.LeaveApplication, error) {
	app, err := s.getTenantApplication(ctx, tenantID, applicationID)
	if err != nil {
		return leave.LeaveApplication{}, err
	}
	if app.Status != leave.LeaveStatusPending {
		return leave.LeaveApplication{}, leave.ErrLeaveAlreadyProcessed
	}

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.deductBalance(ctx, app); err != nil {
			return err
		}
		return s.LeaveApplicationRepository.UpdateStatus(ctx, app.ID, leave.LeaveStatusApproved, &approverID)
	})
	if err != nil {
		return leave.LeaveApplication{}, err
	}

	return s.LeaveApplicationRepository.GetByID(ctx, app.ID)
}

// deductBalance locks the balance row, recomputes the deduction against the
// locked values and adds it to used_days. LOP days never touch the balance.
// Missing balance rows mean the whole request is LOP-backed already; nothing
// to deduct.
func (s *ApplicationService) deductBalance(ctx context.Context, app leave.LeaveApplication) error {
	bal, err := s.LeaveBalanceRepository.GetForUpdate(ctx, app.EmployeeID, app.LeaveTypeID, app.StartDate.Year())
	if err != nil {
		if errors.Is(err, leave.ErrLeaveBalanceNotFound) {
			return nil
		}
		return fmt.Errorf("failed to lock leave balance: %w", err)
	}

	deduction := app.DaysCount
	if available := bal.Available(); deduction.GreaterThan(available) {
		deduction = available
		if deduction.IsNegative() {
			return nil
		}
	}

	if err := s.LeaveBalanceRepository.AddUsedDays(ctx, bal.ID, deduction); err != nil {
		return fmt.Errorf("failed to deduct leave balance: %w", err)
	}
	return nil
}

func (s *ApplicationService) Reject(ctx context.Context, tenantID, approverID, applicationID string) (leave.LeaveApplication, error) {
	app, err := s.getTenantApplication(ctx, tenantID, applicationID)
	if err != nil {
		return leave.LeaveApplication{}, err
	}
	if app.Status != leave.LeaveStatusPending {
		return leave.LeaveApplication{}, leave.ErrLeaveAlreadyProcessed
	}

	if err := s.LeaveApplicationRepository.UpdateStatus(ctx, app.ID, leave.LeaveStatusRejected, &approverID); err != nil {
		return leave.LeaveApplication{}, fmt.Errorf("failed to reject leave application: %w", err)
	}
	return s.LeaveApplicationRepository.GetByID(ctx, app.ID)
}

// Cancel withdraws a pending application. Approved leave cannot be
// cancelled here; unwinding a deducted balance is an admin adjustment.
func (s *ApplicationService) Cancel(ctx context.Context, tenantID, employeeID, applicationID string) (leave.LeaveApplication, error) {
	app, err := s.getTenantApplication(ctx, tenantID, applicationID)
	if err != nil {
		return leave.LeaveApplication{}, err
	}
	if app.EmployeeID != employeeID {
		return leave.LeaveApplication{}, leave.ErrLeaveApplicationNotFound
	}
	if app.Status != leave.LeaveStatusPending {
		return leave.LeaveApplication{}, leave.ErrLeaveAlreadyProcessed
	}

	if err := s.LeaveApplicationRepository.UpdateStatus(ctx, app.ID, leave.LeaveStatusCancelled, nil); err != nil {
		return leave.LeaveApplication{}, fmt.Errorf("failed to cancel leave application: %w", err)
	}
	return s.LeaveApplicationRepository.GetByID(ctx, app.ID)
}

func (s *ApplicationService) GetApplication(ctx context.Context, tenantID, applicationID string) (leave.LeaveApplication, error) {
	return s.getTenantApplication(ctx, tenantID, applicationID)
}

func (s *ApplicationService) ListMyApplications(ctx context.Context, employeeID string, status *leave.LeaveStatus) ([]leave.LeaveApplication, error) {
	apps, err := s.LeaveApplicationRepository.GetByEmployeeID(ctx, employeeID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications: %w", err)
	}
	return apps, nil
}

func (s *ApplicationService) ListPendingApplications(ctx context.Context, tenantID string) ([]leave.LeaveApplication, error) {
	apps, err := s.LeaveApplicationRepository.GetPendingByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending applications: %w", err)
	}
	return apps, nil
}

func (s *ApplicationService) getTenantApplication(ctx context.Context, tenantID, applicationID string) (leave.LeaveApplication, error) {
	app, err := s.LeaveApplicationRepository.GetByID(ctx, applicationID)
	if err != nil {
		return leave.LeaveApplication{}, err
	}
	if app.TenantID != tenantID {
		return leave.LeaveApplication{}, leave.ErrLeaveApplicationNotFound
	}
	return app, nil
}
