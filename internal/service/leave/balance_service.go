package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/employee"
	"github.com/brightops/peoplehub-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// BalanceService provisions and adjusts the per-year balance ledger.
type BalanceService struct {
	leave.LeaveTypeRepository
	leave.LeaveBalanceRepository
	employee.EmployeeRepository
}

func NewBalanceService(
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	employeeRepository employee.EmployeeRepository,
) *BalanceService {
	return &BalanceService{
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		EmployeeRepository:     employeeRepository,
	}
}

// InitializeYearResult summarizes a provisioning run.
type InitializeYearResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// InitializeYear creates a balance row for every active employee and enabled
// leave type that does not have one yet. Entitlement is accrued as of the
// year end (or the current date for an in-progress year) and carry-forward is
// taken from the prior year's closing availability. Existing rows are left
// untouched, so the operation is safe to re-run.
func (s *BalanceService) InitializeYear(ctx context.Context, tenantID string, req leave.InitializeYearRequest) (InitializeYearResult, error) {
	if err := req.Validate(); err != nil {
		return InitializeYearResult{}, err
	}

	employees, err := s.EmployeeRepository.GetByTenantID(ctx, tenantID, true)
	if err != nil {
		return InitializeYearResult{}, fmt.Errorf("failed to list employees: %w", err)
	}
	leaveTypes, err := s.LeaveTypeRepository.GetByTenantID(ctx, tenantID, true)
	if err != nil {
		return InitializeYearResult{}, fmt.Errorf("failed to list leave types: %w", err)
	}

	asOf := time.Date(req.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
	if now := time.Now().UTC(); now.Year() == req.Year {
		asOf = now
	}

	var result InitializeYearResult
	for _, emp := range employees {
		for _, lt := range leaveTypes {
			if !lt.IsApplicableTo(emp.Gender) {
				continue
			}

			_, err := s.LeaveBalanceRepository.GetByEmployeeTypeYear(ctx, emp.ID, lt.ID, req.Year)
			if err == nil {
				result.Skipped++
				continue
			}
			if !errors.Is(err, leave.ErrLeaveBalanceNotFound) {
				return result, fmt.Errorf("failed to check existing balance: %w", err)
			}

			carried := decimal.Zero
			prior, err := s.LeaveBalanceRepository.GetByEmployeeTypeYear(ctx, emp.ID, lt.ID, req.Year-1)
			if err == nil {
				carried = leave.CarryForwardDays(lt, prior.Available())
			} else if !errors.Is(err, leave.ErrLeaveBalanceNotFound) {
				return result, fmt.Errorf("failed to get prior year balance: %w", err)
			}

			balance := leave.LeaveBalance{
				TenantID:           tenantID,
				EmployeeID:         emp.ID,
				LeaveTypeID:        lt.ID,
				Year:               req.Year,
				EntitledDays:       leave.EntitledDaysAt(lt, emp.DateOfJoining, asOf),
				CarriedForwardDays: carried,
				AdjustedDays:       decimal.Zero,
				UsedDays:           decimal.Zero,
			}
			if _, err := s.LeaveBalanceRepository.Create(ctx, balance); err != nil {
				return result, fmt.Errorf("failed to create balance for employee %s: %w", emp.ID, err)
			}
			result.Created++
		}
	}

	return result, nil
}

func (s *BalanceService) GetEmployeeBalances(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	balances, err := s.LeaveBalanceRepository.GetByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	return balances, nil
}

// Adjust applies a manual delta to the adjusted_days bucket, positive for
// grants and negative for revocations.
func (s *BalanceService) Adjust(ctx context.Context, tenantID string, req leave.AdjustBalanceRequest) (leave.LeaveBalance, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveBalance{}, err
	}

	bal, err := s.LeaveBalanceRepository.GetByEmployeeTypeYear(ctx, req.EmployeeID, req.LeaveTypeID, req.Year)
	if err != nil {
		return leave.LeaveBalance{}, err
	}
	if bal.TenantID != tenantID {
		return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
	}

	if err := s.LeaveBalanceRepository.Adjust(ctx, bal.ID, decimal.NewFromFloat(req.Delta)); err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to adjust balance: %w", err)
	}

	return s.LeaveBalanceRepository.GetByEmployeeTypeYear(ctx, req.EmployeeID, req.LeaveTypeID, req.Year)
}
