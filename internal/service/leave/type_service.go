package leave

import (
	"context"
	"fmt"

	"github.com/brightops/peoplehub-backend-go/internal/domain/employee"
	"github.com/brightops/peoplehub-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// TypeService manages the per-tenant leave type catalog.
type TypeService struct {
	leave.LeaveTypeRepository
}

func NewTypeService(leaveTypeRepository leave.LeaveTypeRepository) *TypeService {
	return &TypeService{LeaveTypeRepository: leaveTypeRepository}
}

func (s *TypeService) CreateLeaveType(ctx context.Context, tenantID string, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	lt := leave.LeaveType{
		TenantID:                      tenantID,
		Name:                          req.Name,
		Code:                          req.Code,
		Category:                      leave.LeaveCategory(req.Category),
		Description:                   req.Description,
		EntitlementDays:               decimal.NewFromFloat(req.EntitlementDays),
		AccrualType:                   leave.AccrualType(req.AccrualType),
		CarryForward:                  req.CarryForward,
		Encashment:                    req.Encashment,
		PostProbationOnly:             req.PostProbationOnly,
		MaxDaysPerMonth:               req.MaxDaysPerMonth,
		MaxDaysPerYear:                req.MaxDaysPerYear,
		MedicalProofRequiredAfterDays: req.MedicalProofRequiredAfterDays,
		AdvanceNoticeDays:             req.AdvanceNoticeDays,
		RequiresApproval:              req.RequiresApproval,
		AutoExpiryDays:                req.AutoExpiryDays,
		IsEnabled:                     true,
	}
	if req.AccrualRate != nil {
		rate := decimal.NewFromFloat(*req.AccrualRate)
		lt.AccrualRate = &rate
	}
	if req.MaxCarryForwardDays != nil {
		cap := decimal.NewFromFloat(*req.MaxCarryForwardDays)
		lt.MaxCarryForwardDays = &cap
	}
	if req.GenderSpecific != nil {
		gender := employee.Gender(*req.GenderSpecific)
		lt.GenderSpecific = &gender
	}

	created, err := s.LeaveTypeRepository.Create(ctx, lt)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	return created, nil
}

func (s *TypeService) GetLeaveType(ctx context.Context, tenantID, id string) (leave.LeaveType, error) {
	lt, err := s.LeaveTypeRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveType{}, err
	}
	if lt.TenantID != tenantID {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (s *TypeService) ListLeaveTypes(ctx context.Context, tenantID string, enabledOnly bool) ([]leave.LeaveType, error) {
	types, err := s.LeaveTypeRepository.GetByTenantID(ctx, tenantID, enabledOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	return types, nil
}

func (s *TypeService) UpdateLeaveType(ctx context.Context, tenantID string, req leave.UpdateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	lt, err := s.GetLeaveType(ctx, tenantID, req.ID)
	if err != nil {
		return leave.LeaveType{}, err
	}

	if req.Name != nil {
		lt.Name = *req.Name
	}
	if req.Description != nil {
		lt.Description = req.Description
	}
	if req.EntitlementDays != nil {
		lt.EntitlementDays = decimal.NewFromFloat(*req.EntitlementDays)
	}
	if req.CarryForward != nil {
		lt.CarryForward = *req.CarryForward
	}
	if req.MaxCarryForwardDays != nil {
		cap := decimal.NewFromFloat(*req.MaxCarryForwardDays)
		lt.MaxCarryForwardDays = &cap
	}
	if req.RequiresApproval != nil {
		lt.RequiresApproval = *req.RequiresApproval
	}
	if req.IsEnabled != nil {
		lt.IsEnabled = *req.IsEnabled
	}

	if err := s.LeaveTypeRepository.Update(ctx, lt); err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to update leave type: %w", err)
	}
	return lt, nil
}

func (s *TypeService) SetLeaveTypeEnabled(ctx context.Context, tenantID, id string, enabled bool) error {
	if _, err := s.GetLeaveType(ctx, tenantID, id); err != nil {
		return err
	}
	return s.LeaveTypeRepository.SetEnabled(ctx, id, enabled)
}
