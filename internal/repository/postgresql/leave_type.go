package postgresql

import (
	"context"
	"errors"

	"github.com/brightops/peoplehub-backend-go/internal/domain/leave"
	"github.com/brightops/peoplehub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

const leaveTypeColumns = `
	id, tenant_id, name, code, category, description,
	entitlement_days, accrual_type, accrual_rate,
	carry_forward, max_carry_forward_days, encashment,
	gender_specific, post_probation_only,
	max_days_per_month, max_days_per_year, medical_proof_required_after_days,
	advance_notice_days, requires_approval, auto_expiry_days, is_enabled,
	created_at, updated_at
`

func scanLeaveType(row pgx.Row) (leave.LeaveType, error) {
	var lt leave.LeaveType
	err := row.Scan(
		&lt.ID,
		&lt.TenantID,
		&lt.Name,
		&lt.Code,
		&lt.Category,
		&lt.Description,
		&lt.EntitlementDays,
		&lt.AccrualType,
		&lt.AccrualRate,
		&lt.CarryForward,
		&lt.MaxCarryForwardDays,
		&lt.Encashment,
		&lt.GenderSpecific,
		&lt.PostProbationOnly,
		&lt.MaxDaysPerMonth,
		&lt.MaxDaysPerYear,
		&lt.MedicalProofRequiredAfterDays,
		&lt.AdvanceNoticeDays,
		&lt.RequiresApproval,
		&lt.AutoExpiryDays,
		&lt.IsEnabled,
		&lt.CreatedAt,
		&lt.UpdatedAt,
	)
	return lt, err
}

func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (
			id, tenant_id, name, code, category, description,
			entitlement_days, accrual_type, accrual_rate,
			carry_forward, max_carry_forward_days, encashment,
			gender_specific, post_probation_only,
			max_days_per_month, max_days_per_year, medical_proof_required_after_days,
			advance_notice_days, requires_approval, auto_expiry_days, is_enabled,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10, $11,
			$12, $13,
			$14, $15, $16,
			$17, $18, $19, $20,
			NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		leaveType.TenantID,
		leaveType.Name,
		leaveType.Code,
		leaveType.Category,
		leaveType.Description,
		leaveType.EntitlementDays,
		leaveType.AccrualType,
		leaveType.AccrualRate,
		leaveType.CarryForward,
		leaveType.MaxCarryForwardDays,
		leaveType.Encashment,
		leaveType.GenderSpecific,
		leaveType.PostProbationOnly,
		leaveType.MaxDaysPerMonth,
		leaveType.MaxDaysPerYear,
		leaveType.MedicalProofRequiredAfterDays,
		leaveType.AdvanceNoticeDays,
		leaveType.RequiresApproval,
		leaveType.AutoExpiryDays,
		leaveType.IsEnabled,
	).Scan(&leaveType.ID, &leaveType.CreatedAt, &leaveType.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.LeaveType{}, leave.ErrLeaveTypeCodeExists
		}
		return leave.LeaveType{}, err
	}

	return leaveType, nil
}

func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	lt, err := scanLeaveType(q.QueryRow(ctx,
		`SELECT `+leaveTypeColumns+` FROM leave_types WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}

	return lt, nil
}

func (r *leaveTypeRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string, enabledOnly bool) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveTypeColumns + `
		FROM leave_types
		WHERE tenant_id = $1 AND ($2 = FALSE OR is_enabled = TRUE)
		ORDER BY name`

	rows, err := q.Query(ctx, query, tenantID, enabledOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		lt, err := scanLeaveType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, lt)
	}

	return types, rows.Err()
}

func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, leaveType leave.LeaveType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_types
		SET name = $2, description = $3, entitlement_days = $4,
			carry_forward = $5, max_carry_forward_days = $6,
			requires_approval = $7, is_enabled = $8, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		leaveType.ID,
		leaveType.Name,
		leaveType.Description,
		leaveType.EntitlementDays,
		leaveType.CarryForward,
		leaveType.MaxCarryForwardDays,
		leaveType.RequiresApproval,
		leaveType.IsEnabled,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}

func (r *leaveTypeRepositoryImpl) SetEnabled(ctx context.Context, id string, enabled bool) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE leave_types SET is_enabled = $2, updated_at = NOW() WHERE id = $1`, id, enabled)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}
