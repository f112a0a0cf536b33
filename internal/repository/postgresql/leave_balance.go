package postgresql

import (
	"context"
	"errors"

	"github.com/brightops/peoplehub-backend-go/internal/domain/leave"
	"github.com/brightops/peoplehub-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

const leaveBalanceColumns = `
	id, tenant_id, employee_id, leave_type_id, year,
	entitled_days, carried_forward_days, adjusted_days, used_days,
	created_at, updated_at
`

func scanLeaveBalance(row pgx.Row) (leave.LeaveBalance, error) {
	var b leave.LeaveBalance
	err := row.Scan(
		&b.ID,
		&b.TenantID,
		&b.EmployeeID,
		&b.LeaveTypeID,
		&b.Year,
		&b.EntitledDays,
		&b.CarriedForwardDays,
		&b.AdjustedDays,
		&b.UsedDays,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (
			id, tenant_id, employee_id, leave_type_id, year,
			entitled_days, carried_forward_days, adjusted_days, used_days,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4,
			$5, $6, $7, $8,
			NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.TenantID,
		balance.EmployeeID,
		balance.LeaveTypeID,
		balance.Year,
		balance.EntitledDays,
		balance.CarriedForwardDays,
		balance.AdjustedDays,
		balance.UsedDays,
	).Scan(&balance.ID, &balance.CreatedAt, &balance.UpdatedAt)
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanLeaveBalance(q.QueryRow(ctx,
		`SELECT `+leaveBalanceColumns+`
		 FROM leave_balances
		 WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3`,
		employeeID, leaveTypeID, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return b, nil
}

// GetForUpdate locks the row until the surrounding transaction commits.
// Callers must invoke it through WithTransaction; on the bare pool the lock
// releases immediately and provides no serialization.
func (r *leaveBalanceRepositoryImpl) GetForUpdate(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanLeaveBalance(q.QueryRow(ctx,
		`SELECT `+leaveBalanceColumns+`
		 FROM leave_balances
		 WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
		 FOR UPDATE`,
		employeeID, leaveTypeID, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return b, nil
}

func (r *leaveBalanceRepositoryImpl) GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+leaveBalanceColumns+`
		 FROM leave_balances
		 WHERE employee_id = $1 AND year = $2
		 ORDER BY leave_type_id`,
		employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveBalances(rows)
}

func (r *leaveBalanceRepositoryImpl) GetByTenantAndYear(ctx context.Context, tenantID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+leaveBalanceColumns+`
		 FROM leave_balances
		 WHERE tenant_id = $1 AND year = $2
		 ORDER BY employee_id, leave_type_id`,
		tenantID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveBalances(rows)
}

func collectLeaveBalances(rows pgx.Rows) ([]leave.LeaveBalance, error) {
	var balances []leave.LeaveBalance
	for rows.Next() {
		b, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

func (r *leaveBalanceRepositoryImpl) AddUsedDays(ctx context.Context, id string, days decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE leave_balances
		 SET used_days = used_days + $2, updated_at = NOW()
		 WHERE id = $1`,
		id, days)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveBalanceNotFound
	}
	return nil
}

func (r *leaveBalanceRepositoryImpl) Adjust(ctx context.Context, id string, delta decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE leave_balances
		 SET adjusted_days = adjusted_days + $2, updated_at = NOW()
		 WHERE id = $1`,
		id, delta)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveBalanceNotFound
	}
	return nil
}
