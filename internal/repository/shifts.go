package repository

import (
	"database/sql"
	"errors"

	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/utils"
)

// CreateShift 在单个事务里完成排班确认检查、空闲窗口检查和写入
// 并发创建同一键的班次由 shifts 表的主键约束仲裁，唯一键冲突会以
// pgconn.PgError 的形式返回给调用方
func (r *Repository) CreateShift(shift *domain.Shift) error {
	ctx, cancel := r.transactionContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// 员工必须已被确认在这一周排班
	var scheduled bool
	query := `SELECT EXISTS (SELECT 1 FROM schedule_assignments WHERE esin = $1 AND week = $2)`
	if err := tx.QueryRowContext(ctx, query, shift.EmployeeSIN, shift.Week).Scan(&scheduled); err != nil {
		return err
	}
	if !scheduled {
		return domain.ErrNotScheduled
	}

	// 如果当天存在空闲窗口，班次从窗口起点开工，不允许超出窗口终点
	// 没有提交过空闲时间的员工不做该约束
	weekday, ok := domain.WeekdayName(shift.Day)
	if !ok {
		return errors.New("day must be between 1 and 7")
	}

	availability := &domain.Availability{EmployeeSIN: shift.EmployeeSIN, Weekday: weekday}
	query = `SELECT emp_start, emp_end FROM availability WHERE esin = $1 AND weekday = $2`
	err = tx.QueryRowContext(ctx, query, shift.EmployeeSIN, weekday).Scan(&availability.Start, &availability.End)
	switch {
	case err == nil:
		if !utils.FitsAvailability(availability, shift.Length) {
			return domain.ErrExceedsAvailability
		}
	case errors.Is(err, sql.ErrNoRows):
		// 无约束
	default:
		return err
	}

	query = `
		INSERT INTO shifts (esin, day, week, month, msin, length)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{shift.EmployeeSIN, shift.Day, shift.Week, shift.Month, shift.ManagerSIN, shift.Length}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateShift 只允许修改 length，键字段一经写入不可变
// 跨部门的经理不允许修改班次
func (r *Repository) UpdateShift(manager *domain.Manager, shift *domain.Shift) error {
	ctx, cancel := r.transactionContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		SELECT msin FROM shifts
		WHERE esin = $1 AND day = $2 AND week = $3 AND month = $4
		FOR UPDATE
	`
	var creatorSIN string
	err = tx.QueryRowContext(ctx, query, shift.EmployeeSIN, shift.Day, shift.Week, shift.Month).Scan(&creatorSIN)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrShiftNotFound
	case err != nil:
		return err
	}

	var departmentID int64
	query = `SELECT department_id FROM employees WHERE sin = $1`
	err = tx.QueryRowContext(ctx, query, shift.EmployeeSIN).Scan(&departmentID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrEmployeeNotFound
	case err != nil:
		return err
	}

	if departmentID != manager.DepartmentID {
		return domain.ErrWrongDepartment
	}

	// 创建者 msin 不随修改变化，只有 length 可变
	query = `
		UPDATE shifts SET length = $1
		WHERE esin = $2 AND day = $3 AND week = $4 AND month = $5
	`
	args := []any{shift.Length, shift.EmployeeSIN, shift.Day, shift.Week, shift.Month}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	shift.ManagerSIN = creatorSIN

	return tx.Commit()
}

// DeleteShift 与 UpdateShift 采用同样的部门归属检查
func (r *Repository) DeleteShift(manager *domain.Manager, employeeSIN string, day, week, month int32) error {
	ctx, cancel := r.transactionContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		SELECT msin FROM shifts
		WHERE esin = $1 AND day = $2 AND week = $3 AND month = $4
		FOR UPDATE
	`
	var creatorSIN string
	err = tx.QueryRowContext(ctx, query, employeeSIN, day, week, month).Scan(&creatorSIN)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrShiftNotFound
	case err != nil:
		return err
	}

	var departmentID int64
	query = `SELECT department_id FROM employees WHERE sin = $1`
	err = tx.QueryRowContext(ctx, query, employeeSIN).Scan(&departmentID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrEmployeeNotFound
	case err != nil:
		return err
	}

	if departmentID != manager.DepartmentID {
		return domain.ErrWrongDepartment
	}

	query = `DELETE FROM shifts WHERE esin = $1 AND day = $2 AND week = $3 AND month = $4`
	if _, err := tx.ExecContext(ctx, query, employeeSIN, day, week, month); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) ListShiftsForEmployee(employeeSIN string, month int32) ([]*domain.Shift, error) {
	query := `
		SELECT esin, day, week, month, msin, length
		FROM shifts
		WHERE esin = $1 AND month = $2
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, employeeSIN, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		shift := &domain.Shift{}
		dst := []any{&shift.EmployeeSIN, &shift.Day, &shift.Week, &shift.Month, &shift.ManagerSIN, &shift.Length}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) ListShiftsForDepartment(departmentID int64, week, month *int32) ([]*domain.DepartmentShift, error) {
	query := `
		SELECT s.esin, s.day, s.week, s.month, s.msin, s.length, e.name
		FROM shifts s
		JOIN employees e ON e.sin = s.esin
		WHERE e.department_id = $1
		  AND ($2::int IS NULL OR s.week = $2)
		  AND ($3::int IS NULL OR s.month = $3)
		ORDER BY s.week, s.day
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, departmentID, week, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.DepartmentShift, 0)
	for rows.Next() {
		shift := &domain.DepartmentShift{}
		dst := []any{&shift.EmployeeSIN, &shift.Day, &shift.Week, &shift.Month, &shift.ManagerSIN, &shift.Length, &shift.EmployeeName}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}
