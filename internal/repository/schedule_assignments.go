package repository

import (
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
)

// UpsertScheduleAssignment 记录哪位经理最后确认了该员工该周的排班
// 这行记录的存在是创建班次的前置条件
func (r *Repository) UpsertScheduleAssignment(assignment *domain.ScheduleAssignment) error {
	query := `
		INSERT INTO schedule_assignments (esin, week, msin)
		VALUES ($1, $2, $3)
		ON CONFLICT (esin, week) DO UPDATE
		SET msin = EXCLUDED.msin
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, assignment.EmployeeSIN, assignment.Week, assignment.ManagerSIN); err != nil {
		return err
	}

	return nil
}
