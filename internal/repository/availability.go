package repository

import (
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
)

// UpsertAvailability 以 (esin, weekday) 为键做原子覆盖写
// 重复提交是 last-write-wins，不会产生第二个时间窗口
func (r *Repository) UpsertAvailability(availability *domain.Availability) error {
	query := `
		INSERT INTO availability (esin, weekday, emp_start, emp_end)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (esin, weekday) DO UPDATE
		SET emp_start = EXCLUDED.emp_start, emp_end = EXCLUDED.emp_end
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{availability.EmployeeSIN, availability.Weekday, availability.Start, availability.End}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

type AvailabilityFilter struct {
	Weekday     *string
	EmployeeSIN *string
}

func (r *Repository) ListAvailability(filter AvailabilityFilter) ([]*domain.Availability, error) {
	// 过滤条件为 NULL 时退化为全量查询
	query := `
		SELECT esin, weekday, emp_start, emp_end
		FROM availability
		WHERE ($1::text IS NULL OR weekday = $1)
		  AND ($2::text IS NULL OR esin = $2)
		ORDER BY weekday, emp_start
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, filter.Weekday, filter.EmployeeSIN)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.Availability, 0)
	for rows.Next() {
		record := &domain.Availability{}
		if err := rows.Scan(&record.EmployeeSIN, &record.Weekday, &record.Start, &record.End); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
