package repository

import (
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
)

// 身份目录的读侧：账号由外部流程（或 seed 工具）创建，这里只做解析

func (r *Repository) GetEmployeeBySIN(sin string) (*domain.Employee, error) {
	query := `
		SELECT name, email, phone, department_id, msin, pay_rate, password_hash
		FROM employees WHERE sin = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	employee := &domain.Employee{
		SIN: sin,
	}

	dst := []any{&employee.Name, &employee.Email, &employee.Phone, &employee.DepartmentID, &employee.ManagerSIN, &employee.PayRate, &employee.PasswordHash}
	if err := r.dbpool.QueryRowContext(ctx, query, sin).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) GetManagerBySIN(sin string) (*domain.Manager, error) {
	query := `
		SELECT name, email, phone, department_id, password_hash
		FROM managers WHERE sin = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	manager := &domain.Manager{
		SIN: sin,
	}

	dst := []any{&manager.Name, &manager.Email, &manager.Phone, &manager.DepartmentID, &manager.PasswordHash}
	if err := r.dbpool.QueryRowContext(ctx, query, sin).Scan(dst...); err != nil {
		return nil, err
	}

	return manager, nil
}

func (r *Repository) CreateDepartment(department *domain.Department) error {
	query := `
		INSERT INTO departments (name, manager_sin)
		VALUES ($1, $2)
		RETURNING id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, department.Name, department.ManagerSIN).Scan(&department.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateManager(manager *domain.Manager) error {
	query := `
		INSERT INTO managers (sin, name, email, phone, department_id, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{manager.SIN, manager.Name, manager.Email, manager.Phone, manager.DepartmentID, manager.PasswordHash}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	query := `
		INSERT INTO employees (sin, name, email, phone, department_id, msin, pay_rate, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{employee.SIN, employee.Name, employee.Email, employee.Phone, employee.DepartmentID, employee.ManagerSIN, employee.PayRate, employee.PasswordHash}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) SetManagerOfDepartment(departmentID int64, managerSIN string) error {
	query := `
		UPDATE departments SET manager_sin = $1 WHERE id = $2
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, managerSIN, departmentID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateManagerPassword(sin string, passwordHash string) error {
	query := `
		UPDATE managers SET password_hash = $1 WHERE sin = $2
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, passwordHash, sin); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateEmployeePassword(sin string, passwordHash string) error {
	query := `
		UPDATE employees SET password_hash = $1 WHERE sin = $2
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, passwordHash, sin); err != nil {
		return err
	}

	return nil
}
