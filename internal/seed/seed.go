package seed

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/repository"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

var departmentNames = []string{
	"前台服务部", "仓储物流部", "客户支持部", "生产运营部", "市场拓展部",
}

var demoWeekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// SeedDemoData 生成演示用的部门、经理和员工，密码统一使用 password
// 每个员工附带工作日的空闲窗口和最近几周的排班确认，方便直接调试班次接口
func SeedDemoData(r *repository.Repository, departments, employeesPerDepartment int, password string) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for i := 0; i < departments; i++ {
		department := &domain.Department{
			Name: departmentNames[i%len(departmentNames)],
		}
		if err := r.CreateDepartment(department); err != nil {
			return fmt.Errorf("无法创建部门: %w", err)
		}

		managerName := utils.GenerateRandomChineseName()
		manager := &domain.Manager{
			SIN:          utils.GenerateSINFromChineseName(managerName),
			Name:         managerName,
			Email:        fmt.Sprintf("%s@example.com", utils.GenerateSINFromChineseName(managerName)),
			DepartmentID: department.ID,
			PasswordHash: string(passwordHash),
		}
		if err := r.CreateManager(manager); err != nil {
			return fmt.Errorf("无法创建经理: %w", err)
		}
		if err := r.SetManagerOfDepartment(department.ID, manager.SIN); err != nil {
			return err
		}

		slog.Info("已创建部门", "department", department.Name, "manager", manager.SIN)

		for j := 0; j < employeesPerDepartment; j++ {
			employeeName := utils.GenerateRandomChineseName()
			employee := &domain.Employee{
				SIN:          utils.GenerateSINFromChineseName(employeeName),
				Name:         employeeName,
				Email:        fmt.Sprintf("%s@example.com", utils.GenerateSINFromChineseName(employeeName)),
				DepartmentID: department.ID,
				ManagerSIN:   manager.SIN,
				PayRate:      float64(rand.Intn(30) + 20),
				PasswordHash: string(passwordHash),
			}
			if err := r.CreateEmployee(employee); err != nil {
				return fmt.Errorf("无法创建员工: %w", err)
			}

			// 工作日 9 点到 17/18 点的空闲窗口
			for _, weekday := range demoWeekdays {
				availability := &domain.Availability{
					EmployeeSIN: employee.SIN,
					Weekday:     weekday,
					Start:       9.0,
					End:         float64(17 + rand.Intn(2)),
				}
				if err := r.UpsertAvailability(availability); err != nil {
					return err
				}
			}

			// 确认最近四周的排班
			for week := int32(1); week <= 4; week++ {
				assignment := &domain.ScheduleAssignment{
					EmployeeSIN: employee.SIN,
					Week:        week,
					ManagerSIN:  manager.SIN,
				}
				if err := r.UpsertScheduleAssignment(assignment); err != nil {
					return err
				}
			}

			slog.Info("已创建员工", "employee", employee.SIN, "department", department.Name)
		}
	}

	return nil
}
