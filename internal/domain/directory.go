package domain

type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Department 只拥有一个负责的经理，经理和部门是一一对应的
type Department struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ManagerSIN string `json:"managerSin"`
}

type Manager struct {
	SIN          string `json:"sin"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	DepartmentID int64  `json:"departmentId"`
	PasswordHash string `json:"-"`
}

// Employee 通过 msin 关联到自己的经理，所有跨实体关系都只存 SIN，不做对象嵌套
type Employee struct {
	SIN          string  `json:"sin"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	DepartmentID int64   `json:"departmentId"`
	ManagerSIN   string  `json:"msin"`
	PayRate      float64 `json:"payRate"`
	PasswordHash string  `json:"-"`
}
