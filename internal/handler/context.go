package handler

type ContextKey string

var (
	RoleCtxKey     ContextKey = "role"
	SubCtxKey      ContextKey = "sub"
	ManagerCtxKey  ContextKey = "manager"
	EmployeeCtxKey ContextKey = "employee"
)
