package domain

// Shift 没有自己的开始时间，约定从当天空闲窗口的起点开工
// (esin, day, week, month) 是唯一键，长度以小时为单位
type Shift struct {
	EmployeeSIN string  `json:"esin"`
	Day         int32   `json:"day"`
	Week        int32   `json:"week"`
	Month       int32   `json:"month"`
	ManagerSIN  string  `json:"msin"`
	Length      float64 `json:"length"`
}

// DepartmentShift 是部门视图下的班次，附带员工姓名方便前端直接展示
type DepartmentShift struct {
	Shift
	EmployeeName string `json:"employeeName"`
}
