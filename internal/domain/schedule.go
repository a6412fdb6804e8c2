package domain

// ScheduleAssignment 表示某个员工在某一周被激活排班
// 这行记录的存在是该 (员工, 周) 上任何班次的前置条件
type ScheduleAssignment struct {
	EmployeeSIN string `json:"esin"`
	Week        int32  `json:"week"`
	ManagerSIN  string `json:"msin"`
}
