package domain

// 星期映射表固定为 1=Monday ... 7=Sunday
var weekdayNames = []string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
	7: "Sunday",
}

// WeekdayName 把班次中的 day 字段映射为星期名，day 超出 1~7 时返回 false
func WeekdayName(day int32) (string, bool) {
	if day < 1 || day > 7 {
		return "", false
	}
	return weekdayNames[day], true
}

func IsWeekdayName(name string) bool {
	for _, weekday := range weekdayNames[1:] {
		if weekday == name {
			return true
		}
	}
	return false
}

// Availability 的时间用十进制小时表示，例如 9.5 表示 09:30
// 每个 (员工, 星期) 至多一行，重复提交按最后一次覆盖
type Availability struct {
	EmployeeSIN string  `json:"esin"`
	Weekday     string  `json:"weekday"`
	Start       float64 `json:"empStart"`
	End         float64 `json:"empEnd"`
}
