package utils

import (
	"errors"

	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
)

// ValidateAvailabilityWindow 检查空闲窗口的时间边界
// 时间用十进制小时表示，必须落在一天之内且起点严格早于终点
func ValidateAvailabilityWindow(start, end float64) error {
	if start < 0 || end > 24 {
		return errors.New("availability times must fall within 0 and 24 hours")
	}
	if start >= end {
		return errors.New("emp_start must be strictly less than emp_end")
	}
	return nil
}

// FitsAvailability 判断从空闲窗口起点开工、持续 length 小时是否仍在窗口内
// 班次约定锚定在窗口起点，所以只需要比较 start + length 和 end
func FitsAvailability(availability *domain.Availability, length float64) bool {
	return availability.Start+length <= availability.End
}
