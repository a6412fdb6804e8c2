package domain

import "errors"

// 业务上可预期的错误，handler 用 errors.Is 把它们映射到各自的 HTTP 状态码
// 这里的文案会原样返回给调用方
var (
	ErrNotScheduled         = errors.New("not scheduled for this week")
	ErrExceedsAvailability  = errors.New("exceeds availability")
	ErrShiftNotFound        = errors.New("shift not found")
	ErrWrongDepartment      = errors.New("employee belongs to a different department")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrManagerNotFound      = errors.New("manager not found")
	ErrRequestNotFound      = errors.New("request not found or not authorized to update")
	ErrNotificationNotFound = errors.New("notification not found")
)
