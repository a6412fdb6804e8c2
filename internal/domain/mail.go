package domain

// MailMessage 是投递到消息队列中的邮件事件，由 notifier 消费
type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type RequestCreatedMailData struct {
	ManagerName string `json:"managerName"`
	EmployeeSIN string `json:"employeeSin"`
	RequestType string `json:"requestType"`
	Week        int32  `json:"week"`
	Day         int32  `json:"day"`
}

type RequestDecidedMailData struct {
	EmployeeName string `json:"employeeName"`
	RequestType  string `json:"requestType"`
	Approved     bool   `json:"approved"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"` // 邮件中显示的过期时间以分钟为单位
}
