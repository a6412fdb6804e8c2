package domain

import (
	"fmt"
	"time"
)

// Notification 除 isRead 以外是只追加的
type Notification struct {
	ID             int64     `json:"id"`
	DestinationSIN string    `json:"destinationSin"`
	RequestID      int64     `json:"requestId"`
	Message        string    `json:"message"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

// 下面的文案是对外契约的一部分，前端会直接解析这些字符串，不要随意改动

func NewRequestMessage(employeeSIN, requestType string) string {
	return fmt.Sprintf("New request from employee %s for %s", employeeSIN, requestType)
}

func RequestDecisionMessage(requestType string, authorized bool) string {
	if authorized {
		return fmt.Sprintf("Your request for %s has been approved", requestType)
	}
	return fmt.Sprintf("Your request for %s has been rejected", requestType)
}
