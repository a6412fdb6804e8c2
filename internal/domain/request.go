package domain

import "time"

type RequestAuthorization string

const (
	RequestPending  RequestAuthorization = "pending"
	RequestApproved RequestAuthorization = "approved"
	RequestRejected RequestAuthorization = "rejected"
)

// Request 由员工发起，目标经理在创建时从员工当前的 msin 解析并固化
// pending -> approved / rejected 均为终态，不允许再次裁决
type Request struct {
	ID            int64                `json:"id"`
	EmployeeSIN   string               `json:"esin"`
	ManagerSIN    string               `json:"msin"`
	Week          int32                `json:"week"`
	Day           int32                `json:"day"`
	Type          string               `json:"type"`
	Authorization RequestAuthorization `json:"authorization"`
	CreatedAt     time.Time            `json:"createdAt"`
}
