package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
)

// AddRequest 员工发起一次请假/调班等请求
// 目标经理在此刻从员工的 msin 解析并固化到请求记录里
func (h *Handler) AddRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Week *int32 `json:"week" validate:"required,min=1,max=52"`
		Day  *int32 `json:"day" validate:"required,min=1,max=7"`
		Type string `json:"type" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := r.Context().Value(EmployeeCtxKey).(*domain.Employee)

	manager, err := h.repository.GetManagerBySIN(employee.ManagerSIN)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusNotFound, domain.ErrManagerNotFound.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	request := &domain.Request{
		EmployeeSIN: employee.SIN,
		ManagerSIN:  manager.SIN,
		Week:        *req.Week,
		Day:         *req.Day,
		Type:        req.Type,
	}

	if _, err := h.repository.CreateRequest(request); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 站内通知已随事务落库，邮件走消息队列异步送达
	mailMessage := domain.MailMessage{
		Type: "request_created",
		To:   manager.Email,
		Data: domain.RequestCreatedMailData{
			ManagerName: manager.Name,
			EmployeeSIN: employee.SIN,
			RequestType: request.Type,
			Week:        request.Week,
			Day:         request.Day,
		},
	}
	if err := h.publishMailMessage(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusCreated, "request created", request)
}

// AuthorizeRequest 经理裁决一个请求，approve 或 reject 均为终态
func (h *Handler) AuthorizeRequest(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	requestID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || requestID <= 0 {
		h.badRequest(w, r, errors.New("request id must be a positive integer"))
		return
	}

	var req struct {
		Authorized *bool `json:"authorized" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	manager := r.Context().Value(ManagerCtxKey).(*domain.Manager)

	request, err := h.repository.AuthorizeRequest(manager.SIN, requestID, *req.Authorized)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound):
			h.errorResponse(w, r, http.StatusNotFound, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	employee, err := h.repository.GetEmployeeBySIN(request.EmployeeSIN)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	mailMessage := domain.MailMessage{
		Type: "request_decided",
		To:   employee.Email,
		Data: domain.RequestDecidedMailData{
			EmployeeName: employee.Name,
			RequestType:  request.Type,
			Approved:     *req.Authorized,
		},
	}
	if err := h.publishMailMessage(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "request updated", request)
}

// ListMyNotifications 员工和经理共用，按创建时间倒序
func (h *Handler) ListMyNotifications(w http.ResponseWriter, r *http.Request) {
	sub := r.Context().Value(SubCtxKey).(string)

	notifications, err := h.repository.ListNotificationsForSubject(sub)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "notifications fetched", notifications)
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	notificationID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || notificationID <= 0 {
		h.badRequest(w, r, errors.New("notification id must be a positive integer"))
		return
	}

	if err := h.repository.MarkNotificationRead(notificationID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotificationNotFound):
			h.errorResponse(w, r, http.StatusNotFound, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, "notification marked as read", nil)
}
