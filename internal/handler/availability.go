package handler

import (
	"errors"
	"net/http"

	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/repository"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/utils"
)

// SubmitAvailability 员工提交某个星期的空闲窗口，重复提交覆盖原有窗口
func (h *Handler) SubmitAvailability(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Weekday  string   `json:"weekday" validate:"required"`
		EmpStart *float64 `json:"emp_start" validate:"required"`
		EmpEnd   *float64 `json:"emp_end" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !domain.IsWeekdayName(req.Weekday) {
		h.badRequest(w, r, errors.New("weekday must be a calendar day name, Monday through Sunday"))
		return
	}
	if err := utils.ValidateAvailabilityWindow(*req.EmpStart, *req.EmpEnd); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := r.Context().Value(EmployeeCtxKey).(*domain.Employee)

	availability := &domain.Availability{
		EmployeeSIN: employee.SIN,
		Weekday:     req.Weekday,
		Start:       *req.EmpStart,
		End:         *req.EmpEnd,
	}

	if err := h.repository.UpsertAvailability(availability); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "availability saved", availability)
}

// ListAvailability 仅限经理，支持按星期和员工 SIN 过滤
func (h *Handler) ListAvailability(w http.ResponseWriter, r *http.Request) {
	filter := repository.AvailabilityFilter{}

	if weekday := r.URL.Query().Get("weekday"); weekday != "" {
		if !domain.IsWeekdayName(weekday) {
			h.badRequest(w, r, errors.New("weekday must be a calendar day name, Monday through Sunday"))
			return
		}
		filter.Weekday = &weekday
	}
	if sin := r.URL.Query().Get("sin"); sin != "" {
		filter.EmployeeSIN = &sin
	}

	records, err := h.repository.ListAvailability(filter)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "availability fetched", records)
}
