package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
)

// AssignSchedule 经理确认某个员工在某一周排班，重复调用覆盖确认人
func (h *Handler) AssignSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeSIN string `json:"employeeSin" validate:"required"`
		Week        *int32 `json:"week" validate:"required,min=1,max=52"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 员工必须存在于身份目录中
	if _, err := h.repository.GetEmployeeBySIN(req.EmployeeSIN); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusNotFound, domain.ErrEmployeeNotFound.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	manager := r.Context().Value(ManagerCtxKey).(*domain.Manager)

	assignment := &domain.ScheduleAssignment{
		EmployeeSIN: req.EmployeeSIN,
		Week:        *req.Week,
		ManagerSIN:  manager.SIN,
	}

	if err := h.repository.UpsertScheduleAssignment(assignment); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "schedule assigned", assignment)
}
