package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
)

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day    *int32   `json:"day" validate:"required,min=1,max=7"`
		Week   *int32   `json:"week" validate:"required,min=1,max=52"`
		Month  *int32   `json:"month" validate:"required,min=1,max=12"`
		ESIN   string   `json:"esin" validate:"required"`
		Length *float64 `json:"length" validate:"required,gt=0"`
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

	shift := &domain.Shift{
		EmployeeSIN: req.ESIN,
		Day:         *req.Day,
		Week:        *req.Week,
		Month:       *req.Month,
		ManagerSIN:  manager.SIN,
		Length:      *req.Length,
	}

	if err := h.repository.CreateShift(shift); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.Is(err, domain.ErrNotScheduled), errors.Is(err, domain.ErrExceedsAvailability):
			h.errorResponse(w, r, http.StatusBadRequest, err.Error())
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shifts_pkey":
				h.errorResponse(w, r, http.StatusConflict, "shift already exists for this employee, day, week and month")
			case "shifts_esin_fkey":
				h.errorResponse(w, r, http.StatusNotFound, domain.ErrEmployeeNotFound.Error())
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusCreated, "shift created", shift)
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day    *int32   `json:"day" validate:"required,min=1,max=7"`
		Week   *int32   `json:"week" validate:"required,min=1,max=52"`
		Month  *int32   `json:"month" validate:"required,min=1,max=12"`
		ESIN   string   `json:"esin" validate:"required"`
		Length *float64 `json:"length" validate:"required,gt=0"`
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

	shift := &domain.Shift{
		EmployeeSIN: req.ESIN,
		Day:         *req.Day,
		Week:        *req.Week,
		Month:       *req.Month,
		Length:      *req.Length,
	}

	if err := h.repository.UpdateShift(manager, shift); err != nil {
		switch {
		case errors.Is(err, domain.ErrShiftNotFound), errors.Is(err, domain.ErrEmployeeNotFound):
			h.errorResponse(w, r, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrWrongDepartment):
			h.errorResponse(w, r, http.StatusForbidden, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, "shift updated", shift)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day   *int32 `json:"day" validate:"required,min=1,max=7"`
		Week  *int32 `json:"week" validate:"required,min=1,max=52"`
		Month *int32 `json:"month" validate:"required,min=1,max=12"`
		ESIN  string `json:"esin" validate:"required"`
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

	if err := h.repository.DeleteShift(manager, req.ESIN, *req.Day, *req.Week, *req.Month); err != nil {
		switch {
		case errors.Is(err, domain.ErrShiftNotFound), errors.Is(err, domain.ErrEmployeeNotFound):
			h.errorResponse(w, r, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrWrongDepartment):
			h.errorResponse(w, r, http.StatusForbidden, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, "shift deleted", nil)
}

// ListMyShifts 返回当前员工本月的班次
func (h *Handler) ListMyShifts(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtxKey).(*domain.Employee)

	month := int32(time.Now().Month())
	shifts, err := h.repository.ListShiftsForEmployee(employee.SIN, month)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "shifts fetched", shifts)
}

func (h *Handler) ListDepartmentShifts(w http.ResponseWriter, r *http.Request) {
	manager := r.Context().Value(ManagerCtxKey).(*domain.Manager)

	var week, month *int32
	if weekParam := r.URL.Query().Get("week"); weekParam != "" {
		value, err := strconv.ParseInt(weekParam, 10, 32)
		if err != nil || value < 1 || value > 52 {
			h.badRequest(w, r, errors.New("week must be between 1 and 52"))
			return
		}
		v := int32(value)
		week = &v
	}
	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		value, err := strconv.ParseInt(monthParam, 10, 32)
		if err != nil || value < 1 || value > 12 {
			h.badRequest(w, r, errors.New("month must be between 1 and 12"))
			return
		}
		v := int32(value)
		month = &v
	}

	shifts, err := h.repository.ListShiftsForDepartment(manager.DepartmentID, week, month)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "department shifts fetched", map[string]any{
		"shifts": shifts,
	})
}
