package repository

import (
	"database/sql"
	"errors"

	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
)

// CreateRequest 在同一事务里写入请求和发给经理的通知
// 失败时两条记录都不会落库
func (r *Repository) CreateRequest(request *domain.Request) (*domain.Notification, error) {
	ctx, cancel := r.transactionContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO requests (esin, msin, week, day, req_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, authorization_status, created_at
	`
	args := []any{request.EmployeeSIN, request.ManagerSIN, request.Week, request.Day, request.Type}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&request.ID, &request.Authorization, &request.CreatedAt); err != nil {
		return nil, err
	}

	notification := &domain.Notification{
		DestinationSIN: request.ManagerSIN,
		RequestID:      request.ID,
		Message:        domain.NewRequestMessage(request.EmployeeSIN, request.Type),
	}

	query = `
		INSERT INTO notifications (destination_sin, request_id, message)
		VALUES ($1, $2, $3)
		RETURNING id, is_read, created_at
	`
	args = []any{notification.DestinationSIN, notification.RequestID, notification.Message}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&notification.ID, &notification.IsRead, &notification.CreatedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return notification, nil
}

// AuthorizeRequest 只会裁决 (id, msin) 匹配且仍处于 pending 的请求
// 找不到匹配行时不区分“请求不存在”“不是目标经理”“已经裁决过”，统一返回 ErrRequestNotFound
func (r *Repository) AuthorizeRequest(managerSIN string, requestID int64, authorized bool) (*domain.Request, error) {
	ctx, cancel := r.transactionContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	decision := domain.RequestRejected
	if authorized {
		decision = domain.RequestApproved
	}

	request := &domain.Request{
		ID:            requestID,
		ManagerSIN:    managerSIN,
		Authorization: decision,
	}

	query := `
		UPDATE requests SET authorization_status = $1
		WHERE id = $2 AND msin = $3 AND authorization_status = 'pending'
		RETURNING esin, week, day, req_type, created_at
	`
	err = tx.QueryRowContext(ctx, query, decision, requestID, managerSIN).Scan(&request.EmployeeSIN, &request.Week, &request.Day, &request.Type, &request.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, domain.ErrRequestNotFound
	case err != nil:
		return nil, err
	}

	query = `
		INSERT INTO notifications (destination_sin, request_id, message)
		VALUES ($1, $2, $3)
	`
	args := []any{request.EmployeeSIN, request.ID, domain.RequestDecisionMessage(request.Type, authorized)}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return request, nil
}
