package repository

import (
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
)

func (r *Repository) ListNotificationsForSubject(sin string) ([]*domain.Notification, error) {
	query := `
		SELECT id, destination_sin, request_id, message, is_read, created_at
		FROM notifications
		WHERE destination_sin = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, sin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		notification := &domain.Notification{}
		dst := []any{&notification.ID, &notification.DestinationSIN, &notification.RequestID, &notification.Message, &notification.IsRead, &notification.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkNotificationRead 只翻转仍未读的通知
// 已读和不存在都算没有匹配到行，对调用方不做区分
func (r *Repository) MarkNotificationRead(id int64) error {
	query := `
		UPDATE notifications SET is_read = TRUE
		WHERE id = $1 AND is_read = FALSE
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotificationNotFound
	}

	return nil
}
