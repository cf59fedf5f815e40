package postgres

import (
	"context"
	"time"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/repository"
)

type notificationRepository struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (user_id, message, is_read, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, n.UserID, n.Message, n.IsRead, time.Now()).Scan(&n.ID)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Notification, error) {
	query := `SELECT id, user_id, message, is_read, created_on
	          FROM notifications WHERE user_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var createdOn time.Time
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &createdOn); err != nil {
			return nil, err
		}
		n.CreatedOn = createdOn.Format("2006-01-02 15:04:05")
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// MarkAsRead is scoped to the owning user so one user cannot touch
// another's notifications.
func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID int32) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundf("notification %d", id)
	}
	return nil
}
