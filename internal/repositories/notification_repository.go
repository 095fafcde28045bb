package repositories

import (
	"context"
	"database/sql"
	"time"

	"comictrack/internal/models"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error

	// ExistsForDate reports whether the user was already notified about the
	// comic on the given calendar day. There is no unique constraint backing
	// this check, so concurrent sweeps can still race past it.
	ExistsForDate(ctx context.Context, userID, comicID int, day time.Time) (bool, error)

	ListByUser(userID, limit, offset int, query string) ([]*models.Notification, error)
	CountByUser(userID int, query string) (int, error)
	MarkRead(notificationID, userID int) (*models.Notification, error)
	MarkAllRead(userID int) (int64, error)
}

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepository{DB: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	const q = `
		INSERT INTO notifications (user_id, comic_id, title, body, read)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id, read, created_at
	`
	return r.DB.QueryRowContext(ctx, q, n.UserID, n.ComicID, n.Title, n.Body).
		Scan(&n.ID, &n.Read, &n.CreatedAt)
}

func (r *notificationRepository) ExistsForDate(ctx context.Context, userID, comicID int, day time.Time) (bool, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE user_id = $1 AND comic_id = $2
			  AND created_at >= $3 AND created_at < $4
		)
	`
	var exists bool
	err := r.DB.QueryRowContext(ctx, q, userID, comicID, start, end).Scan(&exists)
	return exists, err
}

// ListByUser returns the user's notifications newest first, optionally
// filtered by a case-insensitive title substring.
func (r *notificationRepository) ListByUser(userID, limit, offset int, query string) ([]*models.Notification, error) {
	const q = `
		SELECT id, user_id, comic_id, title, body, read, created_at
		FROM notifications
		WHERE user_id = $1
		  AND ($2 = '' OR title ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.DB.Query(q, userID, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.ComicID, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notificationRepository) CountByUser(userID int, query string) (int, error) {
	const q = `
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1
		  AND ($2 = '' OR title ILIKE '%' || $2 || '%')
	`
	var n int
	err := r.DB.QueryRow(q, userID, query).Scan(&n)
	return n, err
}

// MarkRead scopes the update to the owning user. A wrong id and a wrong
// owner both come back as sql.ErrNoRows, indistinguishable to the caller.
func (r *notificationRepository) MarkRead(notificationID, userID int) (*models.Notification, error) {
	const q = `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, comic_id, title, body, read, created_at
	`
	n := &models.Notification{}
	err := r.DB.QueryRow(q, notificationID, userID).
		Scan(&n.ID, &n.UserID, &n.ComicID, &n.Title, &n.Body, &n.Read, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *notificationRepository) MarkAllRead(userID int) (int64, error) {
	const q = `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`
	res, err := r.DB.Exec(q, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
