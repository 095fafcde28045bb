package repositories

import (
	"database/sql"
	"time"

	"comictrack/internal/models"
)

type ResetTokenRepository interface {
	Create(userID int, token string, expiresAt time.Time) (*models.ResetToken, error)
	GetByToken(token string) (*models.ResetToken, error)
	DeleteByToken(token string) error
}

type resetTokenRepository struct {
	DB *sql.DB
}

func NewResetTokenRepository(db *sql.DB) ResetTokenRepository {
	return &resetTokenRepository{DB: db}
}

func (r *resetTokenRepository) Create(userID int, token string, expiresAt time.Time) (*models.ResetToken, error) {
	const q = `
		INSERT INTO reset_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	rt := &models.ResetToken{UserID: userID, Token: token, ExpiresAt: expiresAt}
	if err := r.DB.QueryRow(q, userID, token, expiresAt).Scan(&rt.ID, &rt.CreatedAt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *resetTokenRepository) GetByToken(token string) (*models.ResetToken, error) {
	// expired rows are not pruned here; expiry is judged by the caller
	const q = `
		SELECT id, user_id, token, expires_at, created_at
		FROM reset_tokens
		WHERE token = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	rt := &models.ResetToken{}
	if err := r.DB.QueryRow(q, token).Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.CreatedAt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *resetTokenRepository) DeleteByToken(token string) error {
	const q = `DELETE FROM reset_tokens WHERE token = $1`
	_, err := r.DB.Exec(q, token)
	return err
}
