package repositories

import (
	"database/sql"

	"comictrack/internal/models"
)

type FavoriteRepository interface {
	Add(userID, comicID int) error
	Remove(userID, comicID int) (int64, error)
	ListByUser(userID int) ([]*models.Comic, error)
}

type favoriteRepository struct {
	DB *sql.DB
}

func NewFavoriteRepository(db *sql.DB) FavoriteRepository {
	return &favoriteRepository{DB: db}
}

func (r *favoriteRepository) Add(userID, comicID int) error {
	const q = `
		INSERT INTO favorites (user_id, comic_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, comic_id) DO NOTHING
	`
	_, err := r.DB.Exec(q, userID, comicID)
	return err
}

func (r *favoriteRepository) Remove(userID, comicID int) (int64, error) {
	const q = `DELETE FROM favorites WHERE user_id = $1 AND comic_id = $2`
	res, err := r.DB.Exec(q, userID, comicID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *favoriteRepository) ListByUser(userID int) ([]*models.Comic, error) {
	const q = `
		SELECT c.id, c.title, c.chapter, c.update_day, c.cover, c.user_id, c.created_at
		FROM comics c
		JOIN favorites f ON f.comic_id = c.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`
	rows, err := r.DB.Query(q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComics(rows)
}
