package repositories

import (
	"database/sql"

	"comictrack/internal/models"
)

type GenreRepository interface {
	Create(genre *models.Genre) error
	GetByID(id int) (*models.Genre, error)
	List() ([]*models.Genre, error)
	Update(genre *models.Genre) error
	Delete(id int) error
}

type genreRepository struct {
	DB *sql.DB
}

func NewGenreRepository(db *sql.DB) GenreRepository {
	return &genreRepository{DB: db}
}

func (r *genreRepository) Create(genre *models.Genre) error {
	const q = `INSERT INTO genres (name) VALUES ($1) RETURNING id`
	return r.DB.QueryRow(q, genre.Name).Scan(&genre.ID)
}

func (r *genreRepository) GetByID(id int) (*models.Genre, error) {
	const q = `SELECT id, name FROM genres WHERE id = $1`
	g := &models.Genre{}
	if err := r.DB.QueryRow(q, id).Scan(&g.ID, &g.Name); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *genreRepository) List() ([]*models.Genre, error) {
	const q = `SELECT id, name FROM genres ORDER BY id`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []*models.Genre
	for rows.Next() {
		g := &models.Genre{}
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *genreRepository) Update(genre *models.Genre) error {
	const q = `UPDATE genres SET name = $1 WHERE id = $2`
	res, err := r.DB.Exec(q, genre.Name, genre.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *genreRepository) Delete(id int) error {
	const q = `DELETE FROM genres WHERE id = $1`
	_, err := r.DB.Exec(q, id)
	return err
}
