package repositories

import (
	"context"
	"database/sql"

	"comictrack/internal/models"
)

type ComicRepository interface {
	Create(comic *models.Comic) error
	GetByID(id int) (*models.Comic, error)
	Update(comic *models.Comic) error
	Delete(id, userID int) (int64, error)
	ListByUser(userID, limit, offset int) ([]*models.Comic, error)
	CountByUser(userID int) (int, error)

	// SetGenres replaces the comic's genre links with the given set.
	SetGenres(comicID int, genreIDs []int) error
	GenresFor(comicID int) ([]*models.Genre, error)

	// FindByUpdateDay returns all comics expected to update on the given
	// weekday index (0=Sunday..6=Saturday). Used by the daily sweep.
	FindByUpdateDay(ctx context.Context, weekday int) ([]*models.Comic, error)

	// UsersForComic resolves the users associated with a comic. Today that
	// is the owning user only; a subscription table would widen this query.
	UsersForComic(ctx context.Context, comicID int) ([]*models.User, error)
}

type comicRepository struct {
	DB *sql.DB
}

func NewComicRepository(db *sql.DB) ComicRepository {
	return &comicRepository{DB: db}
}

func (r *comicRepository) Create(comic *models.Comic) error {
	const q = `
		INSERT INTO comics (title, chapter, update_day, cover, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q,
		comic.Title,
		comic.Chapter,
		comic.UpdateDay,
		comic.Cover,
		comic.UserID,
	).Scan(&comic.ID, &comic.CreatedAt)
}

func (r *comicRepository) GetByID(id int) (*models.Comic, error) {
	const q = `
		SELECT id, title, chapter, update_day, cover, user_id, created_at
		FROM comics
		WHERE id = $1
	`
	c := &models.Comic{}
	var cover sql.NullString
	err := r.DB.QueryRow(q, id).Scan(&c.ID, &c.Title, &c.Chapter, &c.UpdateDay, &cover, &c.UserID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if cover.Valid {
		c.Cover = cover.String
	}
	return c, nil
}

func (r *comicRepository) Update(comic *models.Comic) error {
	const q = `
		UPDATE comics
		SET title = $1, chapter = $2, update_day = $3, cover = $4
		WHERE id = $5 AND user_id = $6
	`
	res, err := r.DB.Exec(q, comic.Title, comic.Chapter, comic.UpdateDay, comic.Cover, comic.ID, comic.UserID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *comicRepository) Delete(id, userID int) (int64, error) {
	const q = `DELETE FROM comics WHERE id = $1 AND user_id = $2`
	res, err := r.DB.Exec(q, id, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *comicRepository) ListByUser(userID, limit, offset int) ([]*models.Comic, error) {
	const q = `
		SELECT id, title, chapter, update_day, cover, user_id, created_at
		FROM comics
		WHERE user_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.Query(q, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComics(rows)
}

func (r *comicRepository) CountByUser(userID int) (int, error) {
	const q = `SELECT COUNT(*) FROM comics WHERE user_id = $1`
	var n int
	err := r.DB.QueryRow(q, userID).Scan(&n)
	return n, err
}

func (r *comicRepository) SetGenres(comicID int, genreIDs []int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM comic_genres WHERE comic_id = $1`, comicID); err != nil {
		return err
	}
	const ins = `INSERT INTO comic_genres (comic_id, genre_id) VALUES ($1, $2)`
	for _, gid := range genreIDs {
		if _, err := tx.Exec(ins, comicID, gid); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *comicRepository) GenresFor(comicID int) ([]*models.Genre, error) {
	const q = `
		SELECT g.id, g.name
		FROM genres g
		JOIN comic_genres cg ON cg.genre_id = g.id
		WHERE cg.comic_id = $1
		ORDER BY g.id
	`
	rows, err := r.DB.Query(q, comicID)
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

func (r *comicRepository) FindByUpdateDay(ctx context.Context, weekday int) ([]*models.Comic, error) {
	const q = `
		SELECT id, title, chapter, update_day, cover, user_id, created_at
		FROM comics
		WHERE update_day = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, q, weekday)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComics(rows)
}

func (r *comicRepository) UsersForComic(ctx context.Context, comicID int) ([]*models.User, error) {
	const q = `
		SELECT u.id, u.name, u.email, u.password_hash, u.profile_pic, u.telegram_chat_id, u.created_at
		FROM users u
		JOIN comics c ON c.user_id = u.id
		WHERE c.id = $1
	`
	rows, err := r.DB.QueryContext(ctx, q, comicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		var (
			pic      sql.NullString
			tgChatID sql.NullInt64
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &pic, &tgChatID, &u.CreatedAt); err != nil {
			return nil, err
		}
		if pic.Valid {
			u.ProfilePic = pic.String
		}
		if tgChatID.Valid {
			id := tgChatID.Int64
			u.TelegramChatID = &id
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func collectComics(rows *sql.Rows) ([]*models.Comic, error) {
	var comics []*models.Comic
	for rows.Next() {
		c := &models.Comic{}
		var cover sql.NullString
		if err := rows.Scan(&c.ID, &c.Title, &c.Chapter, &c.UpdateDay, &cover, &c.UserID, &c.CreatedAt); err != nil {
			return nil, err
		}
		if cover.Valid {
			c.Cover = cover.String
		}
		comics = append(comics, c)
	}
	return comics, rows.Err()
}
