package repositories

import (
	"database/sql"

	"comictrack/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdatePassword(userID int, passwordHash string) error
	Delete(id int) error
	List(limit, offset int) ([]*models.User, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (name, email, password_hash, profile_pic, telegram_chat_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.ProfilePic,
		user.TelegramChatID,
	).Scan(&user.ID, &user.CreatedAt)
}

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var (
		pic      sql.NullString
		tgChatID sql.NullInt64
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &pic, &tgChatID, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	if pic.Valid {
		u.ProfilePic = pic.String
	}
	if tgChatID.Valid {
		id := tgChatID.Int64
		u.TelegramChatID = &id
	}
	return u, nil
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, profile_pic, telegram_chat_id, created_at
		FROM users
		WHERE id = $1
	`
	return scanUser(r.DB.QueryRow(q, id))
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, profile_pic, telegram_chat_id, created_at
		FROM users
		WHERE email = $1
	`
	return scanUser(r.DB.QueryRow(q, email))
}

func (r *userRepository) Update(user *models.User) error {
	const q = `
		UPDATE users
		SET name = $1, profile_pic = $2, telegram_chat_id = $3
		WHERE id = $4
	`
	_, err := r.DB.Exec(q, user.Name, user.ProfilePic, user.TelegramChatID, user.ID)
	return err
}

func (r *userRepository) UpdatePassword(userID int, passwordHash string) error {
	const q = `UPDATE users SET password_hash = $1 WHERE id = $2`
	res, err := r.DB.Exec(q, passwordHash, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *userRepository) Delete(id int) error {
	const q = `DELETE FROM users WHERE id = $1`
	_, err := r.DB.Exec(q, id)
	return err
}

func (r *userRepository) List(limit, offset int) ([]*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, profile_pic, telegram_chat_id, created_at
		FROM users
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.Query(q, limit, offset)
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
