package services

import (
	"context"
	"database/sql"
	"time"

	"comictrack/internal/models"
)

// Hand-rolled mocks for the repository and gateway interfaces. Each method
// delegates to an optional func field; unset fields fall back to a neutral
// default so tests only wire what they care about.

type mockUserRepository struct {
	CreateFunc         func(user *models.User) error
	GetByIDFunc        func(id int) (*models.User, error)
	GetByEmailFunc     func(email string) (*models.User, error)
	UpdateFunc         func(user *models.User) error
	UpdatePasswordFunc func(userID int, passwordHash string) error
	DeleteFunc         func(id int) error
	ListFunc           func(limit, offset int) ([]*models.User, error)
}

func (m *mockUserRepository) Create(user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) GetByID(id int) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepository) GetByEmail(email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(email)
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepository) Update(user *models.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(user)
	}
	return nil
}

func (m *mockUserRepository) UpdatePassword(userID int, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(userID, passwordHash)
	}
	return nil
}

func (m *mockUserRepository) Delete(id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

func (m *mockUserRepository) List(limit, offset int) ([]*models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(limit, offset)
	}
	return nil, nil
}

type mockResetTokenRepository struct {
	CreateFunc        func(userID int, token string, expiresAt time.Time) (*models.ResetToken, error)
	GetByTokenFunc    func(token string) (*models.ResetToken, error)
	DeleteByTokenFunc func(token string) error
}

func (m *mockResetTokenRepository) Create(userID int, token string, expiresAt time.Time) (*models.ResetToken, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(userID, token, expiresAt)
	}
	return &models.ResetToken{ID: 1, UserID: userID, Token: token, ExpiresAt: expiresAt}, nil
}

func (m *mockResetTokenRepository) GetByToken(token string) (*models.ResetToken, error) {
	if m.GetByTokenFunc != nil {
		return m.GetByTokenFunc(token)
	}
	return nil, sql.ErrNoRows
}

func (m *mockResetTokenRepository) DeleteByToken(token string) error {
	if m.DeleteByTokenFunc != nil {
		return m.DeleteByTokenFunc(token)
	}
	return nil
}

type mockEmailService struct {
	SendWelcomeEmailFunc    func(email, name string) error
	SendResetTokenEmailFunc func(email, token string) error
}

func (m *mockEmailService) SendWelcomeEmail(email, name string) error {
	if m.SendWelcomeEmailFunc != nil {
		return m.SendWelcomeEmailFunc(email, name)
	}
	return nil
}

func (m *mockEmailService) SendResetTokenEmail(email, token string) error {
	if m.SendResetTokenEmailFunc != nil {
		return m.SendResetTokenEmailFunc(email, token)
	}
	return nil
}

type mockComicRepository struct {
	CreateFunc          func(comic *models.Comic) error
	GetByIDFunc         func(id int) (*models.Comic, error)
	UpdateFunc          func(comic *models.Comic) error
	DeleteFunc          func(id, userID int) (int64, error)
	ListByUserFunc      func(userID, limit, offset int) ([]*models.Comic, error)
	CountByUserFunc     func(userID int) (int, error)
	SetGenresFunc       func(comicID int, genreIDs []int) error
	GenresForFunc       func(comicID int) ([]*models.Genre, error)
	FindByUpdateDayFunc func(ctx context.Context, weekday int) ([]*models.Comic, error)
	UsersForComicFunc   func(ctx context.Context, comicID int) ([]*models.User, error)
}

func (m *mockComicRepository) Create(comic *models.Comic) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(comic)
	}
	comic.ID = 1
	return nil
}

func (m *mockComicRepository) GetByID(id int) (*models.Comic, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, sql.ErrNoRows
}

func (m *mockComicRepository) Update(comic *models.Comic) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(comic)
	}
	return nil
}

func (m *mockComicRepository) Delete(id, userID int) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id, userID)
	}
	return 1, nil
}

func (m *mockComicRepository) ListByUser(userID, limit, offset int) ([]*models.Comic, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(userID, limit, offset)
	}
	return nil, nil
}

func (m *mockComicRepository) CountByUser(userID int) (int, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(userID)
	}
	return 0, nil
}

func (m *mockComicRepository) SetGenres(comicID int, genreIDs []int) error {
	if m.SetGenresFunc != nil {
		return m.SetGenresFunc(comicID, genreIDs)
	}
	return nil
}

func (m *mockComicRepository) GenresFor(comicID int) ([]*models.Genre, error) {
	if m.GenresForFunc != nil {
		return m.GenresForFunc(comicID)
	}
	return nil, nil
}

func (m *mockComicRepository) FindByUpdateDay(ctx context.Context, weekday int) ([]*models.Comic, error) {
	if m.FindByUpdateDayFunc != nil {
		return m.FindByUpdateDayFunc(ctx, weekday)
	}
	return nil, nil
}

func (m *mockComicRepository) UsersForComic(ctx context.Context, comicID int) ([]*models.User, error) {
	if m.UsersForComicFunc != nil {
		return m.UsersForComicFunc(ctx, comicID)
	}
	return nil, nil
}

type mockNotificationRepository struct {
	CreateFunc        func(ctx context.Context, n *models.Notification) error
	ExistsForDateFunc func(ctx context.Context, userID, comicID int, day time.Time) (bool, error)
	ListByUserFunc    func(userID, limit, offset int, query string) ([]*models.Notification, error)
	CountByUserFunc   func(userID int, query string) (int, error)
	MarkReadFunc      func(notificationID, userID int) (*models.Notification, error)
	MarkAllReadFunc   func(userID int) (int64, error)
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	n.ID = 1
	return nil
}

func (m *mockNotificationRepository) ExistsForDate(ctx context.Context, userID, comicID int, day time.Time) (bool, error) {
	if m.ExistsForDateFunc != nil {
		return m.ExistsForDateFunc(ctx, userID, comicID, day)
	}
	return false, nil
}

func (m *mockNotificationRepository) ListByUser(userID, limit, offset int, query string) ([]*models.Notification, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(userID, limit, offset, query)
	}
	return nil, nil
}

func (m *mockNotificationRepository) CountByUser(userID int, query string) (int, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(userID, query)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkRead(notificationID, userID int) (*models.Notification, error) {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(notificationID, userID)
	}
	return nil, sql.ErrNoRows
}

func (m *mockNotificationRepository) MarkAllRead(userID int) (int64, error) {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(userID)
	}
	return 0, nil
}
