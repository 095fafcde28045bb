package services

import (
	"database/sql"
	"errors"
	"log"
	"strings"

	"comictrack/internal/models"
	"comictrack/internal/repositories"

	"github.com/lib/pq"
)

type UserService interface {
	Register(name, email, password string) (*models.User, error)
	ValidateUser(email, password string) (*models.User, error)
	Login(email, password string) (*models.LoginResponse, error)
	ChangePassword(userID int, oldPassword, newPassword string) (*models.User, error)

	GetUserByID(id int) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id int) error
}

type userService struct {
	repo repositories.UserRepository
	auth AuthService
}

func NewUserService(repo repositories.UserRepository, auth AuthService) UserService {
	return &userService{repo: repo, auth: auth}
}

// Register hashes the password and creates the account. The lookup before
// the insert is not transactional; the unique index on users.email is the
// last line of defense against a concurrent duplicate, so the driver's
// unique-violation is mapped to ErrDuplicateEmail as well.
func (s *userService) Register(name, email, password string) (*models.User, error) {
	if strings.TrimSpace(password) == "" {
		return nil, ErrInvalidPassword
	}

	existing, err := s.repo.GetByEmail(email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.repo.Create(user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// ValidateUser returns the user with the hash stripped, or nil when the
// email is unknown or the password does not match. A bcrypt compare runs
// even for unknown emails to keep the two paths close in timing.
func (s *userService) ValidateUser(email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(email)

	// dummy hash so the compare always executes
	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil && user != nil {
		hash = user.PasswordHash
	}
	ok := s.auth.ComparePassword(password, hash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if user == nil || !ok {
		return nil, nil
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *userService) Login(email, password string) (*models.LoginResponse, error) {
	user, err := s.ValidateUser(email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.auth.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.auth.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("[user][login] userID=%d", user.ID)
	return &models.LoginResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *userService) ChangePassword(userID int, oldPassword, newPassword string) (*models.User, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !s.auth.ComparePassword(oldPassword, user.PasswordHash) {
		return nil, ErrInvalidPassword
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePassword(userID, hash); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *userService) GetUserByID(id int) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *userService) UpdateUser(user *models.User) error {
	return s.repo.Update(user)
}

func (s *userService) DeleteUser(id int) error {
	return s.repo.Delete(id)
}
