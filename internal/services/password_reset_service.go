package services

import (
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"comictrack/internal/models"
	"comictrack/internal/repositories"
	"comictrack/internal/utils"
)

const resetTokenTTL = time.Minute

// VerifyResult is what token verification hands back to the API layer.
// An expired token is reported, not deleted — removal is the caller's
// explicit follow-up (RemoveToken).
type VerifyResult struct {
	Valid bool         `json:"valid"`
	User  *models.User `json:"user"`
}

type PasswordResetService interface {
	// SendResetToken generates a 6-digit code, stores it with a 1-minute
	// expiry and emails it to the user.
	SendResetToken(email string) error
	VerifyToken(code string) (*VerifyResult, error)
	RemoveToken(code string) error
	// ResetPassword consumes a valid code and sets the new password.
	ResetPassword(code, newPassword string) error
}

type passwordResetService struct {
	userRepo repositories.UserRepository
	repo     repositories.ResetTokenRepository
	emails   EmailService
	auth     AuthService

	now func() time.Time
}

func NewPasswordResetService(
	userRepo repositories.UserRepository,
	repo repositories.ResetTokenRepository,
	emails EmailService,
	auth AuthService,
) PasswordResetService {
	return &passwordResetService{
		userRepo: userRepo,
		repo:     repo,
		emails:   emails,
		auth:     auth,
		now:      time.Now,
	}
}

func (s *passwordResetService) SendResetToken(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrNotFound
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	code := utils.GenerateNumericCode(6)
	expiresAt := s.now().Add(resetTokenTTL)

	if _, err := s.repo.Create(user.ID, code, expiresAt); err != nil {
		log.Printf("[password-reset] token row create failed for userID=%d: %v", user.ID, err)
		return ErrInternal
	}

	// delivery failure never fails the flow
	if s.emails != nil {
		if err := s.emails.SendResetTokenEmail(user.Email, code); err != nil {
			log.Printf("[password-reset] failed to send email to %s: %v", user.Email, err)
		}
	}
	return nil
}

func (s *passwordResetService) VerifyToken(code string) (*VerifyResult, error) {
	rt, err := s.repo.GetByToken(strings.TrimSpace(code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(rt.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""

	return &VerifyResult{
		Valid: s.now().Before(rt.ExpiresAt),
		User:  user,
	}, nil
}

func (s *passwordResetService) RemoveToken(code string) error {
	return s.repo.DeleteByToken(strings.TrimSpace(code))
}

func (s *passwordResetService) ResetPassword(code, newPassword string) error {
	code = strings.TrimSpace(code)
	if strings.TrimSpace(newPassword) == "" {
		return ErrInvalidPassword
	}

	rt, err := s.repo.GetByToken(code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if !s.now().Before(rt.ExpiresAt) {
		// expired codes are pruned on the spot
		if err := s.repo.DeleteByToken(code); err != nil {
			log.Printf("[password-reset] failed to delete expired token id=%d: %v", rt.ID, err)
		}
		return ErrInvalidToken
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(rt.UserID, hash); err != nil {
		return err
	}
	// a consumed code must not be replayable
	return s.repo.DeleteByToken(code)
}
