package services

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comictrack/internal/models"
)

func TestPasswordResetService_SendResetToken(t *testing.T) {
	auth := newTestAuth()
	alice := &models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}

	userRepo := func() *mockUserRepository {
		return &mockUserRepository{
			GetByEmailFunc: func(email string) (*models.User, error) {
				if email == alice.Email {
					u := *alice
					return &u, nil
				}
				return nil, sql.ErrNoRows
			},
			GetByIDFunc: func(id int) (*models.User, error) {
				if id == alice.ID {
					u := *alice
					return &u, nil
				}
				return nil, sql.ErrNoRows
			},
		}
	}

	t.Run("stores a 6 digit code expiring in one minute", func(t *testing.T) {
		var created *models.ResetToken
		tokens := &mockResetTokenRepository{
			CreateFunc: func(userID int, token string, expiresAt time.Time) (*models.ResetToken, error) {
				created = &models.ResetToken{ID: 1, UserID: userID, Token: token, ExpiresAt: expiresAt}
				return created, nil
			},
		}
		var emailed string
		emails := &mockEmailService{
			SendResetTokenEmailFunc: func(email, token string) error {
				emailed = token
				return nil
			},
		}

		svc := NewPasswordResetService(userRepo(), tokens, emails, auth).(*passwordResetService)
		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return base }

		require.NoError(t, svc.SendResetToken("alice@example.com"))
		require.NotNil(t, created)
		assert.Len(t, created.Token, 6)
		for _, r := range created.Token {
			assert.True(t, r >= '0' && r <= '9', "code must be decimal digits, got %q", created.Token)
		}
		assert.Equal(t, base.Add(time.Minute), created.ExpiresAt)
		assert.Equal(t, created.Token, emailed)
	})

	t.Run("token row creation failure pre-empts delivery", func(t *testing.T) {
		tokens := &mockResetTokenRepository{
			CreateFunc: func(userID int, token string, expiresAt time.Time) (*models.ResetToken, error) {
				return nil, errors.New("insert failed")
			},
		}
		emails := &mockEmailService{
			SendResetTokenEmailFunc: func(email, token string) error {
				t.Fatal("email must not be sent when the token row fails")
				return nil
			},
		}

		svc := NewPasswordResetService(userRepo(), tokens, emails, auth)
		assert.ErrorIs(t, svc.SendResetToken("alice@example.com"), ErrInternal)
	})

	t.Run("mail failure is swallowed", func(t *testing.T) {
		emails := &mockEmailService{
			SendResetTokenEmailFunc: func(email, token string) error {
				return errors.New("smtp down")
			},
		}

		svc := NewPasswordResetService(userRepo(), &mockResetTokenRepository{}, emails, auth)
		assert.NoError(t, svc.SendResetToken("alice@example.com"))
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewPasswordResetService(userRepo(), &mockResetTokenRepository{}, &mockEmailService{}, auth)
		assert.ErrorIs(t, svc.SendResetToken("nobody@example.com"), ErrNotFound)
	})
}

func TestPasswordResetService_VerifyToken(t *testing.T) {
	auth := newTestAuth()
	alice := &models.User{ID: 1, Name: "Alice", Email: "alice@example.com", PasswordHash: "secret-hash"}

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	userRepo := &mockUserRepository{
		GetByIDFunc: func(id int) (*models.User, error) {
			u := *alice
			return &u, nil
		},
	}
	tokens := &mockResetTokenRepository{
		GetByTokenFunc: func(token string) (*models.ResetToken, error) {
			if token == "123456" {
				return &models.ResetToken{ID: 1, UserID: 1, Token: token, ExpiresAt: base.Add(time.Minute)}, nil
			}
			return nil, sql.ErrNoRows
		},
	}

	svc := NewPasswordResetService(userRepo, tokens, &mockEmailService{}, auth).(*passwordResetService)

	t.Run("valid immediately after creation", func(t *testing.T) {
		svc.now = func() time.Time { return base.Add(time.Second) }

		result, err := svc.VerifyToken("123456")
		require.NoError(t, err)
		assert.True(t, result.Valid)
		require.NotNil(t, result.User)
		assert.Equal(t, 1, result.User.ID)
		assert.Empty(t, result.User.PasswordHash)
	})

	t.Run("invalid after 61 seconds", func(t *testing.T) {
		svc.now = func() time.Time { return base.Add(61 * time.Second) }

		result, err := svc.VerifyToken("123456")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		// the row is reported, not deleted — removal is the caller's call
		require.NotNil(t, result.User)
	})

	t.Run("unknown code fails with not found regardless of expiry", func(t *testing.T) {
		_, err := svc.VerifyToken("999999")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPasswordResetService_ResetPassword(t *testing.T) {
	auth := newTestAuth()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	newMocks := func(expiresAt time.Time) (*mockUserRepository, *mockResetTokenRepository, *[]string) {
		deleted := &[]string{}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(id int) (*models.User, error) {
				return &models.User{ID: id, Email: "alice@example.com"}, nil
			},
		}
		tokens := &mockResetTokenRepository{
			GetByTokenFunc: func(token string) (*models.ResetToken, error) {
				if token == "123456" {
					return &models.ResetToken{ID: 1, UserID: 1, Token: token, ExpiresAt: expiresAt}, nil
				}
				return nil, sql.ErrNoRows
			},
			DeleteByTokenFunc: func(token string) error {
				*deleted = append(*deleted, token)
				return nil
			},
		}
		return userRepo, tokens, deleted
	}

	t.Run("valid code sets new password and consumes the code", func(t *testing.T) {
		userRepo, tokens, deleted := newMocks(base.Add(time.Minute))
		var storedHash string
		userRepo.UpdatePasswordFunc = func(userID int, passwordHash string) error {
			storedHash = passwordHash
			return nil
		}

		svc := NewPasswordResetService(userRepo, tokens, &mockEmailService{}, auth).(*passwordResetService)
		svc.now = func() time.Time { return base.Add(time.Second) }

		require.NoError(t, svc.ResetPassword("123456", "newpassword"))
		assert.True(t, auth.ComparePassword("newpassword", storedHash))
		assert.Equal(t, []string{"123456"}, *deleted)
	})

	t.Run("expired code is rejected and pruned", func(t *testing.T) {
		userRepo, tokens, deleted := newMocks(base.Add(time.Minute))
		userRepo.UpdatePasswordFunc = func(userID int, passwordHash string) error {
			t.Fatal("password must not change on an expired code")
			return nil
		}

		svc := NewPasswordResetService(userRepo, tokens, &mockEmailService{}, auth).(*passwordResetService)
		svc.now = func() time.Time { return base.Add(61 * time.Second) }

		assert.ErrorIs(t, svc.ResetPassword("123456", "newpassword"), ErrInvalidToken)
		assert.Equal(t, []string{"123456"}, *deleted)
	})

	t.Run("unknown code", func(t *testing.T) {
		userRepo, tokens, _ := newMocks(base.Add(time.Minute))
		svc := NewPasswordResetService(userRepo, tokens, &mockEmailService{}, auth).(*passwordResetService)
		svc.now = func() time.Time { return base }

		assert.ErrorIs(t, svc.ResetPassword("999999", "newpassword"), ErrNotFound)
	})
}
