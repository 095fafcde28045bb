package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService owns the shared auth primitives: password hashing and the
// signed bearer tokens. Verification is stateless — expiry lives inside the
// token, so issued tokens cannot be revoked server-side before they expire.
type AuthService interface {
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool

	GenerateAccessToken(userID int, email string) (string, error)
	GenerateRefreshToken(userID int) (string, error)
	VerifyToken(tokenStr string) (*Claims, error)
}

type Claims struct {
	UserID int    `json:"id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type authService struct {
	secret []byte
	ttl    time.Duration
}

func NewAuthService(secret string, ttl time.Duration) AuthService {
	return &authService{secret: []byte(secret), ttl: ttl}
}

func (s *authService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *authService) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *authService) GenerateAccessToken(userID int, email string) (string, error) {
	return s.sign(&Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	})
}

// GenerateRefreshToken carries the user id only, same scheme and expiry
// policy as the access token.
func (s *authService) GenerateRefreshToken(userID int) (string, error) {
	return s.sign(&Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	})
}

func (s *authService) sign(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *authService) VerifyToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		// accept HMAC only
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
