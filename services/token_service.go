package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sitedock/sitedock/dto"
	"github.com/sitedock/sitedock/models"
	"github.com/sitedock/sitedock/repositories"
	"gorm.io/gorm"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

// Verification failures, from cheapest to most suspicious. All of them are
// reported to clients as the same 401; the distinction is for callers and
// logs.
var (
	ErrInvalidSignature = errors.New("token signature or expiry check failed")
	ErrSessionNotFound  = errors.New("no session exists for token")
	ErrSessionExpired   = errors.New("session has expired")
	ErrUserMismatch     = errors.New("token subject does not match session owner")
)

// TokenService mints signed tokens and validates presented ones. A token is
// only as good as its session row: the signature proves the server issued
// it, the store lookup makes logout and session replacement take effect
// immediately instead of at natural expiry.
type TokenService struct {
	secret   []byte
	sessions *repositories.SessionRepository
}

// NewTokenService creates a new token service instance
func NewTokenService(secret string, sessions *repositories.SessionRepository) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		sessions: sessions,
	}
}

// Issue generates a signed JWT embedding the user's identity. Pure function
// of user, secret and clock; the session row is written separately.
func (s *TokenService) Issue(user models.User) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(TokenTTL)

	claims := dto.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// Verify checks a presented token in three stages: signature and embedded
// expiry, existence of an unexpired session row for this exact token, and
// agreement between the token's subject and the session's owner. An expired
// session row is deleted on sight.
func (s *TokenService) Verify(tokenString string) (*dto.TokenClaims, error) {
	claims, err := s.decode(tokenString)
	if err != nil {
		// A naturally expired token never reaches the session lookup below,
		// so its row would otherwise linger until the next login. Best
		// effort: the caller gets the same 401 either way.
		if errors.Is(err, jwt.ErrTokenExpired) {
			if derr := s.sessions.Destroy(tokenString); derr != nil {
				log.Printf("Failed to remove session for expired token: %v", derr)
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	session, err := s.sessions.FindByToken(tokenString)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		if err := s.sessions.Destroy(tokenString); err != nil {
			return nil, err
		}
		return nil, ErrSessionExpired
	}

	if session.UserID != claims.UserID {
		return nil, ErrUserMismatch
	}

	return claims, nil
}

// decode validates the signature and embedded claims without consulting the
// session store.
func (s *TokenService) decode(tokenString string) (*dto.TokenClaims, error) {
	if len(s.secret) == 0 {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
