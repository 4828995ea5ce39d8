package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fahs/internal/config"
	"fahs/internal/domain"
)

// SessionClaims represents the JWT claims binding a token to a wizard session.
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID uuid.UUID `json:"session_id"`
}

// SessionToken holds an issued session token.
type SessionToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenService defines the session token contract. A token identifies one
// wizard session and nothing else; there are no user accounts.
type TokenService interface {
	Issue(sessionID uuid.UUID) (*SessionToken, error)
	Validate(tokenString string) (*SessionClaims, error)
}

type tokenService struct {
	cfg config.SessionConfig
}

// NewTokenService creates a new TokenService implementation.
func NewTokenService(cfg config.SessionConfig) TokenService {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) Issue(sessionID uuid.UUID) (*SessionToken, error) {
	now := time.Now()
	expiry := now.Add(s.cfg.Expiry)

	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID.String(),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{"session"},
		},
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}

	return &SessionToken{Token: tokenString, ExpiresAt: expiry}, nil
}

func (s *tokenService) Validate(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing session token: %w", err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	aud, _ := claims.GetAudience()
	for _, a := range aud {
		if a == "session" {
			return claims, nil
		}
	}
	return nil, domain.ErrUnauthorized
}
