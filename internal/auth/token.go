package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/registration-service/internal/domain"
)

// TokenManager handles issuing and validating JWT tokens. The signing
// secret is fixed for the lifetime of the process.
type TokenManager struct {
	secret   []byte
	userTTL  time.Duration
	adminTTL time.Duration
}

// NewTokenManager builds a new manager. Admin sessions get a longer TTL
// than user sessions.
func NewTokenManager(secret string, userTTL, adminTTL time.Duration) *TokenManager {
	if userTTL <= 0 {
		userTTL = time.Hour
	}
	if adminTTL <= 0 {
		adminTTL = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), userTTL: userTTL, adminTTL: adminTTL}
}

// Claims describes the JWT payload: identity plus role.
type Claims struct {
	UserID string      `json:"sub"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken builds and signs a JWT for the user, picking the TTL by role.
func (tm *TokenManager) GenerateToken(userID string, role domain.Role) (string, time.Time, error) {
	ttl := tm.userTTL
	if role == domain.RoleAdmin {
		ttl = tm.adminTTL
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates a token and returns its claims. Malformed tokens,
// bad signatures and expired tokens all fail the same way.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
