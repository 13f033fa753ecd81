package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shelfstack/bookstore-api/internal/domain/identity"
)

// Default lifetimes. Login tokens outlive reset tokens on purpose: a reset
// link should go stale quickly.
const (
	LoginTTL = 30 * time.Minute
	ResetTTL = 15 * time.Minute
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// Claims is what a verified token resolves to.
type Claims struct {
	SubjectID uint
	Role      identity.Role
	JTI       string
}

// Service signs and verifies session tokens. The secret is injected once at
// startup; there is no rotation window, so every live token must verify
// against the same key.
type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue produces a signed token for a login session.
func (s *Service) Issue(subjectID uint, role identity.Role, ttl time.Duration) (string, error) {
	return s.sign(jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(subjectID), 10),
		"role": string(role),
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	})
}

// IssueReset produces a short-lived token for password reset. The jti lets
// the caller mark the token consumed after a successful reset. Reset tokens
// carry no role: resolving one never grants role-gated access.
func (s *Service) IssueReset(subjectID uint, ttl time.Duration) (token, jti string, err error) {
	jti = uuid.NewString()
	token, err = s.sign(jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(subjectID), 10),
		"jti": jti,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	})
	return token, jti, err
}

func (s *Service) sign(claims jwt.MapClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry. Callers surface both failures as
// plain unauthorized; the distinction exists for logs and tests only.
func (s *Service) Verify(raw string) (*Claims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims := &Claims{SubjectID: uint(id)}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = identity.Role(role)
	}
	if jti, ok := mapClaims["jti"].(string); ok {
		claims.JTI = jti
	}
	return claims, nil
}
