package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session lifetimes: interactive sessions are short, dashboard data
// tokens live long enough for an embedded dashboard to refresh its data.
const (
	SessionLifetime   = 30 * time.Minute
	DataTokenLifetime = time.Hour
)

// Token audiences keep interactive sessions and data tokens from being
// used interchangeably.
const (
	audSession = "session"
	audData    = "data"
)

var ErrInvalidToken = errors.New("invalid token")

// Session is the authenticated identity carried by a session cookie.
type Session struct {
	Email string
	Role  Role
}

// SessionManager signs and verifies session cookies and dashboard data
// tokens with an HMAC secret.
type SessionManager struct {
	secret []byte
}

// NewSessionManager returns a manager using the given signing secret.
func NewSessionManager(secret string) *SessionManager {
	return &SessionManager{secret: []byte(secret)}
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  int    `json:"role"`
}

// Issue returns a signed session token for the identity.
func (m *SessionManager) Issue(s Session) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.Email,
			Audience:  jwt.ClaimStrings{audSession},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionLifetime)),
		},
		Email: s.Email,
		Role:  int(s.Role),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify validates a session token and returns the identity.
func (m *SessionManager) Verify(token string) (Session, error) {
	var claims sessionClaims
	if err := m.parse(token, &claims, audSession); err != nil {
		return Session{}, err
	}
	return Session{Email: claims.Email, Role: Role(claims.Role)}, nil
}

// IssueDataToken returns a signed token granting CSV data access for the
// given user, used by embedded dashboards via Basic auth.
func (m *SessionManager) IssueDataToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		Audience:  jwt.ClaimStrings{audData},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(DataTokenLifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// VerifyDataToken validates a data token and returns the user's email.
func (m *SessionManager) VerifyDataToken(token string) (string, error) {
	var claims jwt.RegisteredClaims
	if err := m.parse(token, &claims, audData); err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (m *SessionManager) parse(token string, claims jwt.Claims, audience string) error {
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithAudience(audience))
	if err != nil || !tok.Valid {
		return ErrInvalidToken
	}
	return nil
}
