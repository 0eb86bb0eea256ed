package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gdg-garage/park-planner-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CookieName = "planner_session"
	HeaderName = "X-Planner-Session"
)

type contextKey string

const IDKey contextKey = "planner_session_id"

var ErrInvalidToken = errors.New("invalid planner session token")

// Manager issues and verifies the signed handles that bind a browser to
// its planner session. Handles carry no user identity.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(cfg *config.Config) *Manager {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		secret: []byte(cfg.SessionSecret),
		ttl:    ttl,
		secure: cfg.SecureCookies,
	}
}

func (m *Manager) TTL() time.Duration { return m.ttl }

// NewID returns a fresh public session id.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Issue signs a handle for id valid for the configured TTL.
func (m *Manager) Issue(id string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse verifies a handle and returns its session id and expiry.
func (m *Manager) Parse(tokenString string) (string, time.Time, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return "", time.Time{}, ErrInvalidToken
	}
	return claims.Subject, claims.ExpiresAt.Time, nil
}

// Cookie wraps a signed handle into the session cookie.
func (m *Manager) Cookie(token string, exp time.Time) http.Cookie {
	return http.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  exp,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	}
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, IDKey, id)
}

func IDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(IDKey).(string)
	return id, ok && id != ""
}
