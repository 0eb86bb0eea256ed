package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gdg-garage/park-planner-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, secret, id string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   id,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func serve(m *Manager, req *http.Request) (*httptest.ResponseRecorder, string) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	rr := httptest.NewRecorder()
	m.Middleware(next).ServeHTTP(rr, req)
	return rr, seen
}

func TestMiddleware_SlidingSession(t *testing.T) {
	cfg := &config.Config{SessionSecret: "test-secret", SessionTTL: 24 * time.Hour}
	m := NewManager(cfg)

	t.Run("TokenRenewed", func(t *testing.T) {
		// 11 hours left is less than TTL/2
		tokenString := signedToken(t, cfg.SessionSecret, "session-1", 11*time.Hour)

		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: tokenString})
		rr, seen := serve(m, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", rr.Code)
		}
		if seen != "session-1" {
			t.Errorf("expected session-1 in context, got %q", seen)
		}

		found := false
		for _, c := range rr.Result().Cookies() {
			if c.Name == CookieName {
				found = true
				if c.Value == tokenString {
					t.Errorf("expected new token value, but got the old one")
				}
				if id, _, err := m.Parse(c.Value); err != nil || id != "session-1" {
					t.Errorf("refreshed token does not resolve to the same session: %q, %v", id, err)
				}
			}
		}
		if !found {
			t.Errorf("expected new %s cookie to be set", CookieName)
		}
	})

	t.Run("TokenNotRenewed", func(t *testing.T) {
		tokenString := signedToken(t, cfg.SessionSecret, "session-1", 13*time.Hour)

		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: tokenString})
		rr, seen := serve(m, req)

		if seen != "session-1" {
			t.Errorf("expected session-1 in context, got %q", seen)
		}
		for _, c := range rr.Result().Cookies() {
			if c.Name == CookieName {
				t.Errorf("did not expect a new %s cookie to be set", CookieName)
			}
		}
	})
}

func TestMiddleware_InvalidHandlesPassThrough(t *testing.T) {
	m := NewManager(&config.Config{SessionSecret: "test-secret", SessionTTL: time.Hour})

	tests := map[string]func(*http.Request){
		"NoHandle": func(*http.Request) {},
		"WrongSecret": func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: CookieName, Value: signedToken(t, "other-secret", "x", time.Hour)})
		},
		"Expired": func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: CookieName, Value: signedToken(t, "test-secret", "x", -time.Minute)})
		},
		"Garbage": func(r *http.Request) {
			r.Header.Set(HeaderName, "not-a-token")
		},
	}
	for name, setup := range tests {
		t.Run(name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "/", nil)
			setup(req)
			rr, seen := serve(m, req)

			if rr.Code != http.StatusOK {
				t.Errorf("expected status OK, got %v", rr.Code)
			}
			if seen != "" {
				t.Errorf("expected no session in context, got %q", seen)
			}
		})
	}
}

func TestMiddleware_Header(t *testing.T) {
	m := NewManager(&config.Config{SessionSecret: "test-secret", SessionTTL: time.Hour})
	token, _, err := m.Issue("from-header")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderName, token)
	rr, seen := serve(m, req)

	if seen != "from-header" {
		t.Errorf("expected from-header in context, got %q", seen)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Error("header handles must not set cookies")
	}
}

func TestManager_IssueParse(t *testing.T) {
	m := NewManager(&config.Config{SessionSecret: "test-secret"})
	if m.TTL() != 24*time.Hour {
		t.Errorf("expected default TTL of 24h, got %v", m.TTL())
	}

	id := m.NewID()
	token, exp, err := m.Issue(id)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	gotID, gotExp, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if gotID != id {
		t.Errorf("expected id %s, got %s", id, gotID)
	}
	if gotExp.Unix() != exp.Unix() {
		t.Errorf("expected exp %v, got %v", exp, gotExp)
	}

	cookie := m.Cookie(token, exp)
	if cookie.Name != CookieName || !cookie.HttpOnly || cookie.Path != "/" {
		t.Errorf("unexpected cookie %+v", cookie)
	}
}
