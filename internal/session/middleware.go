package session

import (
	"net/http"
	"time"
)

// Middleware resolves the planner session handle of a request, if any,
// and stores its id in the request context. Requests without a valid
// handle pass through untouched; handlers decide whether they need one.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Check for an explicit header (non-browser clients)
		if token := r.Header.Get(HeaderName); token != "" {
			if id, _, err := m.Parse(token); err == nil {
				next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
				return
			}
		}

		// 2. Fallback to the cookie
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		id, exp, err := m.Parse(cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		// Sliding session: refresh the handle once it is past half its lifetime
		if time.Until(exp) < m.ttl/2 {
			if token, newExp, err := m.Issue(id); err == nil {
				c := m.Cookie(token, newExp)
				http.SetCookie(w, &c)
			}
		}

		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}
