package web

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/vbonduro/stashkeep/internal/domain"
)

const sessionCookieName = "stashkeep_session"

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.cookieSecure,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.cookieSecure,
	})
}

// requireUser loads the session from the cookie and puts it on the request
// context. Unauthenticated requests are sent to the login page with the
// original path preserved so the user comes back after logging in.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			redirectWithReturn(w, r, "/login")
			return
		}

		data, err := s.sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			s.logger.Error("failed to load session", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if data == nil {
			s.clearSessionCookie(w)
			redirectWithReturn(w, r, "/login")
			return
		}

		ctx := withSession(r.Context(), &sessionInfo{Token: cookie.Value, Data: *data})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireProfile resolves the active profile for the session and binds it
// to the request context. This is the sole gate establishing the tenant
// scope; handlers behind it can rely on profileFrom(ctx) being non-nil.
func (s *Server) requireProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r.Context())

		profile, rebound, err := s.inventory.ResolveProfile(r.Context(), sess.Data.UserID, sess.Data.ProfileID)
		if errors.Is(err, domain.ErrNoActiveProfile) {
			redirectWithReturn(w, r, "/selectProfile")
			return
		}
		if err != nil {
			s.logger.Error("failed to resolve profile", "user_id", sess.Data.UserID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if rebound {
			sess.Data.ProfileID = profile.ProfileID
			if err := s.sessions.Set(r.Context(), sess.Token, sess.Data); err != nil {
				s.logger.Error("failed to persist profile selection", "error", err)
			}
		}

		next.ServeHTTP(w, r.WithContext(withProfile(r.Context(), profile)))
	})
}

func redirectWithReturn(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target+"?r="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data:; "+
				"connect-src 'self'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
