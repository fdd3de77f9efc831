package web

import (
	"errors"
	"net/http"

	"github.com/vbonduro/stashkeep/internal/service"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, nil, "base.html", "pages/home.html")
}

func (s *Server) handleSignupForm(w http.ResponseWriter, r *http.Request) {
	if s.authenticated(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	s.render(w, map[string]any{"Form": signupForm{}, "Errors": fieldErrors{}},
		"base.html", "pages/signup.html")
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if s.authenticated(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	form := parseSignupForm(r)
	errs := form.validate()
	if len(errs) == 0 {
		token, err := s.auth.Signup(r.Context(), form.Username, form.Email, form.Password1)
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			errs["username"] = "already taken"
		case err != nil:
			s.logger.Error("signup failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		default:
			s.setSessionCookie(w, token)
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
	}

	s.render(w, map[string]any{"Form": form, "Errors": errs},
		"base.html", "pages/signup.html")
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if s.authenticated(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	s.render(w, map[string]any{"Form": loginForm{}, "Errors": fieldErrors{}, "R": r.URL.Query().Get("r")},
		"base.html", "pages/login.html")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	form := parseLoginForm(r)

	token, err := s.auth.Login(r.Context(), form.Username, form.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		s.render(w, map[string]any{
			"Form":   form,
			"Errors": fieldErrors{"username": "invalid username or password"},
			"R":      r.FormValue("r"),
		}, "base.html", "pages/login.html")
		return
	}
	if err != nil {
		s.logger.Error("login failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.setSessionCookie(w, token)
	s.redirectAfter(w, r)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if err := s.auth.Logout(r.Context(), sess.Token); err != nil {
		s.logger.Error("logout failed", "error", err)
	}
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// authenticated reports whether the request carries a live session. Used
// only to bounce signed-in visitors off the public auth pages.
func (s *Server) authenticated(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return false
	}
	data, err := s.sessions.Get(r.Context(), cookie.Value)
	return err == nil && data != nil
}
