package web

import (
	"errors"
	"net/http"

	"github.com/vbonduro/stashkeep/internal/domain"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	summary, err := s.inventory.Dashboard(r.Context(), profile.ProfileID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.render(w, map[string]any{
		"Profile":    profile,
		"PlaceRows":  group(summary.Places, gridWidth),
		"Areas":      summary.Areas,
		"Items":      summary.Items,
		"TotalValue": summary.TotalValue,
	}, "base.html", "pages/dashboard.html", "partials/item_table.html")
}

// handleSelectProfileForm auto-resolves when it can: with a valid current
// selection or a sole profile the chooser is skipped, unless f=t forces it.
func (s *Server) handleSelectProfileForm(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	force := r.URL.Query().Get("f") == "t"

	if !force {
		profile, rebound, err := s.inventory.ResolveProfile(r.Context(), sess.Data.UserID, sess.Data.ProfileID)
		if err != nil && !errors.Is(err, domain.ErrNoActiveProfile) {
			s.respondEntityError(w, r, err)
			return
		}
		if err == nil {
			if rebound {
				sess.Data.ProfileID = profile.ProfileID
				if err := s.sessions.Set(r.Context(), sess.Token, sess.Data); err != nil {
					s.logger.Error("failed to persist profile selection", "error", err)
				}
			}
			s.redirectAfter(w, r)
			return
		}
	}

	s.renderSelectProfile(w, r, fieldErrors{})
}

func (s *Server) handleSelectProfile(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	profileID := r.FormValue("id")
	profile, err := s.inventory.SelectProfile(r.Context(), sess.Data.UserID, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNotAuthorized) {
			s.renderSelectProfile(w, r, fieldErrors{"id": "choose one of your profiles"})
			return
		}
		s.respondEntityError(w, r, err)
		return
	}

	sess.Data.ProfileID = profile.ProfileID
	if err := s.sessions.Set(r.Context(), sess.Token, sess.Data); err != nil {
		s.logger.Error("failed to persist profile selection", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.redirectAfter(w, r)
}

func (s *Server) renderSelectProfile(w http.ResponseWriter, r *http.Request, errs fieldErrors) {
	sess := sessionFrom(r.Context())

	profiles, err := s.inventory.ListProfiles(r.Context(), sess.Data.UserID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.render(w, map[string]any{
		"ProfileRows": group(profiles, gridWidth),
		"Errors":      errs,
		"R":           r.FormValue("r"),
	}, "base.html", "pages/select_profile.html")
}

func (s *Server) handleAddProfileForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, map[string]any{"Form": nameForm{}, "Errors": fieldErrors{}, "R": r.URL.Query().Get("r")},
		"base.html", "pages/add_profile.html")
}

func (s *Server) handleAddProfile(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	form := parseNameForm(r)
	if errs := form.validate(); len(errs) > 0 {
		s.render(w, map[string]any{"Form": form, "Errors": errs, "R": r.FormValue("r")},
			"base.html", "pages/add_profile.html")
		return
	}

	if _, err := s.inventory.CreateProfile(r.Context(), sess.Data.UserID, form.Name); err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.redirectAfter(w, r)
}
