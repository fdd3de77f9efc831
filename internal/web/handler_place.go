package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// parseID extracts an int64 URL parameter.
func parseID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func (s *Server) handleAddPlaceForm(w http.ResponseWriter, r *http.Request) {
	s.renderNameForm(w, r, "Add place", "/addPlace", nameForm{}, fieldErrors{})
}

func (s *Server) handleAddPlace(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	form := parseNameForm(r)
	if errs := form.validate(); len(errs) > 0 {
		s.renderNameForm(w, r, "Add place", "/addPlace", form, errs)
		return
	}

	if _, err := s.inventory.CreatePlace(r.Context(), profile.ProfileID, form.Name); err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.redirectAfter(w, r)
}

func (s *Server) handleViewPlace(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	id, err := parseID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	place, areas, err := s.inventory.GetPlaceWithAreas(r.Context(), id, profile.ProfileID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.render(w, map[string]any{
		"Profile":  profile,
		"Place":    place,
		"AreaRows": group(areas, gridWidth),
	}, "base.html", "pages/view_place.html")
}

func (s *Server) handleDeletePlaceConfirm(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	id, err := parseID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	place, err := s.inventory.GetPlace(r.Context(), id, profile.ProfileID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.renderDeleteConfirm(w, r, "place", place.Name, "/deletePlace/"+strconv.FormatInt(place.ID, 10))
}

func (s *Server) handleDeletePlace(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	id, err := parseID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.inventory.DeletePlace(r.Context(), id, profile.ProfileID); err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.redirectAfter(w, r)
}

// renderNameForm renders the shared single-field form used by the place,
// area, container and profile add pages.
func (s *Server) renderNameForm(w http.ResponseWriter, r *http.Request, title, action string, form nameForm, errs fieldErrors) {
	s.render(w, map[string]any{
		"Title":  title,
		"Action": action,
		"Form":   form,
		"Errors": errs,
		"R":      r.FormValue("r"),
	}, "base.html", "pages/name_form.html")
}

// renderDeleteConfirm renders the shared delete confirmation page.
func (s *Server) renderDeleteConfirm(w http.ResponseWriter, r *http.Request, kind, name, action string) {
	s.render(w, map[string]any{
		"Kind":   kind,
		"Name":   name,
		"Action": action,
		"R":      r.FormValue("r"),
	}, "base.html", "pages/delete_confirm.html")
}
