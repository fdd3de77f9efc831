package web

import (
	"net/http"
	"strconv"
)

func (s *Server) handleAddAreaForm(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	placeID, err := parseID(r, "placeID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	// Guard the parent before showing the form.
	place, err := s.inventory.GetPlace(r.Context(), placeID, profile.ProfileID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.renderNameForm(w, r, "Add area to "+place.Name, "/addArea/"+strconv.FormatInt(place.ID, 10), nameForm{}, fieldErrors{})
}

func (s *Server) handleAddArea(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	placeID, err := parseID(r, "placeID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	form := parseNameForm(r)
	if errs := form.validate(); len(errs) > 0 {
		s.renderNameForm(w, r, "Add area", "/addArea/"+strconv.FormatInt(placeID, 10), form, errs)
		return
	}

	if _, err := s.inventory.CreateArea(r.Context(), placeID, profile.ProfileID, form.Name); err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.redirectAfter(w, r)
}

func (s *Server) handleViewArea(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	id, err := parseID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	area, containers, err := s.inventory.GetAreaWithContainers(r.Context(), id, profile.ProfileID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.render(w, map[string]any{
		"Profile":       profile,
		"Area":          area,
		"ContainerRows": group(containers, gridWidth),
	}, "base.html", "pages/view_area.html")
}

func (s *Server) handleDeleteAreaConfirm(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	id, err := parseID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	area, err := s.inventory.GetArea(r.Context(), id, profile.ProfileID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.renderDeleteConfirm(w, r, "area", area.Name, "/deleteArea/"+strconv.FormatInt(area.ID, 10))
}

func (s *Server) handleDeleteArea(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	id, err := parseID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.inventory.DeleteArea(r.Context(), id, profile.ProfileID); err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.redirectAfter(w, r)
}
