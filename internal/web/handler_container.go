package web

import (
	"net/http"
	"strconv"
)

func (s *Server) handleAddContainerForm(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	areaID, err := parseID(r, "areaID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	area, err := s.inventory.GetArea(r.Context(), areaID, profile.ProfileID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.renderNameForm(w, r, "Add container to "+area.Name, "/addContainer/"+strconv.FormatInt(area.ID, 10), nameForm{}, fieldErrors{})
}

func (s *Server) handleAddContainer(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	areaID, err := parseID(r, "areaID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	form := parseNameForm(r)
	if errs := form.validate(); len(errs) > 0 {
		s.renderNameForm(w, r, "Add container", "/addContainer/"+strconv.FormatInt(areaID, 10), form, errs)
		return
	}

	if _, err := s.inventory.CreateContainer(r.Context(), areaID, profile.ProfileID, form.Name); err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.redirectAfter(w, r)
}

func (s *Server) handleViewContainer(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	id, err := parseID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	container, items, err := s.inventory.GetContainerWithItems(r.Context(), id, profile.ProfileID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.render(w, map[string]any{
		"Profile":   profile,
		"Container": container,
		"Items":     items,
	}, "base.html", "pages/view_container.html", "partials/item_table.html")
}

func (s *Server) handleDeleteContainerConfirm(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	id, err := parseID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	container, err := s.inventory.GetContainer(r.Context(), id, profile.ProfileID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.renderDeleteConfirm(w, r, "container", container.Name, "/deleteContainer/"+strconv.FormatInt(container.ID, 10))
}

func (s *Server) handleDeleteContainer(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	id, err := parseID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.inventory.DeleteContainer(r.Context(), id, profile.ProfileID); err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.redirectAfter(w, r)
}
