package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleAddItemForm(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	containerID, err := parseID(r, "containerID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	container, err := s.inventory.GetContainer(r.Context(), containerID, profile.ProfileID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.renderItemForm(w, r, "Add item to "+container.Name,
		"/addItem/"+strconv.FormatInt(container.ID, 10), itemForm{}, fieldErrors{})
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	containerID, err := parseID(r, "containerID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	form := parseItemForm(r)
	value, errs := form.validate()
	if len(errs) > 0 {
		s.renderItemForm(w, r, "Add item",
			"/addItem/"+strconv.FormatInt(containerID, 10), form, errs)
		return
	}

	if _, err := s.inventory.CreateItem(r.Context(), containerID, profile.ProfileID,
		form.Name, value, form.Category, form.ExtraDetails); err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.redirectAfter(w, r)
}

func (s *Server) handleEditItemForm(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())
	itemID := chi.URLParam(r, "id")

	item, err := s.inventory.GetItem(r.Context(), itemID, profile.ProfileID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.renderItemForm(w, r, "Edit "+item.Name, "/editItem/"+item.ItemID, itemFormOf(item), fieldErrors{})
}

func (s *Server) handleEditItem(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())
	itemID := chi.URLParam(r, "id")

	form := parseItemForm(r)
	value, errs := form.validate()
	if len(errs) > 0 {
		s.renderItemForm(w, r, "Edit item", "/editItem/"+itemID, form, errs)
		return
	}

	if _, err := s.inventory.UpdateItem(r.Context(), itemID, profile.ProfileID,
		form.Name, value, form.Category, form.ExtraDetails); err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.redirectAfter(w, r)
}

func (s *Server) handleDeleteItemConfirm(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())
	itemID := chi.URLParam(r, "id")

	item, err := s.inventory.GetItem(r.Context(), itemID, profile.ProfileID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.renderDeleteConfirm(w, r, "item", item.Name, "/deleteItem/"+item.ItemID)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())
	itemID := chi.URLParam(r, "id")

	if err := s.inventory.DeleteItem(r.Context(), itemID, profile.ProfileID); err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.redirectAfter(w, r)
}

func (s *Server) handleLendItemForm(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())
	itemID := chi.URLParam(r, "id")

	item, err := s.inventory.GetItem(r.Context(), itemID, profile.ProfileID)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.renderLendForm(w, r, item.Name, item.ItemID, lendForm{}, fieldErrors{})
}

func (s *Server) handleLendItem(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())
	itemID := chi.URLParam(r, "id")

	form := parseLendForm(r)
	if errs := form.validate(); len(errs) > 0 {
		item, err := s.inventory.GetItem(r.Context(), itemID, profile.ProfileID)
		if err != nil {
			s.respondEntityError(w, r, err)
			return
		}
		s.renderLendForm(w, r, item.Name, item.ItemID, form, errs)
		return
	}

	if err := s.inventory.LendItem(r.Context(), itemID, profile.ProfileID, form.Name, form.ToFriend); err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.redirectAfter(w, r)
}

func (s *Server) handleReturnItem(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())
	itemID := chi.URLParam(r, "id")

	if err := s.inventory.ReturnItem(r.Context(), itemID, profile.ProfileID); err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.redirectAfter(w, r)
}

func (s *Server) renderItemForm(w http.ResponseWriter, r *http.Request, title, action string, form itemForm, errs fieldErrors) {
	s.render(w, map[string]any{
		"Title":  title,
		"Action": action,
		"Form":   form,
		"Errors": errs,
		"R":      r.FormValue("r"),
	}, "base.html", "pages/item_form.html")
}

func (s *Server) renderLendForm(w http.ResponseWriter, r *http.Request, itemName, itemID string, form lendForm, errs fieldErrors) {
	s.render(w, map[string]any{
		"ItemName": itemName,
		"Action":   "/lendItem/" + itemID,
		"Form":     form,
		"Errors":   errs,
		"R":        r.FormValue("r"),
	}, "base.html", "pages/lend_item.html")
}
