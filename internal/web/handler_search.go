package web

import (
	"net/http"
	"strings"
)

// handleSearchItems runs a profile-scoped, case-insensitive substring
// search over item names. An empty query just goes back to the dashboard.
func (s *Server) handleSearchItems(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r.Context())

	query := strings.TrimSpace(r.FormValue("query"))
	if query == "" || len(query) > maxNameLen {
		http.Redirect(w, r, defaultReturnPath, http.StatusSeeOther)
		return
	}

	items, err := s.inventory.SearchItems(r.Context(), profile.ProfileID, query)
	if err != nil {
		s.respondEntityError(w, r, err)
		return
	}

	s.render(w, map[string]any{
		"Profile": profile,
		"Query":   query,
		"Items":   items,
	}, "base.html", "pages/search_results.html", "partials/item_table.html")
}
