package web

import (
	"net/http"
	"strings"
)

const defaultReturnPath = "/dashboard"

// exactReturnRoutes are the fixed paths a return redirect may target.
var exactReturnRoutes = map[string]bool{
	"/":              true,
	"/dashboard":     true,
	"/selectProfile": true,
	"/addProfile":    true,
	"/addPlace":      true,
}

// paramReturnRoutes are the parameterized route prefixes a return redirect
// may target; the remainder must be a single non-empty path segment.
var paramReturnRoutes = []string{
	"/viewPlace/", "/viewArea/", "/viewContainer/",
	"/addArea/", "/addContainer/", "/addItem/",
	"/editItem/", "/lendItem/",
	"/deletePlace/", "/deleteArea/", "/deleteContainer/", "/deleteItem/",
}

// returnPath yields the caller-supplied return target `r` if it resolves to
// a known application route, else the dashboard. Validating server-side
// keeps the parameter from becoming an open redirect.
func returnPath(r *http.Request) string {
	if raw := r.FormValue("r"); validReturnPath(raw) {
		return raw
	}
	return defaultReturnPath
}

// redirectAfter sends the post-action redirect every mutating handler ends
// with.
func (s *Server) redirectAfter(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

func validReturnPath(p string) bool {
	if p == "" || p[0] != '/' || strings.HasPrefix(p, "//") || strings.ContainsAny(p, "\\:") {
		return false
	}
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}

	if exactReturnRoutes[p] {
		return true
	}
	for _, prefix := range paramReturnRoutes {
		rest, ok := strings.CutPrefix(p, prefix)
		if ok && rest != "" && !strings.Contains(rest, "/") {
			return true
		}
	}
	return false
}
