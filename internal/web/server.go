package web

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vbonduro/stashkeep/internal/domain"
	"github.com/vbonduro/stashkeep/internal/service"
	"github.com/vbonduro/stashkeep/internal/session"
)

type Server struct {
	auth         *service.AuthService
	inventory    *service.InventoryService
	sessions     session.Store
	templates    embed.FS
	router       *chi.Mux
	logger       *slog.Logger
	cookieSecure bool
}

func NewServer(
	auth *service.AuthService,
	inventory *service.InventoryService,
	sessions session.Store,
	tmpl embed.FS,
	logger *slog.Logger,
	cookieSecure bool,
) *Server {
	s := &Server{
		auth:         auth,
		inventory:    inventory,
		sessions:     sessions,
		templates:    tmpl,
		router:       chi.NewRouter(),
		logger:       logger,
		cookieSecure: cookieSecure,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	r := s.router
	r.Use(s.requestLogger)
	r.Use(securityHeaders)

	r.Get("/", s.handleHome)
	r.Get("/signup", s.handleSignupForm)
	r.Post("/signup", s.handleSignup)
	r.Get("/login", s.handleLoginForm)
	r.Post("/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireUser)

		r.Post("/logout", s.handleLogout)
		r.Get("/selectProfile", s.handleSelectProfileForm)
		r.Post("/selectProfile", s.handleSelectProfile)
		r.Get("/addProfile", s.handleAddProfileForm)
		r.Post("/addProfile", s.handleAddProfile)

		r.Group(func(r chi.Router) {
			r.Use(s.requireProfile)

			r.Get("/dashboard", s.handleDashboard)

			r.Get("/addPlace", s.handleAddPlaceForm)
			r.Post("/addPlace", s.handleAddPlace)
			r.Get("/viewPlace/{id}", s.handleViewPlace)
			r.Get("/deletePlace/{id}", s.handleDeletePlaceConfirm)
			r.Post("/deletePlace/{id}", s.handleDeletePlace)

			r.Get("/addArea/{placeID}", s.handleAddAreaForm)
			r.Post("/addArea/{placeID}", s.handleAddArea)
			r.Get("/viewArea/{id}", s.handleViewArea)
			r.Get("/deleteArea/{id}", s.handleDeleteAreaConfirm)
			r.Post("/deleteArea/{id}", s.handleDeleteArea)

			r.Get("/addContainer/{areaID}", s.handleAddContainerForm)
			r.Post("/addContainer/{areaID}", s.handleAddContainer)
			r.Get("/viewContainer/{id}", s.handleViewContainer)
			r.Get("/deleteContainer/{id}", s.handleDeleteContainerConfirm)
			r.Post("/deleteContainer/{id}", s.handleDeleteContainer)

			r.Get("/addItem/{containerID}", s.handleAddItemForm)
			r.Post("/addItem/{containerID}", s.handleAddItem)
			r.Get("/editItem/{id}", s.handleEditItemForm)
			r.Post("/editItem/{id}", s.handleEditItem)
			r.Get("/deleteItem/{id}", s.handleDeleteItemConfirm)
			r.Post("/deleteItem/{id}", s.handleDeleteItem)
			r.Get("/lendItem/{id}", s.handleLendItemForm)
			r.Post("/lendItem/{id}", s.handleLendItem)
			r.Post("/returnItem/{id}", s.handleReturnItem)

			r.Post("/searchItems", s.handleSearchItems)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string, readTimeout, writeTimeout, idleTimeout time.Duration) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return srv.ListenAndServe()
}

// renderPage parses and executes a full-page template set.
func (s *Server) renderPage(w http.ResponseWriter, data any, files ...string) error {
	tmpl, err := template.New("").ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

func (s *Server) render(w http.ResponseWriter, data any, files ...string) {
	if err := s.renderPage(w, data, files...); err != nil {
		s.logger.Error("render page error", "error", err)
	}
}

// respondEntityError maps service errors to the response policy: missing
// entities get a plain 404, entities owned by another profile get a silent
// dashboard redirect so their existence is never revealed.
func (s *Server) respondEntityError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, domain.ErrNotAuthorized):
		http.Redirect(w, r, defaultReturnPath, http.StatusSeeOther)
	default:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
