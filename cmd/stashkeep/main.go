package main

import (
	"log"
	"log/slog"

	"github.com/vbonduro/stashkeep/internal/config"
	"github.com/vbonduro/stashkeep/internal/db"
	"github.com/vbonduro/stashkeep/internal/logging"
	"github.com/vbonduro/stashkeep/internal/service"
	"github.com/vbonduro/stashkeep/internal/session"
	"github.com/vbonduro/stashkeep/internal/store"
	"github.com/vbonduro/stashkeep/internal/web"
	"github.com/vbonduro/stashkeep/internal/web/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	sessions, closeSessions, err := newSessionStore(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize session store", "error", err)
		return
	}
	defer closeSessions()

	userStore := store.NewUserStore(database)
	accountStore := store.NewAccountStore(database)
	profileStore := store.NewProfileStore(database)
	placeStore := store.NewPlaceStore(database)
	areaStore := store.NewAreaStore(database)
	containerStore := store.NewContainerStore(database)
	itemStore := store.NewItemStore(database)

	authService := service.NewAuthService(userStore, accountStore, profileStore, sessions, logger)
	inventoryService := service.NewInventoryService(profileStore, placeStore, areaStore, containerStore, itemStore, logger)

	server := web.NewServer(authService, inventoryService, sessions, templates.FS, logger, cfg.Server.CookieSecure)

	if err := server.ListenAndServe(cfg.Server.ListenAddr,
		cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.IdleTimeout); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newSessionStore(cfg *config.Config, logger *slog.Logger) (session.Store, func(), error) {
	switch cfg.Session.Backend {
	case "redis":
		logger.Info("using redis session backend", "addr", cfg.Session.RedisAddr)
		s, err := session.NewRedisStore(session.RedisConfig{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
			TTL:      cfg.Session.TTL,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		logger.Info("using in-memory session backend")
		s := session.NewMemoryStore(cfg.Session.TTL)
		return s, func() { _ = s.Close() }, nil
	}
}
