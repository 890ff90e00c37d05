package main

import (
	"log/slog"
	"os"

	"github.com/splithappens/splithappens/internal/auth"
	"github.com/splithappens/splithappens/internal/config"
	"github.com/splithappens/splithappens/internal/server"
	"github.com/splithappens/splithappens/internal/service"
	"github.com/splithappens/splithappens/internal/storage/sqlite"
	"github.com/splithappens/splithappens/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	srv := &server.Server{
		Auth:       service.NewAuthService(authenticator, jwtManager, store, cfg.StoreTimeout),
		Groups:     service.NewGroupService(store, cfg.StoreTimeout),
		Ledger:     service.NewLedgerService(store, cfg.StoreTimeout),
		Friends:    service.NewFriendService(store, cfg.StoreTimeout),
		JWT:        jwtManager,
		CORSOrigin: cfg.CORSOrigin,
	}

	app := srv.App()
	slog.Info("Server starting", "address", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
