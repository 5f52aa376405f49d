package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/tejavath/vaanibill/internal/api"
	"github.com/tejavath/vaanibill/internal/config"
	"github.com/tejavath/vaanibill/internal/storage/sqlite"
	"github.com/tejavath/vaanibill/pkg/logging"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	handler := api.NewRouter(store, cfg.APIBase, cfg.StaticPath)
	if cfg.StaticPath != "" {
		slog.Info("Serving static files", "path", cfg.StaticPath)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Billing server starting", "address", addr, "api_base", cfg.APIBase)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
