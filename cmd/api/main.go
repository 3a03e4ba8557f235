package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"trade-journal/internal/infrastructure/config"
	"trade-journal/internal/infrastructure/db"
	"trade-journal/internal/infrastructure/logger"
	httpapi "trade-journal/internal/interface/http"
)

func main() {
	cfg, err := config.LoadFromFile("config.yaml")
	if err != nil {
		log.Fatalf("CRITICAL: load config failed: %v", err)
	}

	zlog, err := logger.New(os.Getenv("APP_DEBUG") == "true")
	if err != nil {
		log.Fatalf("CRITICAL: init logger failed: %v", err)
	}
	defer zlog.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		zlog.Sugar().Warnf("database connection failed, falling back to in-memory store: %v", err)
	} else if pool == nil {
		zlog.Sugar().Info("no db.dsn configured; running with in-memory store only")
	} else {
		defer pool.Close()
		zlog.Sugar().Info("database connected")
	}

	apiServer := httpapi.NewServer(cfg, pool, zlog)
	zlog.Sugar().Infof("starting HTTP server on %s", cfg.HTTP.Addr)
	if err := http.ListenAndServe(cfg.HTTP.Addr, apiServer.Handler()); err != nil {
		zlog.Sugar().Fatalf("server stopped: %v", err)
	}
}
