package main

import (
	"context"
	"flag"
	"mozi/proj/internal/api/tasks"
	"mozi/proj/internal/config"
	"mozi/proj/internal/lib/logger"
	"mozi/proj/internal/services"
	"mozi/proj/internal/storage/postgres"
	storagemodels "mozi/proj/internal/storage/postgres/models"
	"os"
	"time"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file")

	flag.Parse()
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	storage, err := postgres.New(ctx, cfg.DB.Dsn, cfg.DB.MaxConns, cfg.DB.MaxConnIdleTime)
	if err != nil {
		panic(err)
	}
	defer storage.Conn.Close()
	log.Info("database connection established")

	bgTasks := tasks.New(log, cfg.BgTasks.MaxWorkers, cfg.BgTasks.MaxQueueSize)
	bgTasks.Run()
	app := NewApplication(cfg, log, services.New(log, cfg, storagemodels.New(storage), bgTasks))
	if err := app.serve(); err != nil {
		log.Error("shutting down the server", "reason", err.Error())
		os.Exit(1)
	}
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()
	if err := bgTasks.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop background tasks", "reason", err.Error())
	}
}
