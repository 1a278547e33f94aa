package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"worldinsight/internal/config"
	"worldinsight/internal/logger"
	"worldinsight/internal/mongo"
	"worldinsight/internal/routing"
)

func main() {
	cfg := config.Load() // load env var from .env

	logger := logger.Load()

	client, db := mongo.LoadDB(cfg)
	logger.Info("connected to MongoDB", "database", cfg.MongoDBName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := routing.NewHandler(db, cfg, logger)
	if err := routing.StartServer(ctx, h, cfg.Port, logger); err != nil {
		logger.Error("server failed", "error", err)
	}

	// in-flight requests are drained before the client goes away
	disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(disconnectCtx); err != nil {
		log.Println("mongo disconnect:", err)
	}
}
