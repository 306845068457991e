package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"foodiexpress/internal/commons"
	"foodiexpress/internal/contact"
	"foodiexpress/internal/infrastructure/logger"
	"foodiexpress/internal/infrastructure/mysql"
	"foodiexpress/internal/infrastructure/redis"
	"foodiexpress/internal/menu"
	"foodiexpress/internal/order"
	"foodiexpress/internal/server"
	"foodiexpress/internal/user"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := mysql.Migrate(migrateCtx, db, zapLogger); err != nil {
		cancelMigrate()
		zapLogger.Fatal("running migrations", zap.Error(err))
	}
	cancelMigrate()

	rdb, err := redis.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connecting to redis", zap.Error(err))
	}
	defer rdb.Close()
	zapLogger.Info("redis connected")

	menuCtrl := menu.NewModule(db, rdb, cfg.Redis.MenuTTL, zapLogger)
	orderCtrl, orderSvc := order.NewModule(db, zapLogger)
	userCtrl := user.NewModule(db, orderSvc, zapLogger)
	contactCtrl := contact.NewModule(db, zapLogger)

	router := server.NewRouter(menuCtrl, orderCtrl, userCtrl, contactCtrl, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
