package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jasit-store/app"
	"jasit-store/config"
	_ "jasit-store/docs"
	"jasit-store/utils"

	"go.uber.org/zap"
)

// @title JASIT Consultan API
// @version 1.0
// @description Katalog layanan IT, keranjang belanja dan checkout JASIT Consultan.
// @host localhost:8082
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.LoadConfig()

	log, err := utils.NewLogger(cfg.AppEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if !cfg.EnvFileLoaded {
		log.Warn(".env file not found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to start application", zap.Error(err))
	}

	if err := application.Run(ctx); err != nil {
		log.Fatal("server stopped with error", zap.Error(err))
	}
}
