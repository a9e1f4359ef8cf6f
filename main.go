package main

import (
	"log"

	"github.com/TanyaSoni29/Revolut-Payment-Integration/config"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/internal/api"
	"github.com/TanyaSoni29/Revolut-Payment-Integration/pkg/logger"

	"go.uber.org/zap"
)

// @title Revolut Payment Integration API
// @version 1.0
// @description Relays payment creation and refunds to the Revolut Merchant API.

// @host localhost:5000
// @BasePath /api

const serviceName = "revolut-payment-relay"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		Output:     cfg.LogOutput,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
		Fields: map[string]string{
			"service":     serviceName,
			"revolut_env": cfg.RevolutEnv(),
		},
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter(cfg)
	if err != nil {
		logger.Log.Fatal("failed to create router", zap.Error(err))
	}

	logger.Log.Info("Server running",
		zap.String("addr", cfg.Addr()),
		zap.String("revolut_base_url", cfg.RevolutBaseURL),
	)
	if err := router.Run(cfg.Addr()); err != nil {
		logger.Log.Fatal("failed to run server", zap.Error(err))
	}
}
