package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mkessler/clockodo-bridge/internal/clockodo"
	"github.com/mkessler/clockodo-bridge/internal/config"
	"github.com/mkessler/clockodo-bridge/internal/resources"
	"github.com/mkessler/clockodo-bridge/internal/server"
	"github.com/mkessler/clockodo-bridge/internal/service"
	"github.com/mkessler/clockodo-bridge/internal/tools"
	"github.com/mkessler/clockodo-bridge/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "optional path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting clockodo-bridge",
		zap.Int("port", cfg.Server.Port),
		zap.Strings("enabled_features", cfg.Permissions.EnabledFeatures()))

	clientConfig := clockodo.Config{
		APIUser:            cfg.Clockodo.APIUser,
		APIKey:             cfg.Clockodo.APIKey,
		BaseURL:            cfg.Clockodo.BaseURL,
		UserAgent:          cfg.Clockodo.UserAgent,
		ExternalAppContact: cfg.Clockodo.ExternalAppContact,
		Timeout:            cfg.Clockodo.APITimeout,
	}
	client := clockodo.NewClient(clientConfig, logger)

	hrService := service.NewHRService(client, logger)
	userService := service.NewUserService(client, logger)
	teamLeaderService := service.NewTeamLeaderService(func() (*clockodo.Client, error) {
		return clockodo.NewClient(clientConfig, logger), nil
	}, logger)

	registry := tools.NewRegistry(logger)
	tools.RegisterAll(registry, tools.Deps{
		Client:     client,
		HR:         hrService,
		User:       userService,
		TeamLeader: teamLeaderService,
		Defaults:   cfg.Compliance,
	}, cfg.Permissions)

	provider := resources.NewProvider(client, logger)

	srv := server.New(server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, registry, provider, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
