package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/catherinekimani/Hummingbirds/config"
	"github.com/catherinekimani/Hummingbirds/db"
	"github.com/catherinekimani/Hummingbirds/internal/auth/handler"
	repo "github.com/catherinekimani/Hummingbirds/internal/auth/repository/postgres"
	"github.com/catherinekimani/Hummingbirds/internal/auth/service"
	"github.com/catherinekimani/Hummingbirds/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	repository := repo.NewPostgresRepository(dbPool)

	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	otpService := service.NewOTPService(repository, cfg)
	notifier := service.NewChannelNotifier(
		service.NewEmailNotifier(cfg.SMTP, cfg.OTPExpiryMin),
		service.NewSMSNotifier(cfg.SMS, cfg.OTPExpiryMin, log),
	)
	userService := service.NewUserService(repository, repository, otpService, tokenService,
		notifier, cfg, log)
	paymentService := service.NewPaymentService(repository, repository,
		service.NewPaystackClient(cfg.Paystack), cfg, log)
	pointsService := service.NewPointsService(repository)

	authHandler := handler.NewAuthHandler(userService, tokenService, cfg)
	paymentHandler := handler.NewPaymentHandler(paymentService, pointsService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, paymentHandler)

	log.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
