package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/household-server/api"
	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/config"
	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/notify"
	"github.com/carson-networks/household-server/internal/operator"
	"github.com/carson-networks/household-server/internal/service"
	"github.com/carson-networks/household-server/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("household-server starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	var publisher notify.Publisher = notify.NewLogPublisher(logger)
	if envConfig.AMQPURL != "" {
		amqpPublisher, err := notify.NewAMQPPublisher(envConfig.AMQPURL, envConfig.AMQPExchange)
		if err != nil {
			logger.WithError(err).Fatal("notify.NewAMQPPublisher")
			return
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}

	tokens, err := auth.NewTokenIssuer(envConfig.JWTSecret, envConfig.TokenTTL)
	if err != nil {
		logger.WithError(err).Fatal("auth.NewTokenIssuer")
		return
	}
	defer tokens.Close()

	svc := service.NewService(dbStorage, delegator, publisher, tokens, ledger.Currency(envConfig.DefaultCurrency))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.Port,
		Database: dbStorage,
		Service:  svc,
		Tokens:   tokens,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}
	logger.Info("household-server stopped")
}
