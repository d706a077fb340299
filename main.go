package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Sword-of-GraySkull/FinanceFlow/api"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/config"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/logging"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/operator"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/service"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("financeflow starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	op := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, logger)
	op.Start()
	defer op.Stop()

	svc := service.NewService(dbStorage.Reader, op, envConfig.ImportMaxBytes)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		httpRest := api.Rest{
			Logger:         logger,
			Port:           envConfig.HTTPPort,
			Service:        svc,
			DB:             dbStorage,
			ImportMaxBytes: envConfig.ImportMaxBytes,
		}
		return httpRest.Serve(gctx)
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("financeflow stopped with error")
		return
	}
	logger.Info("financeflow stopped")
}
