package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/sms-ledger/api"
	"github.com/carson-networks/sms-ledger/internal/config"
	"github.com/carson-networks/sms-ledger/internal/logging"
	"github.com/carson-networks/sms-ledger/internal/service"
	"github.com/carson-networks/sms-ledger/internal/smsbridge"
	"github.com/carson-networks/sms-ledger/internal/storage"
	"github.com/carson-networks/sms-ledger/internal/store"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logrus.Info("sms-ledger starting")

	dbStorage := storage.NewStorage(envConfig)
	secureStore := store.NewSecureStore(dbStorage.Items)
	bridge := smsbridge.NewGatewayClient(envConfig.GatewayBaseURL)
	svc := service.NewService(bridge, secureStore)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
			Store:   secureStore,
			Config:  envConfig,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
