package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/sms-ledger/internal/config"
	"github.com/carson-networks/sms-ledger/internal/handlers/v1/insights"
	"github.com/carson-networks/sms-ledger/internal/handlers/v1/pin"
	"github.com/carson-networks/sms-ledger/internal/handlers/v1/scan"
	"github.com/carson-networks/sms-ledger/internal/handlers/v1/status"
	"github.com/carson-networks/sms-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/sms-ledger/internal/logging"
	"github.com/carson-networks/sms-ledger/internal/service"
	"github.com/carson-networks/sms-ledger/internal/store"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Store   *store.SecureStore
	Config  *config.Config
}

func (r *Rest) Serve() {
	statusHandler := status.NewHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("sms-ledger", "1.0.0"))
	scan.NewScanHandler(r.Service.Scan, r.Config.ScanWindowDays, r.Config.ScanMaxMessages).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Scan).Register(humaAPI)
	insights.NewSummaryHandler(r.Service.Insights).Register(humaAPI)
	insights.NewInsightsHandler(r.Service.Insights).Register(humaAPI)
	pin.NewSetPinHandler(r.Store).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
