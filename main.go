package main

import (
	"context"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/currency"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/notify"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

func main() {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("LEDGER_CONFIG_FILE"))
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	logger := logging.SetupLogging(cfg.Log.Level)
	logger.Info("ledger-server starting")

	store, err := storage.NewStorage(&cfg.Postgres)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}

	rateTable := currency.NewTable()
	for _, seed := range cfg.Rates {
		rate, err := decimal.NewFromString(seed.Rate)
		if err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"from": seed.From,
				"to":   seed.To,
			}).Fatal("config rate not a decimal")
			return
		}
		rateTable.Set(seed.From, seed.To, rate)
	}
	currencySvc := currency.NewService(rateTable)

	bus := notify.NewBus(logger)

	delegator := operator.NewOperatorDelegator(store, bus, cfg.Operator.Workers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(store, delegator, currencySvc, cfg.Display.Currency)

	// Keep cached preferences in sync with writes from other sessions.
	watcher := notify.NewWatcher(bus, logger)
	watcher.OnChange(notify.CollectionPreferences, svc.Preference.Refresh)
	go watcher.Run(context.Background())

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    cfg.HTTP.Port,
			Service: svc,
			Bus:     bus,
			Rates:   rateTable,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
