package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/davideconti/bank-teller/internal/config"
	"github.com/davideconti/bank-teller/internal/console"
	"github.com/davideconti/bank-teller/internal/repository"
	"github.com/davideconti/bank-teller/internal/service"
	"github.com/davideconti/bank-teller/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting bank teller",
		"data_dir", cfg.Data.Dir,
		"currency", cfg.App.Currency,
		"log_transactions", cfg.App.LogTransactions,
	)

	dir, err := storage.Open(&cfg.Data, logger)
	if err != nil {
		logger.Error("failed to open data directory", "error", err)
		os.Exit(1)
	}

	customers := repository.NewCustomerRepository(dir, logger)

	var txlog repository.TransactionLogger
	if cfg.App.LogTransactions {
		txlog = repository.NewCSVTransactionLogger(dir, logger)
	} else {
		txlog = repository.NewNoopTransactionLogger()
	}

	teller := service.NewTellerService(customers, txlog, cfg.App.Currency, logger)

	ui := console.New(teller, os.Stdin, os.Stdout)
	if err := ui.Run(context.Background()); err != nil {
		logger.Error("console loop failed", "error", err)
		os.Exit(1)
	}
}
