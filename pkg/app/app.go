// Package app wires the ledger core together: configuration, database,
// unit of work, services, and the BankService facade, all through explicit
// constructor composition.
package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/akuniutka/bank-api-sub000/infra"
	infrarepo "github.com/akuniutka/bank-api-sub000/infra/repository"
	"github.com/akuniutka/bank-api-sub000/pkg/config"
	"github.com/akuniutka/bank-api-sub000/pkg/service"
)

// App holds the composed application: the facade a request-handling layer
// consumes, plus the shared database handle and logger.
type App struct {
	Bank   *service.BankService
	DB     *gorm.DB
	Logger *slog.Logger
}

// New composes the application from the given configuration.
func New(cfg *config.App) (*App, error) {
	logger := newLogger(cfg.Log.Level)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		return nil, err
	}

	uow := infrarepo.NewUoW(db)
	bank := service.NewBank(uow, logger)

	logger.Info("ledger core ready", "env", cfg.Env)
	return &App{Bank: bank, DB: db, Logger: logger}, nil
}
