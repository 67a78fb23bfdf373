// Package cli provides the tradelog command-line interface.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ndewijer/TradeLog-Backend/internal/config"
	"github.com/ndewijer/TradeLog-Backend/internal/database"
	"github.com/ndewijer/TradeLog-Backend/internal/logging"
	"github.com/ndewijer/TradeLog-Backend/internal/repository"
	"github.com/ndewijer/TradeLog-Backend/internal/service"
	"github.com/ndewijer/TradeLog-Backend/internal/version"
)

// NewRootCmd creates the root command. Running it without a subcommand starts the server.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "tradelog",
		Short:        "TradeLog options trade journal API",
		Long:         `TradeLog records option trades, groups them into multi-leg strategies and serves them over a REST API.`,
		Version:      version.Version,
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the dependencies shared by every command.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	db     *sql.DB
}

// bootstrap loads configuration, installs the global logger and opens the database.
// Monetary fields are switched to JSON numbers here, matching the web client contract.
func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	decimal.MarshalJSONWithoutQuotes = true

	logger := logging.New(cfg.Log)
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Info().Str("path", cfg.Database.Path).Msg("connected to database")

	return &app{cfg: cfg, logger: logger, db: db}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error().Err(err).Msg("failed to close database")
	}
}

// stack is the repository and service graph shared by the commands.
type stack struct {
	tradeRepo *repository.TradeRepository
	groupRepo *repository.GroupRepository
	trades    *service.TradeService
	groups    *service.GroupService
}

func (a *app) stack(opts ...service.Option) stack {
	tradeRepo := repository.NewTradeRepository(a.db)
	groupRepo := repository.NewGroupRepository(a.db)
	opts = append([]service.Option{service.WithLogger(a.logger)}, opts...)

	return stack{
		tradeRepo: tradeRepo,
		groupRepo: groupRepo,
		trades:    service.NewTradeService(a.db, tradeRepo, groupRepo, opts...),
		groups:    service.NewGroupService(a.db, tradeRepo, groupRepo, opts...),
	}
}
