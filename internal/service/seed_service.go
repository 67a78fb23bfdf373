package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/TradeLog-Backend/internal/api/request"
	"github.com/ndewijer/TradeLog-Backend/internal/model"
	"github.com/ndewijer/TradeLog-Backend/internal/repository"
)

// SeedService replaces the stored data with a fixed sample set.
type SeedService struct {
	db           *sql.DB
	tradeRepo    *repository.TradeRepository
	groupRepo    *repository.GroupRepository
	tradeService *TradeService
	groupService *GroupService
	options
}

// NewSeedService creates a SeedService that writes through the trade and group services.
func NewSeedService(
	db *sql.DB,
	tradeRepo *repository.TradeRepository,
	groupRepo *repository.GroupRepository,
	tradeService *TradeService,
	groupService *GroupService,
	opts ...Option,
) *SeedService {
	return &SeedService{
		db:           db,
		tradeRepo:    tradeRepo,
		groupRepo:    groupRepo,
		tradeService: tradeService,
		groupService: groupService,
		options:      newOptions(opts),
	}
}

// Seed deletes every trade and group, then creates two strategies and one
// ungrouped trade with expiries relative to the current day. Running it again
// yields the same shape of data.
//
// Short legs carry negative cost basis and value. The request validators reject
// those, so seeding goes straight to the services.
func (s *SeedService) Seed(ctx context.Context) (model.SeedSummary, error) {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.tradeRepo.WithTx(tx).DeleteAllTrades(ctx); err != nil {
			return err
		}
		return s.groupRepo.WithTx(tx).DeleteAllGroups(ctx)
	})
	if err != nil {
		return model.SeedSummary{}, fmt.Errorf("failed to clear existing data: %w", err)
	}

	today := s.now()
	in := func(days int) string {
		return today.AddDate(0, 0, days).UTC().Format(time.RFC3339)
	}

	strategies := []request.CreateStrategyRequest{
		{
			Group: request.StrategyGroupRequest{
				Name:         "SPY Calendar Spread",
				StrategyType: string(model.StrategyCalendarSpread),
				Notes:        ptr("Calendar spread on SPY targeting 30/60 day expiration differential"),
			},
			Trades: []request.CreateTradeRequest{
				seedTrade("SPY", 450, in(30), model.TradeTypeBuy, model.OptionTypeCall, 1, 500, 520, "Long call - near term"),
				seedTrade("SPY", 450, in(60), model.TradeTypeSell, model.OptionTypeCall, 1, -300, -280, "Short call - far term"),
				seedTrade("SPY", 455, in(30), model.TradeTypeBuy, model.OptionTypeCall, 1, 450, 470, "Long call - near term (higher strike)"),
			},
		},
		{
			Group: request.StrategyGroupRequest{
				Name:         "AAPL Ratio Calendar",
				StrategyType: string(model.StrategyRatioCalendarSpread),
				Notes:        ptr("2:1 ratio calendar on AAPL puts"),
			},
			Trades: []request.CreateTradeRequest{
				seedTrade("AAPL", 180, in(15), model.TradeTypeBuy, model.OptionTypePut, 2, 800, 820, "Long puts - 2 contracts"),
				seedTrade("AAPL", 180, in(45), model.TradeTypeSell, model.OptionTypePut, 1, -450, -430, "Short put - 1 contract"),
			},
		},
	}

	var summary model.SeedSummary
	for _, strategy := range strategies {
		group, err := s.groupService.CreateStrategy(ctx, strategy)
		if err != nil {
			return model.SeedSummary{}, fmt.Errorf("failed to seed %q: %w", strategy.Group.Name, err)
		}
		summary.Groups = append(summary.Groups, group)
	}

	trade, err := s.tradeService.CreateTrade(ctx,
		seedTrade("TSLA", 250, in(10), model.TradeTypeBuy, model.OptionTypeCall, 1, 600, 550, "Standalone TSLA call - ungrouped"))
	if err != nil {
		return model.SeedSummary{}, fmt.Errorf("failed to seed ungrouped trade: %w", err)
	}
	summary.UngroupedTrade = trade

	s.logger.Info().
		Int("groups", len(summary.Groups)).
		Msg("sample data seeded")

	return summary, nil
}

func seedTrade(
	symbol string,
	strike int64,
	expiry string,
	tradeType model.TradeType,
	optionType model.OptionType,
	quantity int,
	costBasis, currentValue int64,
	notes string,
) request.CreateTradeRequest {
	strikePrice := decimal.NewFromInt(strike)
	cost := decimal.NewFromInt(costBasis)
	value := decimal.NewFromInt(currentValue)

	return request.CreateTradeRequest{
		Symbol:       symbol,
		StrikePrice:  &strikePrice,
		ExpiryDate:   expiry,
		TradeType:    string(tradeType),
		OptionType:   string(optionType),
		Quantity:     &quantity,
		CostBasis:    &cost,
		CurrentValue: &value,
		Notes:        &notes,
	}
}

func ptr[T any](v T) *T {
	return &v
}
