package service

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/TradeLog-Backend/internal/apperrors"
	"github.com/ndewijer/TradeLog-Backend/internal/model"
)

// TradePnL returns currentValue - costBasis.
func TradePnL(t model.Trade) decimal.Decimal {
	return t.CurrentValue.Sub(t.CostBasis)
}

// DaysToExpiry returns the whole 24-hour periods from now until expiry, rounded down.
// Past expiries yield negative values.
func DaysToExpiry(expiry, now time.Time) int {
	return int(math.Floor(expiry.Sub(now).Hours() / 24))
}

// CalculateGroupMetrics computes the aggregate fields of a group from its member trades.
// Returns ErrEmptyGroup when trades is empty; callers must guarantee at least one member.
func CalculateGroupMetrics(trades []model.Trade, now time.Time) (model.GroupMetrics, error) {
	if len(trades) == 0 {
		return model.GroupMetrics{}, apperrors.ErrEmptyGroup
	}

	closingExpiry := trades[0].ExpiryDate
	totalCost := decimal.Zero
	totalValue := decimal.Zero

	for _, t := range trades {
		if t.ExpiryDate.Before(closingExpiry) {
			closingExpiry = t.ExpiryDate
		}
		totalCost = totalCost.Add(t.CostBasis)
		totalValue = totalValue.Add(t.CurrentValue)
	}

	days := DaysToExpiry(closingExpiry, now)

	return model.GroupMetrics{
		ClosingExpiry:          closingExpiry,
		DaysUntilClosingExpiry: days,
		Status:                 DeriveStatus(days),
		TotalCostBasis:         totalCost,
		TotalCurrentValue:      totalValue,
		ProfitLoss:             totalValue.Sub(totalCost),
	}, nil
}

// EnrichTrade builds the API representation of a trade with its derived fields.
func EnrichTrade(t model.Trade, now time.Time) model.TradeResponse {
	days := DaysToExpiry(t.ExpiryDate, now)

	return model.TradeResponse{
		ID:           t.ID,
		Symbol:       t.Symbol,
		StrikePrice:  t.StrikePrice,
		ExpiryDate:   t.ExpiryDate,
		TradeType:    t.TradeType,
		OptionType:   t.OptionType,
		Quantity:     t.Quantity,
		CostBasis:    t.CostBasis,
		CurrentValue: t.CurrentValue,
		Status:       t.Status,
		ExpiryStatus: DeriveStatus(days),
		Notes:        t.Notes,
		GroupID:      t.GroupID,
		PnL:          TradePnL(t),
		DaysToExpiry: days,
	}
}

// EnrichTrades enriches every trade in order.
func EnrichTrades(trades []model.Trade, now time.Time) []model.TradeResponse {
	enriched := make([]model.TradeResponse, len(trades))
	for i, t := range trades {
		enriched[i] = EnrichTrade(t, now)
	}
	return enriched
}

// EnrichGroup builds the API representation of a group with its metrics and member trades.
func EnrichGroup(g model.Group, trades []model.Trade, now time.Time) (model.GroupResponse, error) {
	metrics, err := CalculateGroupMetrics(trades, now)
	if err != nil {
		return model.GroupResponse{}, err
	}

	return model.GroupResponse{
		ID:                     g.ID,
		Name:                   g.Name,
		StrategyType:           g.StrategyType,
		Notes:                  g.Notes,
		ClosingExpiry:          metrics.ClosingExpiry,
		DaysUntilClosingExpiry: metrics.DaysUntilClosingExpiry,
		Status:                 metrics.Status,
		TotalCostBasis:         metrics.TotalCostBasis,
		TotalCurrentValue:      metrics.TotalCurrentValue,
		ProfitLoss:             metrics.ProfitLoss,
		Trades:                 EnrichTrades(trades, now),
	}, nil
}
