package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Group represents a named multi-leg strategy as stored in the trade_group table.
// Membership is expressed by trade.group_id; a persisted group always has at least two trades.
type Group struct {
	ID           string
	Name         string
	StrategyType StrategyType
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GroupMetrics holds the aggregate values derived from a group's member trades.
type GroupMetrics struct {
	ClosingExpiry          time.Time
	DaysUntilClosingExpiry int
	Status                 TradeStatus
	TotalCostBasis         decimal.Decimal
	TotalCurrentValue      decimal.Decimal
	ProfitLoss             decimal.Decimal
}

// GroupResponse is a group enriched with its metrics and member trades for API responses.
type GroupResponse struct {
	ID                     string          `json:"uuid"`
	Name                   string          `json:"name"`
	StrategyType           StrategyType    `json:"strategyType"`
	Notes                  *string         `json:"notes"`
	ClosingExpiry          time.Time       `json:"closingExpiry"`
	DaysUntilClosingExpiry int             `json:"daysUntilClosingExpiry"`
	Status                 TradeStatus     `json:"status"`
	TotalCostBasis         decimal.Decimal `json:"totalCostBasis"`
	TotalCurrentValue      decimal.Decimal `json:"totalCurrentValue"`
	ProfitLoss             decimal.Decimal `json:"profitLoss"`
	Trades                 []TradeResponse `json:"trades"`
}
