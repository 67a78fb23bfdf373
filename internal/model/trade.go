package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade represents a single option position as stored in the trade table.
type Trade struct {
	ID           string
	Symbol       string
	StrikePrice  decimal.Decimal
	ExpiryDate   time.Time
	TradeType    TradeType
	OptionType   OptionType
	Quantity     int
	CostBasis    decimal.Decimal
	CurrentValue decimal.Decimal
	Status       TradeStatus
	Notes        *string
	GroupID      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TradeResponse is a trade enriched with its derived fields for API responses.
// PnL, DaysToExpiry and ExpiryStatus are recomputed on every read.
type TradeResponse struct {
	ID           string          `json:"uuid"`
	Symbol       string          `json:"symbol"`
	StrikePrice  decimal.Decimal `json:"strikePrice"`
	ExpiryDate   time.Time       `json:"expiryDate"`
	TradeType    TradeType       `json:"tradeType"`
	OptionType   OptionType      `json:"optionType"`
	Quantity     int             `json:"quantity"`
	CostBasis    decimal.Decimal `json:"costBasis"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Status       TradeStatus     `json:"status"`
	ExpiryStatus TradeStatus     `json:"expiryStatus"`
	Notes        *string         `json:"notes"`
	GroupID      *string         `json:"groupUuid"`
	PnL          decimal.Decimal `json:"pnl"`
	DaysToExpiry int             `json:"daysToExpiry"`
}
