package request

import "github.com/shopspring/decimal"

// CreateTradeRequest is the body of POST /v1/trades and each entry of a strategy.
// Numeric fields are pointers so a missing value can be told apart from zero.
type CreateTradeRequest struct {
	Symbol       string           `json:"symbol"`
	StrikePrice  *decimal.Decimal `json:"strikePrice"`
	ExpiryDate   string           `json:"expiryDate"`
	TradeType    string           `json:"tradeType"`
	OptionType   string           `json:"optionType"`
	Quantity     *int             `json:"quantity"`
	CostBasis    *decimal.Decimal `json:"costBasis"`
	CurrentValue *decimal.Decimal `json:"currentValue"`
	Notes        *string          `json:"notes,omitempty"`
	GroupID      *string          `json:"groupUuid,omitempty"`
}

// UpdateTradeRequest is the body of PUT /v1/trades/{uuid}. Every field is optional.
// Notes and GroupID accept an explicit null to clear the value.
type UpdateTradeRequest struct {
	Symbol       *string          `json:"symbol,omitempty"`
	StrikePrice  *decimal.Decimal `json:"strikePrice,omitempty"`
	ExpiryDate   *string          `json:"expiryDate,omitempty"`
	TradeType    *string          `json:"tradeType,omitempty"`
	OptionType   *string          `json:"optionType,omitempty"`
	Quantity     *int             `json:"quantity,omitempty"`
	CostBasis    *decimal.Decimal `json:"costBasis,omitempty"`
	CurrentValue *decimal.Decimal `json:"currentValue,omitempty"`
	Status       *string          `json:"status,omitempty"`
	Notes        Optional[string] `json:"notes"`
	GroupID      Optional[string] `json:"groupUuid"`
}
