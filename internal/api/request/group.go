package request

// CreateGroupRequest is the body of POST /v1/groups.
type CreateGroupRequest struct {
	Name         string   `json:"name"`
	StrategyType string   `json:"strategyType"`
	Notes        *string  `json:"notes,omitempty"`
	TradeIDs     []string `json:"tradeUuids"`
}

// UpdateGroupRequest is the body of PATCH /v1/groups/{uuid}.
// Only metadata can change; membership is managed through trades.
type UpdateGroupRequest struct {
	Name         *string          `json:"name,omitempty"`
	StrategyType *string          `json:"strategyType,omitempty"`
	Notes        Optional[string] `json:"notes"`
}

// StrategyGroupRequest is the group metadata part of a strategy.
type StrategyGroupRequest struct {
	Name         string  `json:"name"`
	StrategyType string  `json:"strategyType"`
	Notes        *string `json:"notes,omitempty"`
}

// CreateStrategyRequest is the body of POST /v1/strategies: a group and its
// trades created in one transaction.
type CreateStrategyRequest struct {
	Group  StrategyGroupRequest `json:"group"`
	Trades []CreateTradeRequest `json:"trades"`
}
