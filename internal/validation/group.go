package validation

import (
	"fmt"
	"strings"

	"github.com/ndewijer/TradeLog-Backend/internal/api/request"
	"github.com/ndewijer/TradeLog-Backend/internal/model"
)

// MinGroupTrades is the minimum number of trades a group or strategy must reference.
const MinGroupTrades = 2

// maxGroupNameLength matches the width of the trade_group.name column.
const maxGroupNameLength = 255

// ValidateCreateGroup validates a group creation request.
//
// Required fields:
//   - name: Non-blank
//   - strategyType: CALENDAR_SPREAD, RATIO_CALENDAR_SPREAD or CUSTOM
//   - tradeUuids: At least 2 valid UUIDs
func ValidateCreateGroup(req request.CreateGroupRequest) error {
	errors := make(map[string]string)

	validateGroupName(errors, "name", req.Name)
	validateStrategyType(errors, "strategyType", req.StrategyType)

	if len(req.TradeIDs) < MinGroupTrades {
		errors["tradeUuids"] = fmt.Sprintf("a group must have at least %d trades", MinGroupTrades)
	} else if err := ValidateUUIDs(req.TradeIDs); err != nil {
		errors["tradeUuids"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateGroup validates a partial group update.
func ValidateUpdateGroup(req request.UpdateGroupRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		validateGroupName(errors, "name", *req.Name)
	}
	if req.StrategyType != nil {
		validateStrategyType(errors, "strategyType", *req.StrategyType)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateCreateStrategy validates the group metadata and every trade of a strategy.
// Trade messages are prefixed with their position, e.g. "trades[1].quantity".
func ValidateCreateStrategy(req request.CreateStrategyRequest) error {
	errors := make(map[string]string)

	validateGroupName(errors, "group.name", req.Group.Name)
	validateStrategyType(errors, "group.strategyType", req.Group.StrategyType)

	if len(req.Trades) < MinGroupTrades {
		errors["trades"] = fmt.Sprintf("a strategy must have at least %d trades", MinGroupTrades)
	}
	for i, trade := range req.Trades {
		collectCreateTrade(errors, fmt.Sprintf("trades[%d].", i), trade)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateGroupName(errors map[string]string, field, name string) {
	switch trimmed := strings.TrimSpace(name); {
	case trimmed == "":
		errors[field] = "name is required"
	case len(trimmed) > maxGroupNameLength:
		errors[field] = fmt.Sprintf("name must be at most %d characters", maxGroupNameLength)
	}
}

func validateStrategyType(errors map[string]string, field, strategyType string) {
	if strings.TrimSpace(strategyType) == "" {
		errors[field] = "strategyType is required"
	} else if !model.StrategyType(strategyType).Valid() {
		errors[field] = fmt.Sprintf("invalid strategyType: %s", strategyType)
	}
}
