package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/TradeLog-Backend/internal/api/request"
	"github.com/ndewijer/TradeLog-Backend/internal/model"
)

// maxSymbolLength matches the width of the trade.symbol column.
const maxSymbolLength = 20

// moneyPlaces is the number of decimal places stored for prices and values.
const moneyPlaces = 2

// ValidateCreateTrade validates a trade creation request.
//
// Required fields:
//   - symbol: Non-blank, at most 20 characters
//   - strikePrice: Must be >= 0 with at most 2 decimal places
//   - expiryDate: YYYY-MM-DD or RFC3339
//   - tradeType: BUY or SELL
//   - optionType: CALL or PUT
//   - quantity: Must be >= 1
//   - costBasis, currentValue: Must be >= 0 with at most 2 decimal places
//
// Optional fields:
//   - groupUuid: Must be a valid UUID if provided
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTrade(req request.CreateTradeRequest) error {
	errors := make(map[string]string)
	collectCreateTrade(errors, "", req)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// collectCreateTrade adds the messages for req to errors, prefixing field names.
func collectCreateTrade(errors map[string]string, prefix string, req request.CreateTradeRequest) {
	validateSymbol(errors, prefix+"symbol", req.Symbol)

	requireNonNegative(errors, prefix+"strikePrice", req.StrikePrice)
	requireNonNegative(errors, prefix+"costBasis", req.CostBasis)
	requireNonNegative(errors, prefix+"currentValue", req.CurrentValue)

	if strings.TrimSpace(req.ExpiryDate) == "" {
		errors[prefix+"expiryDate"] = "expiryDate is required"
	} else if _, err := ParseDate(req.ExpiryDate); err != nil {
		errors[prefix+"expiryDate"] = err.Error()
	}

	validateTradeType(errors, prefix+"tradeType", req.TradeType)
	validateOptionType(errors, prefix+"optionType", req.OptionType)

	if req.Quantity == nil {
		errors[prefix+"quantity"] = "quantity is required"
	} else if *req.Quantity < 1 {
		errors[prefix+"quantity"] = "quantity must be at least 1"
	}

	if req.GroupID != nil {
		if err := ValidateUUID(*req.GroupID); err != nil {
			errors[prefix+"groupUuid"] = err.Error()
		}
	}
}

// ValidateUpdateTrade validates a trade update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
// groupUuid may be null to detach the trade from its group.
func ValidateUpdateTrade(req request.UpdateTradeRequest) error {
	errors := make(map[string]string)

	if req.Symbol != nil {
		validateSymbol(errors, "symbol", *req.Symbol)
	}
	if req.StrikePrice != nil {
		requireNonNegative(errors, "strikePrice", req.StrikePrice)
	}
	if req.CostBasis != nil {
		requireNonNegative(errors, "costBasis", req.CostBasis)
	}
	if req.CurrentValue != nil {
		requireNonNegative(errors, "currentValue", req.CurrentValue)
	}
	if req.ExpiryDate != nil {
		if _, err := ParseDate(*req.ExpiryDate); err != nil {
			errors["expiryDate"] = err.Error()
		}
	}
	if req.TradeType != nil {
		validateTradeType(errors, "tradeType", *req.TradeType)
	}
	if req.OptionType != nil {
		validateOptionType(errors, "optionType", *req.OptionType)
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		errors["quantity"] = "quantity must be at least 1"
	}
	if req.Status != nil && !model.TradeStatus(*req.Status).Valid() {
		errors["status"] = fmt.Sprintf("invalid status: %s", *req.Status)
	}
	if req.GroupID.Set && req.GroupID.Value != nil {
		if err := ValidateUUID(*req.GroupID.Value); err != nil {
			errors["groupUuid"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns the instant in UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	return t.UTC(), nil
}

func validateSymbol(errors map[string]string, field, symbol string) {
	switch trimmed := strings.TrimSpace(symbol); {
	case trimmed == "":
		errors[field] = "symbol is required"
	case len(trimmed) > maxSymbolLength:
		errors[field] = fmt.Sprintf("symbol must be at most %d characters", maxSymbolLength)
	}
}

func validateTradeType(errors map[string]string, field, tradeType string) {
	if strings.TrimSpace(tradeType) == "" {
		errors[field] = "tradeType is required"
	} else if !model.TradeType(tradeType).Valid() {
		errors[field] = fmt.Sprintf("invalid tradeType: %s", tradeType)
	}
}

func validateOptionType(errors map[string]string, field, optionType string) {
	if strings.TrimSpace(optionType) == "" {
		errors[field] = "optionType is required"
	} else if !model.OptionType(optionType).Valid() {
		errors[field] = fmt.Sprintf("invalid optionType: %s", optionType)
	}
}

func requireNonNegative(errors map[string]string, field string, v *decimal.Decimal) {
	name := field
	if i := strings.LastIndexByte(field, '.'); i >= 0 {
		name = field[i+1:]
	}

	if v == nil {
		errors[field] = name + " is required"
	} else if v.IsNegative() {
		errors[field] = name + " cannot be negative"
	} else if !v.Equal(v.Truncate(moneyPlaces)) {
		errors[field] = fmt.Sprintf("%s must have at most %d decimal places", name, moneyPlaces)
	}
}
