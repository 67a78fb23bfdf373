package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/TradeLog-Backend/internal/api/request"
	"github.com/ndewijer/TradeLog-Backend/internal/apperrors"
	"github.com/ndewijer/TradeLog-Backend/internal/validation"
)

func validCreateTrade() request.CreateTradeRequest {
	strike := decimal.NewFromInt(450)
	cost := decimal.NewFromInt(500)
	value := decimal.NewFromInt(520)
	qty := 1
	return request.CreateTradeRequest{
		Symbol:       "SPY",
		StrikePrice:  &strike,
		ExpiryDate:   "2025-04-18",
		TradeType:    "BUY",
		OptionType:   "CALL",
		Quantity:     &qty,
		CostBasis:    &cost,
		CurrentValue: &value,
	}
}

func TestValidateCreateTrade(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	subCent := decimal.RequireFromString("1000.005")
	twoPlaces := decimal.RequireFromString("1200.50")
	padded := decimal.RequireFromString("450.500")
	zero := 0
	badGroup := "not-a-uuid"

	tests := []struct {
		name      string
		mutate    func(r *request.CreateTradeRequest)
		wantField string
	}{
		{"valid", func(*request.CreateTradeRequest) {}, ""},
		{"RFC3339 expiry", func(r *request.CreateTradeRequest) { r.ExpiryDate = "2025-04-18T20:00:00Z" }, ""},
		{"blank symbol", func(r *request.CreateTradeRequest) { r.Symbol = "  " }, "symbol"},
		{"long symbol", func(r *request.CreateTradeRequest) { r.Symbol = strings.Repeat("X", 21) }, "symbol"},
		{"missing strike", func(r *request.CreateTradeRequest) { r.StrikePrice = nil }, "strikePrice"},
		{"negative cost", func(r *request.CreateTradeRequest) { r.CostBasis = &negative }, "costBasis"},
		{"negative value", func(r *request.CreateTradeRequest) { r.CurrentValue = &negative }, "currentValue"},
		{"sub-cent cost", func(r *request.CreateTradeRequest) { r.CostBasis = &subCent }, "costBasis"},
		{"sub-cent strike", func(r *request.CreateTradeRequest) { r.StrikePrice = &subCent }, "strikePrice"},
		{"two place value", func(r *request.CreateTradeRequest) { r.CurrentValue = &twoPlaces }, ""},
		{"trailing zeros", func(r *request.CreateTradeRequest) { r.StrikePrice = &padded }, ""},
		{"missing expiry", func(r *request.CreateTradeRequest) { r.ExpiryDate = "" }, "expiryDate"},
		{"bad expiry", func(r *request.CreateTradeRequest) { r.ExpiryDate = "18/04/2025" }, "expiryDate"},
		{"bad trade type", func(r *request.CreateTradeRequest) { r.TradeType = "HOLD" }, "tradeType"},
		{"bad option type", func(r *request.CreateTradeRequest) { r.OptionType = "" }, "optionType"},
		{"zero quantity", func(r *request.CreateTradeRequest) { r.Quantity = &zero }, "quantity"},
		{"bad group id", func(r *request.CreateTradeRequest) { r.GroupID = &badGroup }, "groupUuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateTrade()
			tt.mutate(&req)

			err := validation.ValidateCreateTrade(req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}

			var verr *validation.Error
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *validation.Error, got %v", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Expected error on %s, got %v", tt.wantField, verr.Fields)
			}
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Error("Expected error to match ErrValidation")
			}
		})
	}
}

func TestValidateUpdateTrade(t *testing.T) {
	t.Run("empty update is valid", func(t *testing.T) {
		if err := validation.ValidateUpdateTrade(request.UpdateTradeRequest{}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("null group is valid", func(t *testing.T) {
		req := request.UpdateTradeRequest{GroupID: request.Null[string]()}
		if err := validation.ValidateUpdateTrade(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("reports every bad field", func(t *testing.T) {
		status := "EXPIRED"
		empty := ""
		zero := 0
		req := request.UpdateTradeRequest{
			Symbol:   &empty,
			Quantity: &zero,
			Status:   &status,
			GroupID:  request.Some("nope"),
		}

		var verr *validation.Error
		if !errors.As(validation.ValidateUpdateTrade(req), &verr) {
			t.Fatal("Expected *validation.Error")
		}
		for _, field := range []string{"symbol", "quantity", "status", "groupUuid"} {
			if _, ok := verr.Fields[field]; !ok {
				t.Errorf("Expected error on %s, got %v", field, verr.Fields)
			}
		}
	})
}

func TestValidateUpdateTrade_DecimalPlaces(t *testing.T) {
	value := decimal.RequireFromString("1200.0049")
	req := request.UpdateTradeRequest{CurrentValue: &value}

	var verr *validation.Error
	if !errors.As(validation.ValidateUpdateTrade(req), &verr) {
		t.Fatal("Expected *validation.Error")
	}
	if got := verr.Fields["currentValue"]; got != "currentValue must have at most 2 decimal places" {
		t.Errorf("Unexpected message %q", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := validation.ParseDate("2025-04-18T22:00:00+02:00")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Location().String() != "UTC" || got.Hour() != 20 {
		t.Errorf("Expected 20:00 UTC, got %s", got)
	}
}

func TestError_Messages(t *testing.T) {
	err := &validation.Error{Fields: map[string]string{
		"symbol":   "symbol is required",
		"quantity": "quantity must be at least 1",
	}}

	msgs := err.Messages()
	if len(msgs) != 2 || msgs[0] != "quantity: quantity must be at least 1" || msgs[1] != "symbol: symbol is required" {
		t.Errorf("Expected sorted messages, got %v", msgs)
	}
	if err.Error() != strings.Join(msgs, "; ") {
		t.Errorf("Unexpected Error(): %s", err.Error())
	}
}
