package validation_test

import (
	"errors"
	"testing"

	"github.com/ndewijer/TradeLog-Backend/internal/api/request"
	"github.com/ndewijer/TradeLog-Backend/internal/validation"
)

const (
	idA = "6f1d3a6e-3f4b-4c1e-9f4e-1a2b3c4d5e6f"
	idB = "7a2e4b7f-4a5c-4d2f-8a5f-2b3c4d5e6f70"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *validation.Error, got %v", err)
	}
	return verr.Fields
}

func TestValidateCreateGroup(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := request.CreateGroupRequest{Name: "Calendar", StrategyType: "CALENDAR_SPREAD", TradeIDs: []string{idA, idB}}
		if err := validation.ValidateCreateGroup(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("one trade is not enough", func(t *testing.T) {
		req := request.CreateGroupRequest{Name: "Calendar", StrategyType: "CUSTOM", TradeIDs: []string{idA}}
		if _, ok := fieldsOf(t, validation.ValidateCreateGroup(req))["tradeUuids"]; !ok {
			t.Error("Expected error on tradeUuids")
		}
	})

	t.Run("malformed trade id", func(t *testing.T) {
		req := request.CreateGroupRequest{Name: "Calendar", StrategyType: "CUSTOM", TradeIDs: []string{idA, "x"}}
		if _, ok := fieldsOf(t, validation.ValidateCreateGroup(req))["tradeUuids"]; !ok {
			t.Error("Expected error on tradeUuids")
		}
	})

	t.Run("missing name and bad strategy", func(t *testing.T) {
		req := request.CreateGroupRequest{StrategyType: "IRON_CONDOR", TradeIDs: []string{idA, idB}}
		fields := fieldsOf(t, validation.ValidateCreateGroup(req))
		if _, ok := fields["name"]; !ok {
			t.Error("Expected error on name")
		}
		if _, ok := fields["strategyType"]; !ok {
			t.Error("Expected error on strategyType")
		}
	})
}

func TestValidateUpdateGroup(t *testing.T) {
	blank := " "
	if _, ok := fieldsOf(t, validation.ValidateUpdateGroup(request.UpdateGroupRequest{Name: &blank}))["name"]; !ok {
		t.Error("Expected error on name")
	}
	if err := validation.ValidateUpdateGroup(request.UpdateGroupRequest{Notes: request.Null[string]()}); err != nil {
		t.Errorf("Expected clearing notes to be valid, got %v", err)
	}
}

func TestValidateCreateStrategy(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := request.CreateStrategyRequest{
			Group:  request.StrategyGroupRequest{Name: "Calendar", StrategyType: "CALENDAR_SPREAD"},
			Trades: []request.CreateTradeRequest{validCreateTrade(), validCreateTrade()},
		}
		if err := validation.ValidateCreateStrategy(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("prefixes trade fields with their index", func(t *testing.T) {
		bad := validCreateTrade()
		bad.TradeType = "HOLD"
		req := request.CreateStrategyRequest{
			Group:  request.StrategyGroupRequest{Name: "Calendar", StrategyType: "CALENDAR_SPREAD"},
			Trades: []request.CreateTradeRequest{validCreateTrade(), bad},
		}

		fields := fieldsOf(t, validation.ValidateCreateStrategy(req))
		if _, ok := fields["trades[1].tradeType"]; !ok {
			t.Errorf("Expected error on trades[1].tradeType, got %v", fields)
		}
		if len(fields) != 1 {
			t.Errorf("Expected exactly one error, got %v", fields)
		}
	})

	t.Run("needs two trades and group metadata", func(t *testing.T) {
		req := request.CreateStrategyRequest{Trades: []request.CreateTradeRequest{validCreateTrade()}}

		fields := fieldsOf(t, validation.ValidateCreateStrategy(req))
		for _, field := range []string{"trades", "group.name", "group.strategyType"} {
			if _, ok := fields[field]; !ok {
				t.Errorf("Expected error on %s, got %v", field, fields)
			}
		}
	})
}
