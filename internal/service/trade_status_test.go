package service_test

import (
	"testing"

	"github.com/ndewijer/TradeLog-Backend/internal/model"
	"github.com/ndewijer/TradeLog-Backend/internal/service"
)

// TestDeriveStatus_Thresholds checks the boundaries of the CLOSING_SOON window.
func TestDeriveStatus_Thresholds(t *testing.T) {
	tests := []struct {
		name string
		days int
		want model.TradeStatus
	}{
		{"long expired", -30, model.TradeStatusClosed},
		{"expired yesterday", -1, model.TradeStatusClosed},
		{"expires today", 0, model.TradeStatusClosingSoon},
		{"expires in a week", 7, model.TradeStatusClosingSoon},
		{"expires in eight days", 8, model.TradeStatusOpen},
		{"far out", 365, model.TradeStatusOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := service.DeriveStatus(tt.days); got != tt.want {
				t.Errorf("DeriveStatus(%d) = %s, want %s", tt.days, got, tt.want)
			}
		})
	}
}
