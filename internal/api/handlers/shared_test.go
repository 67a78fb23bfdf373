package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ndewijer/TradeLog-Backend/internal/api/request"
)

// TestParseJSON is an internal test because parseJSON is unexported.
func TestParseJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid object", `{"name":"Calendar","strategyType":"CUSTOM","tradeUuids":[]}`, false},
		{"unknown fields are ignored", `{"name":"Calendar","color":"blue"}`, false},
		{"empty body", ``, true},
		{"malformed json", `{"name":`, true},
		{"wrong type", `{"name":42}`, true},
		{"two objects", `{"name":"a"}{"name":"b"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/groups", strings.NewReader(tt.body))

			got, err := parseJSON[request.CreateGroupRequest](req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.Name != "Calendar" {
				t.Errorf("Expected name Calendar, got %q", got.Name)
			}
		})
	}
}
