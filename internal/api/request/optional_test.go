package request

import (
	"encoding/json"
	"testing"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Notes Optional[string] `json:"notes"`
	}

	t.Run("absent key stays unset", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
			t.Fatalf("Unmarshal returned unexpected error: %v", err)
		}
		if p.Notes.Set {
			t.Error("Expected Set to be false for absent key")
		}
	})

	t.Run("explicit null is set with nil value", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"notes": null}`), &p); err != nil {
			t.Fatalf("Unmarshal returned unexpected error: %v", err)
		}
		if !p.Notes.Set {
			t.Error("Expected Set to be true for explicit null")
		}
		if p.Notes.Value != nil {
			t.Errorf("Expected nil value, got %q", *p.Notes.Value)
		}
	})

	t.Run("value is decoded", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"notes": "roll next week"}`), &p); err != nil {
			t.Fatalf("Unmarshal returned unexpected error: %v", err)
		}
		if !p.Notes.Set || p.Notes.Value == nil || *p.Notes.Value != "roll next week" {
			t.Errorf("Unexpected optional: %+v", p.Notes)
		}
	})

	t.Run("wrong type fails", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"notes": 42}`), &p); err == nil {
			t.Error("Expected error for non-string value, got nil")
		}
	})
}
