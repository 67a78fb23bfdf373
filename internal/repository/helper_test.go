package repository_test

import (
	"testing"
	"time"

	"github.com/ndewijer/TradeLog-Backend/internal/repository"
)

func TestParseTime(t *testing.T) {
	t.Run("round-trips FormatTime", func(t *testing.T) {
		want := time.Date(2025, 3, 3, 12, 30, 0, 123456789, time.FixedZone("CET", 3600))

		got, err := repository.ParseTime(repository.FormatTime(want))
		if err != nil {
			t.Fatalf("ParseTime() error = %v", err)
		}
		if !got.Equal(want) || got.Location() != time.UTC {
			t.Errorf("Expected %s in UTC, got %s", want.UTC(), got)
		}
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, s := range []string{"2025-03-03", "2025-03-03T12:00:00Z", ""} {
			if _, err := repository.ParseTime(s); err == nil {
				t.Errorf("Expected error for %q", s)
			}
		}
	})
}
