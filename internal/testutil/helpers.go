package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/TradeLog-Backend/internal/repository"
	"github.com/ndewijer/TradeLog-Backend/internal/service"
)

// Now is the fixed clock used by the test services. Builders default their
// expiry dates relative to it, so derived fields are deterministic.
var Now = time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

// Clock returns Now.
func Clock() time.Time {
	return Now
}

// DaysFromNow returns Now shifted by the given number of days.
func DaysFromNow(days int) time.Time {
	return Now.AddDate(0, 0, days)
}

func NewTestTradeService(t *testing.T, db *sql.DB, opts ...service.Option) *service.TradeService {
	t.Helper()

	return service.NewTradeService(
		db,
		repository.NewTradeRepository(db),
		repository.NewGroupRepository(db),
		append([]service.Option{service.WithClock(Clock)}, opts...)...,
	)
}

func NewTestGroupService(t *testing.T, db *sql.DB, opts ...service.Option) *service.GroupService {
	t.Helper()

	return service.NewGroupService(
		db,
		repository.NewTradeRepository(db),
		repository.NewGroupRepository(db),
		append([]service.Option{service.WithClock(Clock)}, opts...)...,
	)
}

func NewTestSeedService(t *testing.T, db *sql.DB) *service.SeedService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	clock := service.WithClock(Clock)

	return service.NewSeedService(
		db,
		tradeRepo,
		groupRepo,
		service.NewTradeService(db, tradeRepo, groupRepo, clock),
		service.NewGroupService(db, tradeRepo, groupRepo, clock),
		clock,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeSymbol generates a short ticker symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("SPY")
//	// Returns: "SPY1A2B"
func MakeSymbol(base string) string {
	if base == "" {
		base = "TST"
	}
	return base + randomAlphanumeric(4)
}

// MakeGroupName generates a unique group name for testing.
//
// Example usage:
//
//	name := testutil.MakeGroupName("Calendar")
//	// Returns: "Calendar ABC123"
func MakeGroupName(base string) string {
	if base == "" {
		base = "Group"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
