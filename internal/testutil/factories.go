package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/TradeLog-Backend/internal/model"
	"github.com/ndewijer/TradeLog-Backend/internal/repository"
)

// TradeBuilder provides a fluent interface for creating test trades.
//
// Example usage:
//
//	// Simple creation with defaults
//	trade := testutil.NewTrade().Build(t, db)
//
//	// Customized trade
//	trade := testutil.NewTrade().
//	    WithSymbol("SPY").
//	    WithValues(1000, 1200).
//	    ExpiringIn(10).
//	    InGroup(group.ID).
//	    Build(t, db)
type TradeBuilder struct {
	ID           string
	Symbol       string
	StrikePrice  decimal.Decimal
	ExpiryDate   time.Time
	TradeType    model.TradeType
	OptionType   model.OptionType
	Quantity     int
	CostBasis    decimal.Decimal
	CurrentValue decimal.Decimal
	Status       model.TradeStatus
	Notes        *string
	GroupID      *string
	CreatedAt    time.Time
}

// NewTrade creates a TradeBuilder with sensible defaults: a single long call
// expiring 30 days after Now.
func NewTrade() *TradeBuilder {
	return &TradeBuilder{
		ID:           MakeID(),
		Symbol:       MakeSymbol("SPY"),
		StrikePrice:  decimal.NewFromInt(450),
		ExpiryDate:   DaysFromNow(30),
		TradeType:    model.TradeTypeBuy,
		OptionType:   model.OptionTypeCall,
		Quantity:     1,
		CostBasis:    decimal.NewFromInt(500),
		CurrentValue: decimal.NewFromInt(520),
		Status:       model.TradeStatusOpen,
		CreatedAt:    Now,
	}
}

// WithID sets a custom ID.
func (b *TradeBuilder) WithID(id string) *TradeBuilder {
	b.ID = id
	return b
}

// WithSymbol sets a custom symbol.
func (b *TradeBuilder) WithSymbol(symbol string) *TradeBuilder {
	b.Symbol = symbol
	return b
}

// WithValues sets cost basis and current value.
func (b *TradeBuilder) WithValues(costBasis, currentValue float64) *TradeBuilder {
	b.CostBasis = decimal.NewFromFloat(costBasis)
	b.CurrentValue = decimal.NewFromFloat(currentValue)
	return b
}

// WithExpiry sets an absolute expiry date.
func (b *TradeBuilder) WithExpiry(expiry time.Time) *TradeBuilder {
	b.ExpiryDate = expiry
	return b
}

// ExpiringIn sets the expiry date to Now plus days.
func (b *TradeBuilder) ExpiringIn(days int) *TradeBuilder {
	b.ExpiryDate = DaysFromNow(days)
	return b
}

// WithType sets the trade and option type.
func (b *TradeBuilder) WithType(tradeType model.TradeType, optionType model.OptionType) *TradeBuilder {
	b.TradeType = tradeType
	b.OptionType = optionType
	return b
}

// WithQuantity sets a custom quantity.
func (b *TradeBuilder) WithQuantity(quantity int) *TradeBuilder {
	b.Quantity = quantity
	return b
}

// WithStatus sets the recorded status.
func (b *TradeBuilder) WithStatus(status model.TradeStatus) *TradeBuilder {
	b.Status = status
	return b
}

// WithNotes sets notes.
func (b *TradeBuilder) WithNotes(notes string) *TradeBuilder {
	b.Notes = &notes
	return b
}

// InGroup attaches the trade to a group. The group must already exist.
func (b *TradeBuilder) InGroup(groupID string) *TradeBuilder {
	b.GroupID = &groupID
	return b
}

// CreatedOn sets the creation timestamp, which drives list ordering.
func (b *TradeBuilder) CreatedOn(ts time.Time) *TradeBuilder {
	b.CreatedAt = ts
	return b
}

// Build creates the trade in the database and returns it.
func (b *TradeBuilder) Build(t *testing.T, db *sql.DB) model.Trade {
	t.Helper()

	query := `
		INSERT INTO trade (
			id, symbol, strike_price, expiry_date, trade_type, option_type, quantity,
			cost_basis, current_value, status, notes, group_id, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID,
		b.Symbol,
		b.StrikePrice.String(),
		repository.FormatTime(b.ExpiryDate),
		string(b.TradeType),
		string(b.OptionType),
		b.Quantity,
		b.CostBasis.String(),
		b.CurrentValue.String(),
		string(b.Status),
		nullable(b.Notes),
		nullable(b.GroupID),
		repository.FormatTime(b.CreatedAt),
		repository.FormatTime(b.CreatedAt),
	)
	if err != nil {
		t.Fatalf("Failed to create test trade: %v", err)
	}

	return model.Trade{
		ID:           b.ID,
		Symbol:       b.Symbol,
		StrikePrice:  b.StrikePrice,
		ExpiryDate:   b.ExpiryDate.UTC(),
		TradeType:    b.TradeType,
		OptionType:   b.OptionType,
		Quantity:     b.Quantity,
		CostBasis:    b.CostBasis,
		CurrentValue: b.CurrentValue,
		Status:       b.Status,
		Notes:        b.Notes,
		GroupID:      b.GroupID,
		CreatedAt:    b.CreatedAt.UTC(),
		UpdatedAt:    b.CreatedAt.UTC(),
	}
}

// GroupBuilder provides a fluent interface for creating test groups.
// Build inserts only the group row; attach members with TradeBuilder.InGroup
// or use CreateGroupWithTrades.
//
// Example usage:
//
//	group := testutil.NewGroup().WithStrategy(model.StrategyCustom).Build(t, db)
type GroupBuilder struct {
	ID           string
	Name         string
	StrategyType model.StrategyType
	Notes        *string
	CreatedAt    time.Time
}

// NewGroup creates a GroupBuilder with sensible defaults.
func NewGroup() *GroupBuilder {
	return &GroupBuilder{
		ID:           MakeID(),
		Name:         MakeGroupName("Calendar"),
		StrategyType: model.StrategyCalendarSpread,
		CreatedAt:    Now,
	}
}

// WithID sets a custom ID.
func (b *GroupBuilder) WithID(id string) *GroupBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *GroupBuilder) WithName(name string) *GroupBuilder {
	b.Name = name
	return b
}

// WithStrategy sets the strategy type.
func (b *GroupBuilder) WithStrategy(strategy model.StrategyType) *GroupBuilder {
	b.StrategyType = strategy
	return b
}

// WithNotes sets notes.
func (b *GroupBuilder) WithNotes(notes string) *GroupBuilder {
	b.Notes = &notes
	return b
}

// CreatedOn sets the creation timestamp, which drives list ordering.
func (b *GroupBuilder) CreatedOn(ts time.Time) *GroupBuilder {
	b.CreatedAt = ts
	return b
}

// Build creates the group in the database and returns it.
func (b *GroupBuilder) Build(t *testing.T, db *sql.DB) model.Group {
	t.Helper()

	query := `
		INSERT INTO trade_group (id, name, strategy_type, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID,
		b.Name,
		string(b.StrategyType),
		nullable(b.Notes),
		repository.FormatTime(b.CreatedAt),
		repository.FormatTime(b.CreatedAt),
	)
	if err != nil {
		t.Fatalf("Failed to create test group: %v", err)
	}

	return model.Group{
		ID:           b.ID,
		Name:         b.Name,
		StrategyType: b.StrategyType,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt.UTC(),
		UpdatedAt:    b.CreatedAt.UTC(),
	}
}

// Convenience functions

// CreateTrade creates an ungrouped trade with default values.
//
// Example usage:
//
//	trade := testutil.CreateTrade(t, db)
func CreateTrade(t *testing.T, db *sql.DB) model.Trade {
	t.Helper()
	return NewTrade().Build(t, db)
}

// CreateGroupWithTrades creates a group with n default member trades.
//
// Example usage:
//
//	group, trades := testutil.CreateGroupWithTrades(t, db, 3)
func CreateGroupWithTrades(t *testing.T, db *sql.DB, n int) (model.Group, []model.Trade) {
	t.Helper()

	group := NewGroup().Build(t, db)
	trades := make([]model.Trade, n)
	for i := range trades {
		trades[i] = NewTrade().InGroup(group.ID).Build(t, db)
	}
	return group, trades
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
