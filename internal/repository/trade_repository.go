package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ndewijer/TradeLog-Backend/internal/apperrors"
	"github.com/ndewijer/TradeLog-Backend/internal/model"
)

const tradeColumns = `
	id, symbol, strike_price, expiry_date, trade_type, option_type, quantity,
	cost_basis, current_value, status, notes, group_id, created_at, updated_at
`

// TradeRepository provides data access methods for the trade table.
type TradeRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewTradeRepository creates a new TradeRepository with the provided database connection.
func NewTradeRepository(db *sql.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// WithTx returns a new TradeRepository scoped to the provided transaction.
func (r *TradeRepository) WithTx(tx *sql.Tx) *TradeRepository {
	return &TradeRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *TradeRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetTrades retrieves all trades, newest first.
// Returns an empty slice if no trades exist.
func (r *TradeRepository) GetTrades(ctx context.Context) ([]model.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trade ORDER BY created_at DESC, id ASC`

	rows, err := r.getQuerier().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade table: %w", err)
	}
	defer rows.Close()

	return collectTrades(rows)
}

// GetTrade retrieves a single trade by its ID.
// Returns a NotFoundError if no trade with the given ID exists.
func (r *TradeRepository) GetTrade(ctx context.Context, tradeID string) (model.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trade WHERE id = ?`

	t, err := scanTrade(r.getQuerier().QueryRowContext(ctx, query, tradeID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Trade{}, apperrors.NewNotFound(apperrors.EntityTrade, tradeID)
	}
	if err != nil {
		return model.Trade{}, err
	}

	return t, nil
}

// GetTradesByIDs retrieves the trades matching the given IDs.
// IDs that do not resolve are silently absent from the result; callers compare lengths.
func (r *TradeRepository) GetTradesByIDs(ctx context.Context, tradeIDs []string) ([]model.Trade, error) {
	if len(tradeIDs) == 0 {
		return []model.Trade{}, nil
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `SELECT ` + tradeColumns + ` FROM trade WHERE id IN (` + placeholders(len(tradeIDs)) + `)`

	rows, err := r.getQuerier().QueryContext(ctx, query, toArgs(tradeIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade table: %w", err)
	}
	defer rows.Close()

	return collectTrades(rows)
}

// GetTradesByGroupIDs retrieves the member trades of the given groups.
// Trades are ordered by expiry date and grouped by group ID.
// If groupIDs is empty, returns an empty map.
func (r *TradeRepository) GetTradesByGroupIDs(ctx context.Context, groupIDs []string) (map[string][]model.Trade, error) {
	tradesByGroup := make(map[string][]model.Trade)
	if len(groupIDs) == 0 {
		return tradesByGroup, nil
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `SELECT ` + tradeColumns + `
		FROM trade
		WHERE group_id IN (` + placeholders(len(groupIDs)) + `)
		ORDER BY expiry_date ASC, created_at ASC
	`

	rows, err := r.getQuerier().QueryContext(ctx, query, toArgs(groupIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade table: %w", err)
	}
	defer rows.Close()

	trades, err := collectTrades(rows)
	if err != nil {
		return nil, err
	}

	for _, t := range trades {
		tradesByGroup[*t.GroupID] = append(tradesByGroup[*t.GroupID], t)
	}

	return tradesByGroup, nil
}

// GetTradesByGroupID retrieves the member trades of a single group ordered by expiry date.
func (r *TradeRepository) GetTradesByGroupID(ctx context.Context, groupID string) ([]model.Trade, error) {
	tradesByGroup, err := r.GetTradesByGroupIDs(ctx, []string{groupID})
	if err != nil {
		return nil, err
	}
	if trades, ok := tradesByGroup[groupID]; ok {
		return trades, nil
	}
	return []model.Trade{}, nil
}

// CountGroupMembers counts the trades referencing groupID, excluding excludeTradeID.
// Pass an empty excludeTradeID to count every member.
func (r *TradeRepository) CountGroupMembers(ctx context.Context, groupID, excludeTradeID string) (int, error) {
	query := `SELECT COUNT(*) FROM trade WHERE group_id = ? AND id != ?`

	var count int
	if err := r.getQuerier().QueryRowContext(ctx, query, groupID, excludeTradeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count group members: %w", err)
	}
	return count, nil
}

// InsertTrade creates a new trade row.
func (r *TradeRepository) InsertTrade(ctx context.Context, t *model.Trade) error {
	query := `INSERT INTO trade (` + tradeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.getQuerier().ExecContext(ctx, query,
		t.ID,
		t.Symbol,
		t.StrikePrice.String(),
		FormatTime(t.ExpiryDate),
		string(t.TradeType),
		string(t.OptionType),
		t.Quantity,
		t.CostBasis.String(),
		t.CurrentValue.String(),
		string(t.Status),
		nullableString(t.Notes),
		nullableString(t.GroupID),
		FormatTime(t.CreatedAt),
		FormatTime(t.UpdatedAt),
	)
	if err != nil {
		return translateError("failed to insert trade", err)
	}

	return nil
}

// UpdateTrade writes every mutable column of t.
// Returns a NotFoundError if the trade no longer exists.
func (r *TradeRepository) UpdateTrade(ctx context.Context, t *model.Trade) error {
	query := `
		UPDATE trade
		SET symbol = ?, strike_price = ?, expiry_date = ?, trade_type = ?, option_type = ?, quantity = ?,
			cost_basis = ?, current_value = ?, status = ?, notes = ?, group_id = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.getQuerier().ExecContext(ctx, query,
		t.Symbol,
		t.StrikePrice.String(),
		FormatTime(t.ExpiryDate),
		string(t.TradeType),
		string(t.OptionType),
		t.Quantity,
		t.CostBasis.String(),
		t.CurrentValue.String(),
		string(t.Status),
		nullableString(t.Notes),
		nullableString(t.GroupID),
		FormatTime(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return translateError("failed to update trade", err)
	}

	return requireAffected(result, apperrors.EntityTrade, t.ID)
}

// AssignGroup points every trade in tradeIDs at groupID and returns the number of rows changed.
func (r *TradeRepository) AssignGroup(ctx context.Context, tradeIDs []string, groupID string, updatedAt time.Time) (int64, error) {
	if len(tradeIDs) == 0 {
		return 0, nil
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `UPDATE trade SET group_id = ?, updated_at = ? WHERE id IN (` + placeholders(len(tradeIDs)) + `)`

	args := append([]any{groupID, FormatTime(updatedAt)}, toArgs(tradeIDs)...)
	result, err := r.getQuerier().ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translateError("failed to assign trades to group", err)
	}

	return result.RowsAffected()
}

// ClearGroup detaches every trade referencing groupID and returns the number of rows changed.
func (r *TradeRepository) ClearGroup(ctx context.Context, groupID string, updatedAt time.Time) (int64, error) {
	query := `UPDATE trade SET group_id = NULL, updated_at = ? WHERE group_id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, FormatTime(updatedAt), groupID)
	if err != nil {
		return 0, translateError("failed to detach trades from group", err)
	}

	return result.RowsAffected()
}

// DeleteTrade removes a trade by ID.
// Returns a NotFoundError if no trade with the given ID exists.
func (r *TradeRepository) DeleteTrade(ctx context.Context, tradeID string) error {
	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM trade WHERE id = ?`, tradeID)
	if err != nil {
		return translateError("failed to delete trade", err)
	}

	return requireAffected(result, apperrors.EntityTrade, tradeID)
}

// DeleteAllTrades removes every trade. Used by the seed command.
func (r *TradeRepository) DeleteAllTrades(ctx context.Context) error {
	if _, err := r.getQuerier().ExecContext(ctx, `DELETE FROM trade`); err != nil {
		return translateError("failed to delete trades", err)
	}
	return nil
}

func collectTrades(rows *sql.Rows) ([]model.Trade, error) {
	trades := []model.Trade{}

	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade table: %w", err)
	}

	return trades, nil
}

func scanTrade(s rowScanner) (model.Trade, error) {
	var t model.Trade
	var expiryStr, createdAtStr, updatedAtStr string
	var strikeStr, costStr, valueStr string
	var tradeType, optionType, status string
	var notes, groupID sql.NullString

	err := s.Scan(
		&t.ID,
		&t.Symbol,
		&strikeStr,
		&expiryStr,
		&tradeType,
		&optionType,
		&t.Quantity,
		&costStr,
		&valueStr,
		&status,
		&notes,
		&groupID,
		&createdAtStr,
		&updatedAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Trade{}, err
	}
	if err != nil {
		return model.Trade{}, fmt.Errorf("failed to scan trade table results: %w", err)
	}

	if t.StrikePrice, err = parseDecimal(strikeStr); err != nil {
		return model.Trade{}, err
	}
	if t.CostBasis, err = parseDecimal(costStr); err != nil {
		return model.Trade{}, err
	}
	if t.CurrentValue, err = parseDecimal(valueStr); err != nil {
		return model.Trade{}, err
	}

	if t.ExpiryDate, err = ParseTime(expiryStr); err != nil {
		return model.Trade{}, err
	}
	if t.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.Trade{}, err
	}
	if t.UpdatedAt, err = ParseTime(updatedAtStr); err != nil {
		return model.Trade{}, err
	}

	t.TradeType = model.TradeType(tradeType)
	t.OptionType = model.OptionType(optionType)
	t.Status = model.TradeStatus(status)
	t.Notes = stringPtr(notes)
	t.GroupID = stringPtr(groupID)

	return t, nil
}
