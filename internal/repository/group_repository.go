package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/TradeLog-Backend/internal/apperrors"
	"github.com/ndewijer/TradeLog-Backend/internal/model"
)

// GroupRepository provides data access methods for the trade_group table.
// Membership lives on the trade table; see TradeRepository for member queries.
type GroupRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewGroupRepository creates a new GroupRepository with the provided database connection.
func NewGroupRepository(db *sql.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// WithTx returns a new GroupRepository scoped to the provided transaction.
func (r *GroupRepository) WithTx(tx *sql.Tx) *GroupRepository {
	return &GroupRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *GroupRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetGroups retrieves all groups, newest first.
func (r *GroupRepository) GetGroups(ctx context.Context) ([]model.Group, error) {
	query := `
		SELECT id, name, strategy_type, notes, created_at, updated_at
		FROM trade_group
		ORDER BY created_at DESC, id ASC
	`

	rows, err := r.getQuerier().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade_group table: %w", err)
	}
	defer rows.Close()

	groups := []model.Group{}

	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade_group table: %w", err)
	}

	return groups, nil
}

// GetGroup retrieves a single group by ID.
// Returns a NotFoundError if no group with the given ID exists.
func (r *GroupRepository) GetGroup(ctx context.Context, groupID string) (model.Group, error) {
	query := `
		SELECT id, name, strategy_type, notes, created_at, updated_at
		FROM trade_group
		WHERE id = ?
	`

	g, err := scanGroup(r.getQuerier().QueryRowContext(ctx, query, groupID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Group{}, apperrors.NewNotFound(apperrors.EntityGroup, groupID)
	}
	if err != nil {
		return model.Group{}, err
	}

	return g, nil
}

// InsertGroup creates a new group row.
func (r *GroupRepository) InsertGroup(ctx context.Context, g *model.Group) error {
	query := `
		INSERT INTO trade_group (id, name, strategy_type, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		g.ID,
		g.Name,
		string(g.StrategyType),
		nullableString(g.Notes),
		FormatTime(g.CreatedAt),
		FormatTime(g.UpdatedAt),
	)
	if err != nil {
		return translateError("failed to insert group", err)
	}

	return nil
}

// UpdateGroup writes the metadata columns of g. Membership is not touched.
// Returns a NotFoundError if the group no longer exists.
func (r *GroupRepository) UpdateGroup(ctx context.Context, g *model.Group) error {
	query := `
		UPDATE trade_group
		SET name = ?, strategy_type = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.getQuerier().ExecContext(ctx, query,
		g.Name,
		string(g.StrategyType),
		nullableString(g.Notes),
		FormatTime(g.UpdatedAt),
		g.ID,
	)
	if err != nil {
		return translateError("failed to update group", err)
	}

	return requireAffected(result, apperrors.EntityGroup, g.ID)
}

// DeleteGroup removes a group by ID. Member trades are detached by the
// ON DELETE SET NULL foreign key.
// Returns a NotFoundError if no group with the given ID exists.
func (r *GroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM trade_group WHERE id = ?`, groupID)
	if err != nil {
		return translateError("failed to delete group", err)
	}

	return requireAffected(result, apperrors.EntityGroup, groupID)
}

// DeleteGroupIfExists removes a group by ID and reports whether a row was removed.
// A missing group is not an error; the dissolution path relies on this when it
// loses a race against another dissolution of the same group.
func (r *GroupRepository) DeleteGroupIfExists(ctx context.Context, groupID string) (bool, error) {
	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM trade_group WHERE id = ?`, groupID)
	if err != nil {
		return false, translateError("failed to delete group", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// DeleteAllGroups removes every group. Used by the seed command.
func (r *GroupRepository) DeleteAllGroups(ctx context.Context) error {
	if _, err := r.getQuerier().ExecContext(ctx, `DELETE FROM trade_group`); err != nil {
		return translateError("failed to delete groups", err)
	}
	return nil
}

func scanGroup(s rowScanner) (model.Group, error) {
	var g model.Group
	var strategyType, createdAtStr, updatedAtStr string
	var notes sql.NullString

	err := s.Scan(&g.ID, &g.Name, &strategyType, &notes, &createdAtStr, &updatedAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Group{}, err
	}
	if err != nil {
		return model.Group{}, fmt.Errorf("failed to scan trade_group table results: %w", err)
	}

	if g.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return model.Group{}, err
	}
	if g.UpdatedAt, err = ParseTime(updatedAtStr); err != nil {
		return model.Group{}, err
	}

	g.StrategyType = model.StrategyType(strategyType)
	g.Notes = stringPtr(notes)

	return g, nil
}
