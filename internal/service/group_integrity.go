package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ndewijer/TradeLog-Backend/internal/repository"
)

// minGroupMembers is the smallest membership a persisted group may have.
const minGroupMembers = 2

// dissolveIfUndersized enforces the group membership invariant inside a transaction.
//
// It counts the members of groupID other than excludeTradeID. When fewer than
// minGroupMembers remain, every member is detached and the group row is removed.
// Detaching happens first so the group row is never deleted while referenced.
// A group that is already gone (lost race) counts as dissolved by someone else
// and is not an error.
//
// Reports whether this call removed the group row.
func dissolveIfUndersized(
	ctx context.Context,
	trades *repository.TradeRepository,
	groups *repository.GroupRepository,
	groupID, excludeTradeID string,
	now time.Time,
) (bool, error) {
	remaining, err := trades.CountGroupMembers(ctx, groupID, excludeTradeID)
	if err != nil {
		return false, err
	}
	if remaining >= minGroupMembers {
		return false, nil
	}

	if _, err := trades.ClearGroup(ctx, groupID, now); err != nil {
		return false, err
	}

	deleted, err := groups.DeleteGroupIfExists(ctx, groupID)
	if err != nil {
		return false, fmt.Errorf("failed to dissolve group %s: %w", groupID, err)
	}
	return deleted, nil
}
