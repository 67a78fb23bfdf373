package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ndewijer/TradeLog-Backend/internal/api/request"
	"github.com/ndewijer/TradeLog-Backend/internal/apperrors"
	"github.com/ndewijer/TradeLog-Backend/internal/model"
	"github.com/ndewijer/TradeLog-Backend/internal/repository"
	"github.com/ndewijer/TradeLog-Backend/internal/validation"
)

// GroupService handles group and strategy business logic operations.
type GroupService struct {
	db        *sql.DB
	tradeRepo *repository.TradeRepository
	groupRepo *repository.GroupRepository
	options
}

// NewGroupService creates a new GroupService with the provided repository dependencies.
func NewGroupService(
	db *sql.DB,
	tradeRepo *repository.TradeRepository,
	groupRepo *repository.GroupRepository,
	opts ...Option,
) *GroupService {
	return &GroupService{
		db:        db,
		tradeRepo: tradeRepo,
		groupRepo: groupRepo,
		options:   newOptions(opts),
	}
}

// GetGroups retrieves every group, newest first, with metrics and member trades.
func (s *GroupService) GetGroups(ctx context.Context) ([]model.GroupResponse, error) {
	groups, err := s.groupRepo.GetGroups(ctx)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return []model.GroupResponse{}, nil
	}

	groupIDs := make([]string, len(groups))
	for i, g := range groups {
		groupIDs[i] = g.ID
	}

	tradesByGroup, err := s.tradeRepo.GetTradesByGroupIDs(ctx, groupIDs)
	if err != nil {
		return nil, err
	}

	now := s.now()
	responses := make([]model.GroupResponse, 0, len(groups))
	for _, g := range groups {
		resp, err := EnrichGroup(g, tradesByGroup[g.ID], now)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", g.ID, err)
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// GetGroup retrieves a single group with metrics and member trades.
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (model.GroupResponse, error) {
	return s.loadGroup(ctx, s.groupRepo, s.tradeRepo, groupID)
}

// CreateGroup groups existing trades under a new group.
//
// Duplicate trade ids are collapsed before the minimum is checked. Every
// referenced trade must exist. Trades that already belong to another group are
// moved, and each group they leave is dissolved if it drops below two members.
// The whole operation is one transaction.
func (s *GroupService) CreateGroup(ctx context.Context, req request.CreateGroupRequest) (model.GroupResponse, error) {
	tradeIDs := uniqueStrings(req.TradeIDs)
	if len(tradeIDs) < validation.MinGroupTrades {
		return model.GroupResponse{}, validation.NewError("tradeUuids",
			fmt.Sprintf("a group must have at least %d distinct trades", validation.MinGroupTrades))
	}

	now := s.now()
	group := model.Group{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		StrategyType: model.StrategyType(req.StrategyType),
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var created model.GroupResponse
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		tradeRepo := s.tradeRepo.WithTx(tx)
		groupRepo := s.groupRepo.WithTx(tx)

		trades, err := tradeRepo.GetTradesByIDs(ctx, tradeIDs)
		if err != nil {
			return err
		}
		if len(trades) != len(tradeIDs) {
			return validation.NewError("tradeUuids", apperrors.ErrTradesNotFound.Error())
		}

		if err := groupRepo.InsertGroup(ctx, &group); err != nil {
			return err
		}
		if _, err := tradeRepo.AssignGroup(ctx, tradeIDs, group.ID, now); err != nil {
			return err
		}

		for _, previous := range previousGroups(trades) {
			dissolved, err := dissolveIfUndersized(ctx, tradeRepo, groupRepo, previous, "", now)
			if err != nil {
				return err
			}
			if dissolved {
				s.recorder.GroupDissolved()
				s.logger.Info().
					Str("group_id", previous).
					Str("new_group_id", group.ID).
					Msg("group dissolved after its trades were regrouped")
			}
		}

		created, err = s.loadGroup(ctx, groupRepo, tradeRepo, group.ID)
		return err
	})
	if err != nil {
		return model.GroupResponse{}, err
	}

	return created, nil
}

// CreateStrategy creates a group and all of its trades atomically.
// Each trade is created with status OPEN and its group pointer preset; any
// groupUuid on the individual trade specs is ignored. A failure on any trade
// rolls back the entire strategy.
func (s *GroupService) CreateStrategy(ctx context.Context, req request.CreateStrategyRequest) (model.GroupResponse, error) {
	if len(req.Trades) < validation.MinGroupTrades {
		return model.GroupResponse{}, validation.NewError("trades",
			fmt.Sprintf("a strategy must have at least %d trades", validation.MinGroupTrades))
	}

	now := s.now()
	group := model.Group{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Group.Name),
		StrategyType: model.StrategyType(req.Group.StrategyType),
		Notes:        req.Group.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var created model.GroupResponse
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		tradeRepo := s.tradeRepo.WithTx(tx)
		groupRepo := s.groupRepo.WithTx(tx)

		if err := groupRepo.InsertGroup(ctx, &group); err != nil {
			return err
		}

		for i, leg := range req.Trades {
			leg.GroupID = nil
			trade, err := tradeFromRequest(leg, now)
			if err != nil {
				return fmt.Errorf("trades[%d]: %w", i, err)
			}
			trade.GroupID = &group.ID

			if err := tradeRepo.InsertTrade(ctx, &trade); err != nil {
				return fmt.Errorf("trades[%d]: %w", i, err)
			}
		}

		var err error
		created, err = s.loadGroup(ctx, groupRepo, tradeRepo, group.ID)
		return err
	})
	if err != nil {
		return model.GroupResponse{}, err
	}

	s.recorder.StrategyCreated()
	s.logger.Info().
		Str("group_id", group.ID).
		Str("strategy_type", string(group.StrategyType)).
		Int("trades", len(req.Trades)).
		Msg("strategy created")

	return created, nil
}

// UpdateGroup applies a partial metadata update. Membership is untouched.
func (s *GroupService) UpdateGroup(ctx context.Context, groupID string, req request.UpdateGroupRequest) (model.GroupResponse, error) {
	now := s.now()

	var updated model.GroupResponse
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		tradeRepo := s.tradeRepo.WithTx(tx)
		groupRepo := s.groupRepo.WithTx(tx)

		group, err := groupRepo.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}

		if req.Name != nil {
			group.Name = strings.TrimSpace(*req.Name)
		}
		if req.StrategyType != nil {
			group.StrategyType = model.StrategyType(*req.StrategyType)
		}
		if req.Notes.Set {
			group.Notes = req.Notes.Value
		}
		group.UpdatedAt = now

		if err := groupRepo.UpdateGroup(ctx, &group); err != nil {
			return err
		}

		updated, err = s.loadGroup(ctx, groupRepo, tradeRepo, group.ID)
		return err
	})
	if err != nil {
		return model.GroupResponse{}, err
	}

	return updated, nil
}

// DeleteGroup removes a group. Its trades are detached, never deleted.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID string) error {
	return s.groupRepo.DeleteGroup(ctx, groupID)
}

// loadGroup reads a group and its members through the given repositories and enriches it.
func (s *GroupService) loadGroup(
	ctx context.Context,
	groups *repository.GroupRepository,
	trades *repository.TradeRepository,
	groupID string,
) (model.GroupResponse, error) {
	group, err := groups.GetGroup(ctx, groupID)
	if err != nil {
		return model.GroupResponse{}, err
	}

	members, err := trades.GetTradesByGroupID(ctx, groupID)
	if err != nil {
		return model.GroupResponse{}, err
	}

	return EnrichGroup(group, members, s.now())
}

// previousGroups returns the distinct groups the given trades currently belong to.
func previousGroups(trades []model.Trade) []string {
	var ids []string
	for _, t := range trades {
		if t.GroupID != nil {
			ids = append(ids, *t.GroupID)
		}
	}
	return uniqueStrings(ids)
}
