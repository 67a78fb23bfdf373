package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ndewijer/TradeLog-Backend/internal/api/request"
	"github.com/ndewijer/TradeLog-Backend/internal/apperrors"
	"github.com/ndewijer/TradeLog-Backend/internal/model"
	"github.com/ndewijer/TradeLog-Backend/internal/repository"
	"github.com/ndewijer/TradeLog-Backend/internal/validation"
)

// TradeService handles trade-related business logic operations.
type TradeService struct {
	db        *sql.DB
	tradeRepo *repository.TradeRepository
	groupRepo *repository.GroupRepository
	options
}

// NewTradeService creates a new TradeService with the provided repository dependencies.
func NewTradeService(
	db *sql.DB,
	tradeRepo *repository.TradeRepository,
	groupRepo *repository.GroupRepository,
	opts ...Option,
) *TradeService {
	return &TradeService{
		db:        db,
		tradeRepo: tradeRepo,
		groupRepo: groupRepo,
		options:   newOptions(opts),
	}
}

// GetTrades retrieves every trade, newest first, with derived fields.
func (s *TradeService) GetTrades(ctx context.Context) ([]model.TradeResponse, error) {
	trades, err := s.tradeRepo.GetTrades(ctx)
	if err != nil {
		return nil, err
	}
	return EnrichTrades(trades, s.now()), nil
}

// GetTrade retrieves a single trade with derived fields.
func (s *TradeService) GetTrade(ctx context.Context, tradeID string) (model.TradeResponse, error) {
	trade, err := s.tradeRepo.GetTrade(ctx, tradeID)
	if err != nil {
		return model.TradeResponse{}, err
	}
	return EnrichTrade(trade, s.now()), nil
}

// CreateTrade inserts a new trade with status OPEN.
// A groupUuid that does not resolve is a validation error.
func (s *TradeService) CreateTrade(ctx context.Context, req request.CreateTradeRequest) (model.TradeResponse, error) {
	now := s.now()

	trade, err := tradeFromRequest(req, now)
	if err != nil {
		return model.TradeResponse{}, err
	}

	err = withTx(ctx, s.db, func(tx *sql.Tx) error {
		if trade.GroupID != nil {
			if err := requireGroup(ctx, s.groupRepo.WithTx(tx), *trade.GroupID); err != nil {
				return err
			}
		}
		return s.tradeRepo.WithTx(tx).InsertTrade(ctx, &trade)
	})
	if err != nil {
		return model.TradeResponse{}, err
	}

	return EnrichTrade(trade, now), nil
}

// UpdateTrade applies a partial update to a trade.
//
// When the update moves the trade out of its group, either to another group or
// to none, the old group is dissolved in the same transaction if fewer than two
// members would remain.
func (s *TradeService) UpdateTrade(ctx context.Context, tradeID string, req request.UpdateTradeRequest) (model.TradeResponse, error) {
	now := s.now()
	var updated model.Trade

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		tradeRepo := s.tradeRepo.WithTx(tx)
		groupRepo := s.groupRepo.WithTx(tx)

		trade, err := tradeRepo.GetTrade(ctx, tradeID)
		if err != nil {
			return err
		}
		oldGroupID := trade.GroupID

		if err := applyTradeUpdate(&trade, req); err != nil {
			return err
		}
		if req.GroupID.Set && trade.GroupID != nil && !sameGroup(oldGroupID, trade.GroupID) {
			if err := requireGroup(ctx, groupRepo, *trade.GroupID); err != nil {
				return err
			}
		}
		trade.UpdatedAt = now

		if err := tradeRepo.UpdateTrade(ctx, &trade); err != nil {
			return err
		}

		if oldGroupID != nil && !sameGroup(oldGroupID, trade.GroupID) {
			dissolved, err := dissolveIfUndersized(ctx, tradeRepo, groupRepo, *oldGroupID, trade.ID, now)
			if err != nil {
				return err
			}
			if dissolved {
				s.groupDissolved(*oldGroupID, trade.ID)
			}
		}

		updated = trade
		return nil
	})
	if err != nil {
		return model.TradeResponse{}, err
	}

	return EnrichTrade(updated, now), nil
}

// DeleteTrade removes a trade. When the trade belonged to a group that would be
// left with fewer than two members, the group is dissolved in the same transaction.
func (s *TradeService) DeleteTrade(ctx context.Context, tradeID string) error {
	now := s.now()

	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		tradeRepo := s.tradeRepo.WithTx(tx)

		trade, err := tradeRepo.GetTrade(ctx, tradeID)
		if err != nil {
			return err
		}

		if trade.GroupID != nil {
			dissolved, err := dissolveIfUndersized(ctx, tradeRepo, s.groupRepo.WithTx(tx), *trade.GroupID, trade.ID, now)
			if err != nil {
				return err
			}
			if dissolved {
				s.groupDissolved(*trade.GroupID, trade.ID)
			}
		}

		return tradeRepo.DeleteTrade(ctx, trade.ID)
	})
}

func (s *TradeService) groupDissolved(groupID, tradeID string) {
	s.recorder.GroupDissolved()
	s.logger.Info().
		Str("group_id", groupID).
		Str("trade_id", tradeID).
		Msg("group dissolved below minimum membership")
}

// tradeFromRequest builds a new trade from a validated create request.
func tradeFromRequest(req request.CreateTradeRequest, now time.Time) (model.Trade, error) {
	expiry, err := validation.ParseDate(req.ExpiryDate)
	if err != nil {
		return model.Trade{}, validation.NewError("expiryDate", err.Error())
	}
	if req.StrikePrice == nil || req.CostBasis == nil || req.CurrentValue == nil || req.Quantity == nil {
		return model.Trade{}, validation.NewError("trade", "strikePrice, quantity, costBasis and currentValue are required")
	}

	return model.Trade{
		ID:           uuid.New().String(),
		Symbol:       strings.TrimSpace(req.Symbol),
		StrikePrice:  *req.StrikePrice,
		ExpiryDate:   expiry,
		TradeType:    model.TradeType(req.TradeType),
		OptionType:   model.OptionType(req.OptionType),
		Quantity:     *req.Quantity,
		CostBasis:    *req.CostBasis,
		CurrentValue: *req.CurrentValue,
		Status:       model.TradeStatusOpen,
		Notes:        req.Notes,
		GroupID:      req.GroupID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// applyTradeUpdate copies the present fields of req onto trade.
func applyTradeUpdate(trade *model.Trade, req request.UpdateTradeRequest) error {
	if req.Symbol != nil {
		trade.Symbol = strings.TrimSpace(*req.Symbol)
	}
	if req.StrikePrice != nil {
		trade.StrikePrice = *req.StrikePrice
	}
	if req.ExpiryDate != nil {
		expiry, err := validation.ParseDate(*req.ExpiryDate)
		if err != nil {
			return validation.NewError("expiryDate", err.Error())
		}
		trade.ExpiryDate = expiry
	}
	if req.TradeType != nil {
		trade.TradeType = model.TradeType(*req.TradeType)
	}
	if req.OptionType != nil {
		trade.OptionType = model.OptionType(*req.OptionType)
	}
	if req.Quantity != nil {
		trade.Quantity = *req.Quantity
	}
	if req.CostBasis != nil {
		trade.CostBasis = *req.CostBasis
	}
	if req.CurrentValue != nil {
		trade.CurrentValue = *req.CurrentValue
	}
	if req.Status != nil {
		trade.Status = model.TradeStatus(*req.Status)
	}
	if req.Notes.Set {
		trade.Notes = req.Notes.Value
	}
	if req.GroupID.Set {
		trade.GroupID = req.GroupID.Value
	}
	return nil
}

// requireGroup turns a missing group reference into a validation error.
func requireGroup(ctx context.Context, groups *repository.GroupRepository, groupID string) error {
	_, err := groups.GetGroup(ctx, groupID)
	if errors.Is(err, apperrors.ErrGroupNotFound) {
		return validation.NewError("groupUuid", err.Error())
	}
	return err
}

func sameGroup(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
