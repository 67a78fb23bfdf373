package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/TradeLog-Backend/internal/api/request"
	"github.com/ndewijer/TradeLog-Backend/internal/api/response"
	"github.com/ndewijer/TradeLog-Backend/internal/apperrors"
	"github.com/ndewijer/TradeLog-Backend/internal/service"
	"github.com/ndewijer/TradeLog-Backend/internal/validation"
)

// TradeHandler handles HTTP requests for trade endpoints.
type TradeHandler struct {
	tradeService *service.TradeService
}

// NewTradeHandler creates a new TradeHandler with the provided service dependency.
func NewTradeHandler(tradeService *service.TradeService) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
	}
}

// Trades handles GET requests to list every trade, newest first.
//
// Endpoint: GET /v1/trades
// Response: 200 OK with []TradeResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) Trades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.tradeService.GetTrades(r.Context())
	if err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToRetrieveTrades, err)
		return
	}

	response.RespondData(w, http.StatusOK, trades)
}

// Trade handles GET requests to retrieve a single trade.
//
// Endpoint: GET /v1/trades/{uuid}
// Response: 200 OK with TradeResponse
// Error: 400 Bad Request if the trade ID is invalid (validated by middleware)
// Error: 404 Not Found if the trade does not exist
func (h *TradeHandler) Trade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	trade, err := h.tradeService.GetTrade(r.Context(), tradeID)
	if err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToRetrieveTrade, err)
		return
	}

	response.RespondData(w, http.StatusOK, trade)
}

// CreateTrade handles POST requests to create a standalone trade.
//
// Endpoint: POST /v1/trades
// Request Body: CreateTradeRequest
// Response: 201 Created with TradeResponse
// Error: 400 Bad Request if the body is invalid or references an unknown group
// Error: 500 Internal Server Error if creation fails
func (h *TradeHandler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTrade(req); err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToCreateTrade, err)
		return
	}

	trade, err := h.tradeService.CreateTrade(r.Context(), req)
	if err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToCreateTrade, err)
		return
	}

	response.RespondData(w, http.StatusCreated, trade)
}

// UpdateTrade handles PUT requests to partially update a trade.
// Setting groupUuid moves the trade; null detaches it. A group left with
// fewer than two members is dissolved.
//
// Endpoint: PUT /v1/trades/{uuid}
// Request Body: UpdateTradeRequest (all fields optional)
// Response: 200 OK with TradeResponse
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the trade does not exist
func (h *TradeHandler) UpdateTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTrade(req); err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToUpdateTrade, err)
		return
	}

	trade, err := h.tradeService.UpdateTrade(r.Context(), tradeID, req)
	if err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToUpdateTrade, err)
		return
	}

	response.RespondData(w, http.StatusOK, trade)
}

// DeleteTrade handles DELETE requests to remove a trade.
//
// Endpoint: DELETE /v1/trades/{uuid}
// Response: 200 OK with {"data": null}
// Error: 404 Not Found if the trade does not exist
func (h *TradeHandler) DeleteTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	if err := h.tradeService.DeleteTrade(r.Context(), tradeID); err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToDeleteTrade, err)
		return
	}

	response.RespondData(w, http.StatusOK, nil)
}
