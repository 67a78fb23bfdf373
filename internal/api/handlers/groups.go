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

// GroupHandler handles HTTP requests for group and strategy endpoints.
type GroupHandler struct {
	groupService *service.GroupService
}

// NewGroupHandler creates a new GroupHandler with the provided service dependency.
func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// Groups handles GET requests to list every group with metrics, newest first.
//
// Endpoint: GET /v1/groups
// Response: 200 OK with []GroupResponse
func (h *GroupHandler) Groups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.GetGroups(r.Context())
	if err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToRetrieveGroups, err)
		return
	}

	response.RespondData(w, http.StatusOK, groups)
}

// Group handles GET requests to retrieve a single group with metrics.
//
// Endpoint: GET /v1/groups/{uuid}
// Response: 200 OK with GroupResponse
// Error: 404 Not Found if the group does not exist
func (h *GroupHandler) Group(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "uuid")

	group, err := h.groupService.GetGroup(r.Context(), groupID)
	if err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToRetrieveGroup, err)
		return
	}

	response.RespondData(w, http.StatusOK, group)
}

// CreateGroup handles POST requests to group existing trades.
//
// Endpoint: POST /v1/groups
// Request Body: CreateGroupRequest (name, strategyType, notes?, tradeUuids)
// Response: 201 Created with GroupResponse
// Error: 400 Bad Request if fewer than two trades are given or any does not exist
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateGroupRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateGroup(req); err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToCreateGroup, err)
		return
	}

	group, err := h.groupService.CreateGroup(r.Context(), req)
	if err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToCreateGroup, err)
		return
	}

	response.RespondData(w, http.StatusCreated, group)
}

// UpdateGroup handles PATCH requests to change group metadata.
//
// Endpoint: PATCH /v1/groups/{uuid}
// Request Body: UpdateGroupRequest (name?, strategyType?, notes?)
// Response: 200 OK with GroupResponse
// Error: 404 Not Found if the group does not exist
func (h *GroupHandler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateGroupRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateGroup(req); err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToUpdateGroup, err)
		return
	}

	group, err := h.groupService.UpdateGroup(r.Context(), groupID, req)
	if err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToUpdateGroup, err)
		return
	}

	response.RespondData(w, http.StatusOK, group)
}

// DeleteGroup handles DELETE requests to remove a group. Its trades are kept and detached.
//
// Endpoint: DELETE /v1/groups/{uuid}
// Response: 200 OK with {"data": null}
// Error: 404 Not Found if the group does not exist
func (h *GroupHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "uuid")

	if err := h.groupService.DeleteGroup(r.Context(), groupID); err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToDeleteGroup, err)
		return
	}

	response.RespondData(w, http.StatusOK, nil)
}

// CreateStrategy handles POST requests to create a group and its trades in one step.
//
// Endpoint: POST /v1/strategies
// Request Body: CreateStrategyRequest (group, trades)
// Response: 201 Created with GroupResponse
// Error: 400 Bad Request if validation fails; nothing is persisted
func (h *GroupHandler) CreateStrategy(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateStrategyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateStrategy(req); err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToCreateStrategy, err)
		return
	}

	group, err := h.groupService.CreateStrategy(r.Context(), req)
	if err != nil {
		response.RespondServiceError(w, r, apperrors.ErrFailedToCreateStrategy, err)
		return
	}

	response.RespondData(w, http.StatusCreated, group)
}
