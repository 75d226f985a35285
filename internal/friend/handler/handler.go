package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/KelGut13/backend-crt/internal/friend"
	"github.com/KelGut13/backend-crt/internal/middleware"
	"github.com/KelGut13/backend-crt/pkg/errors"
	"github.com/KelGut13/backend-crt/pkg/httputil"
	"github.com/KelGut13/backend-crt/pkg/logger"
)

type FriendHandler struct {
	uc     friend.Usecase
	logger logger.Logger
}

func NewFriendHandler(uc friend.Usecase, logger logger.Logger) *FriendHandler {
	return &FriendHandler{uc: uc, logger: logger}
}

// GET /api/friends/search?q=
func (h *FriendHandler) Search(c *fiber.Ctx) error {
	rows, err := h.uc.Search(c.UserContext(), middleware.UserID(c), c.Query("q"))
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.Success(c, rows)
}

type sendRequestRequest struct {
	FriendID int64 `json:"friendId"`
}

// POST /api/friends/send-request
func (h *FriendHandler) SendRequest(c *fiber.Ctx) error {
	var req sendRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return httputil.Error(c, h.logger, errors.InvalidArg("invalid request body"))
	}

	if err := h.uc.SendRequest(c.UserContext(), middleware.UserID(c), req.FriendID); err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.SuccessMessage(c, "friend request sent")
}

// GET /api/friends/requests
func (h *FriendHandler) ListRequests(c *fiber.Ctx) error {
	rows, err := h.uc.ListRequests(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.Success(c, rows)
}

// PUT /api/friends/accept/:requestID
func (h *FriendHandler) Accept(c *fiber.Ctx) error {
	requestID, err := parseID(c, "requestID", "invalid request id")
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}

	if err := h.uc.Accept(c.UserContext(), middleware.UserID(c), requestID); err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.SuccessMessage(c, "friend request accepted")
}

// DELETE /api/friends/reject/:requestID
func (h *FriendHandler) Reject(c *fiber.Ctx) error {
	requestID, err := parseID(c, "requestID", "invalid request id")
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}

	if err := h.uc.Reject(c.UserContext(), middleware.UserID(c), requestID); err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.SuccessMessage(c, "friend request rejected")
}

// GET /api/friends/list
func (h *FriendHandler) ListFriends(c *fiber.Ctx) error {
	rows, err := h.uc.ListFriends(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.Success(c, rows)
}

// DELETE /api/friends/remove/:friendID
func (h *FriendHandler) Remove(c *fiber.Ctx) error {
	friendID, err := parseID(c, "friendID", "invalid user id")
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}

	if err := h.uc.Remove(c.UserContext(), middleware.UserID(c), friendID); err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.SuccessMessage(c, "friend removed")
}

func parseID(c *fiber.Ctx, param, msg string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil {
		return 0, errors.InvalidArg(msg)
	}
	return id, nil
}
