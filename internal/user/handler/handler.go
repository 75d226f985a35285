package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/KelGut13/backend-crt/internal/middleware"
	"github.com/KelGut13/backend-crt/internal/user"
	"github.com/KelGut13/backend-crt/pkg/errors"
	"github.com/KelGut13/backend-crt/pkg/httputil"
	"github.com/KelGut13/backend-crt/pkg/logger"
)

type UserHandler struct {
	uc     user.Usecase
	logger logger.Logger
}

func NewUserHandler(uc user.Usecase, logger logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// GET /api/users/profile/:userID
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("userID"), 10, 64)
	if err != nil {
		return httputil.Error(c, h.logger, errors.InvalidArg("invalid user id"))
	}

	profile, err := h.uc.GetProfile(c.UserContext(), userID)
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.Success(c, profile)
}

type updateProfileRequest struct {
	Username  string `json:"username"`
	AvatarURL string `json:"photoURL"`
}

// PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return httputil.Error(c, h.logger, errors.InvalidArg("invalid request body"))
	}

	profile, err := h.uc.UpdateProfile(c.UserContext(), middleware.UserID(c), user.UpdateProfileCommand{
		Username:  req.Username,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.Success(c, profile)
}

type onlineStatusRequest struct {
	IsOnline bool `json:"isOnline"`
}

// PUT /api/users/online-status
func (h *UserHandler) SetOnlineStatus(c *fiber.Ctx) error {
	var req onlineStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return httputil.Error(c, h.logger, errors.InvalidArg("invalid request body"))
	}

	if err := h.uc.SetOnlineStatus(c.UserContext(), middleware.UserID(c), req.IsOnline); err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.SuccessMessage(c, "status updated")
}
