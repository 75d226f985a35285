package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/KelGut13/backend-crt/internal/chat"
	"github.com/KelGut13/backend-crt/internal/middleware"
	"github.com/KelGut13/backend-crt/pkg/errors"
	"github.com/KelGut13/backend-crt/pkg/httputil"
	"github.com/KelGut13/backend-crt/pkg/logger"
)

type ChatHandler struct {
	uc     chat.Usecase
	logger logger.Logger
}

func NewChatHandler(uc chat.Usecase, logger logger.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, logger: logger}
}

// GET /api/chat/list/all
func (h *ChatHandler) ListConversations(c *fiber.Ctx) error {
	summaries, err := h.uc.ListConversations(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.Success(c, summaries)
}

// GET /api/chat/messages/:conversationID?after=
func (h *ChatHandler) PollMessages(c *fiber.Ctx) error {
	convID, err := parseConversationID(c)
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}

	var afterID int64
	if after := c.Query("after"); after != "" {
		afterID, err = strconv.ParseInt(after, 10, 64)
		if err != nil {
			return httputil.Error(c, h.logger, errors.InvalidArg("invalid after cursor"))
		}
	}

	msgs, err := h.uc.PollMessages(c.UserContext(), middleware.UserID(c), convID, afterID)
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.Success(c, msgs)
}

// GET /api/chat/updates/:conversationID?ids=1,2,3
func (h *ChatHandler) PollDeleted(c *fiber.Ctx) error {
	convID, err := parseConversationID(c)
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}

	ids, err := parseIDList(c.Query("ids"))
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}

	deleted, err := h.uc.PollDeleted(c.UserContext(), middleware.UserID(c), convID, ids)
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.Success(c, fiber.Map{"deletedMessageIds": deleted})
}

// GET /api/chat/:peerID
func (h *ChatHandler) OpenConversation(c *fiber.Ctx) error {
	peerID, err := strconv.ParseInt(c.Params("peerID"), 10, 64)
	if err != nil {
		return httputil.Error(c, h.logger, errors.InvalidArg("invalid user id"))
	}

	conv, err := h.uc.OpenConversation(c.UserContext(), middleware.UserID(c), peerID)
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.Success(c, conv)
}

type sendMessageRequest struct {
	Body string `json:"body"`
}

// POST /api/chat/:conversationID/message
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	convID, err := parseConversationID(c)
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}

	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return httputil.Error(c, h.logger, errors.InvalidArg("invalid request body"))
	}

	msg, err := h.uc.SendMessage(c.UserContext(), chat.SendMessageCommand{
		ConversationID: convID,
		SenderID:       middleware.UserID(c),
		Body:           req.Body,
	})
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.Success(c, msg)
}

// PUT /api/chat/:conversationID/mark-read
func (h *ChatHandler) MarkRead(c *fiber.Ctx) error {
	convID, err := parseConversationID(c)
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}

	if err := h.uc.MarkRead(c.UserContext(), middleware.UserID(c), convID); err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.SuccessMessage(c, "messages marked as read")
}

type deleteMessageRequest struct {
	DeleteType string `json:"deleteType"`
}

// DELETE /api/chat/message/:messageID
func (h *ChatHandler) DeleteMessage(c *fiber.Ctx) error {
	messageID, err := strconv.ParseInt(c.Params("messageID"), 10, 64)
	if err != nil {
		return httputil.Error(c, h.logger, errors.InvalidArg("invalid message id"))
	}

	var req deleteMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return httputil.Error(c, h.logger, errors.InvalidArg("invalid request body"))
	}

	res, err := h.uc.DeleteMessage(c.UserContext(), chat.DeleteMessageCommand{
		MessageID:   messageID,
		RequesterID: middleware.UserID(c),
		DeleteType:  req.DeleteType,
	})
	if err != nil {
		return httputil.Error(c, h.logger, err)
	}
	return httputil.Success(c, res)
}

func parseConversationID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("conversationID"))
	if err != nil {
		return uuid.Nil, errors.InvalidArg("invalid conversation id")
	}
	return id, nil
}

// parseIDList parses the comma separated ids= query value. An empty value is
// fine: polling with nothing cached just returns nothing.
func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, errors.InvalidArg("invalid message id list")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
