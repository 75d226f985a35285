package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/KelGut13/backend-crt/internal/chat"
	"github.com/KelGut13/backend-crt/internal/chat/model"
	"github.com/KelGut13/backend-crt/internal/chat/repository"
	"github.com/KelGut13/backend-crt/internal/friend"
	"github.com/KelGut13/backend-crt/internal/user"
	userRepository "github.com/KelGut13/backend-crt/internal/user/repository"
	"github.com/KelGut13/backend-crt/pkg/errors"
	"github.com/KelGut13/backend-crt/pkg/logger"
)

type ChatUsecase struct {
	repo    chat.Repository
	users   user.Repository
	friends friend.Repository
	logger  logger.Logger
}

func NewChatUsecase(repo chat.Repository, users user.Repository, friends friend.Repository, logger logger.Logger) *ChatUsecase {
	return &ChatUsecase{
		repo:    repo,
		users:   users,
		friends: friends,
		logger:  logger,
	}
}

func (uc *ChatUsecase) OpenConversation(ctx context.Context, userID, peerID int64) (*chat.ConversationDTO, error) {
	if userID == peerID {
		return nil, errors.ErrSelfConversation
	}

	ok, err := uc.friends.AreFriends(ctx, userID, peerID)
	if err != nil {
		uc.logger.Error("database error checking friendship", "user_id", userID, "peer_id", peerID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	if !ok {
		return nil, errors.ErrNotFriends
	}

	conv, err := uc.repo.GetOrCreateConversation(ctx, userID, peerID)
	if err != nil {
		uc.logger.Error("database error resolving conversation", "user_id", userID, "peer_id", peerID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	msgs, err := uc.repo.ListVisibleMessages(ctx, conv.ID, userID, 0)
	if err != nil {
		uc.logger.Error("database error loading messages", "conversation_id", conv.ID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	return &chat.ConversationDTO{
		ConversationID: conv.ID,
		Messages:       toMessageDTOs(msgs),
		Peer:           uc.peerInfo(ctx, peerID),
	}, nil
}

func (uc *ChatUsecase) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (*chat.MessageDTO, error) {
	body := strings.TrimSpace(cmd.Body)
	if body == "" {
		return nil, errors.ErrEmptyMessage
	}

	conv, err := uc.getConversationFor(ctx, cmd.ConversationID, cmd.SenderID)
	if err != nil {
		return nil, err
	}

	msg, err := uc.repo.InsertMessage(ctx, conv.ID, cmd.SenderID, body)
	if err != nil {
		uc.logger.Error("database error inserting message", "conversation_id", conv.ID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toMessageDTO(msg), nil
}

func (uc *ChatUsecase) PollMessages(ctx context.Context, userID int64, conversationID uuid.UUID, afterID int64) ([]*chat.MessageDTO, error) {
	conv, err := uc.getConversationFor(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}

	msgs, err := uc.repo.ListVisibleMessages(ctx, conv.ID, userID, afterID)
	if err != nil {
		uc.logger.Error("database error polling messages", "conversation_id", conv.ID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toMessageDTOs(msgs), nil
}

func (uc *ChatUsecase) PollDeleted(ctx context.Context, userID int64, conversationID uuid.UUID, knownIDs []int64) ([]int64, error) {
	conv, err := uc.getConversationFor(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	if len(knownIDs) == 0 {
		return []int64{}, nil
	}

	deleted, err := uc.repo.ListDeletedMessageIDs(ctx, conv.ID, knownIDs)
	if err != nil {
		uc.logger.Error("database error polling deletions", "conversation_id", conv.ID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	if deleted == nil {
		deleted = []int64{}
	}
	return deleted, nil
}

func (uc *ChatUsecase) ListConversations(ctx context.Context, userID int64) ([]*chat.ConversationSummary, error) {
	summaries, err := uc.repo.ListConversationSummaries(ctx, userID)
	if err != nil {
		uc.logger.Error("database error listing conversations", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return summaries, nil
}

func (uc *ChatUsecase) MarkRead(ctx context.Context, userID int64, conversationID uuid.UUID) error {
	conv, err := uc.getConversationFor(ctx, conversationID, userID)
	if err != nil {
		return err
	}

	if err := uc.repo.MarkConversationRead(ctx, conv.ID, userID); err != nil {
		uc.logger.Error("database error marking read", "conversation_id", conv.ID, "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *ChatUsecase) DeleteMessage(ctx context.Context, cmd chat.DeleteMessageCommand) (*chat.DeleteResultDTO, error) {
	if cmd.DeleteType != chat.DeleteForMe && cmd.DeleteType != chat.DeleteForEveryone {
		return nil, errors.ErrInvalidDeleteType
	}

	msg, err := uc.repo.GetMessage(ctx, cmd.MessageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.ErrMessageNotFound
		}
		uc.logger.Error("database error loading message", "message_id", cmd.MessageID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	if _, err := uc.getConversationFor(ctx, msg.ConversationID, cmd.RequesterID); err != nil {
		return nil, err
	}

	if cmd.DeleteType == chat.DeleteForEveryone {
		if msg.SenderID != cmd.RequesterID {
			return nil, errors.ErrNotMessageSender
		}
		// idempotent: tombstoning a tombstone is a no-op success
		if err := uc.repo.MarkDeletedForEveryone(ctx, msg.ID); err != nil {
			uc.logger.Error("database error deleting message", "message_id", msg.ID, "err", err)
			return nil, errors.Internal("internal server error")
		}
		return &chat.DeleteResultDTO{MessageID: msg.ID, DeletedForEveryone: true}, nil
	}

	if err := uc.repo.HideForUser(ctx, msg.ID, cmd.RequesterID); err != nil {
		uc.logger.Error("database error hiding message", "message_id", msg.ID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return &chat.DeleteResultDTO{MessageID: msg.ID, DeletedForEveryone: false}, nil
}

// getConversationFor loads a conversation and enforces the participant check
// every operation shares.
func (uc *ChatUsecase) getConversationFor(ctx context.Context, conversationID uuid.UUID, userID int64) (*model.Conversation, error) {
	conv, err := uc.repo.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, errors.ErrConversationNotFound
		}
		uc.logger.Error("database error loading conversation", "conversation_id", conversationID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	if !conv.HasParticipant(userID) {
		return nil, errors.ErrNotParticipant
	}
	return conv, nil
}

// peerInfo resolves the peer's display identity, degrading to nil when the
// user directory cannot answer.
func (uc *ChatUsecase) peerInfo(ctx context.Context, peerID int64) *chat.PeerDTO {
	u, err := uc.users.GetUserByID(ctx, peerID)
	if err != nil {
		if !errors.Is(err, userRepository.ErrUserNotFound) {
			uc.logger.Warn("user directory lookup failed", "peer_id", peerID, "err", err)
		}
		return nil
	}
	return &chat.PeerDTO{
		ID:        u.ID,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		IsOnline:  u.IsOnline,
	}
}

func toMessageDTO(m *model.Message) *chat.MessageDTO {
	dto := &chat.MessageDTO{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		SenderUsername: m.SenderUsername,
		SenderAvatar:   m.SenderAvatar,
		Body:           m.Body,
		SentAt:         m.SentAt,
		Deleted:        m.Deleted,
		IsRead:         m.IsRead,
	}
	// tombstones keep their place in history but never their body
	if m.Deleted {
		dto.Body = ""
	}
	return dto
}

func toMessageDTOs(msgs []*model.Message) []*chat.MessageDTO {
	out := make([]*chat.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageDTO(m))
	}
	return out
}
