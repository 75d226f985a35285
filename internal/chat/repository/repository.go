package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/KelGut13/backend-crt/internal/chat"
	"github.com/KelGut13/backend-crt/internal/chat/model"
	"github.com/KelGut13/backend-crt/pkg/logger"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
)

type ChatRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewChatRepository(db *bun.DB, logger logger.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ChatRepository) GetOrCreateConversation(ctx context.Context, userA, userB int64) (*model.Conversation, error) {
	low, high := model.NormalizePair(userA, userB)

	conv := new(model.Conversation)
	err := r.db.NewSelect().Model(conv).
		Where("user_low_id = ? AND user_high_id = ?", low, high).
		Scan(ctx)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(err, "chatRepo.GetOrCreateConversation.Scan")
	}

	conv = &model.Conversation{UserLowID: low, UserHighID: high}
	_, err = r.db.NewInsert().Model(conv).Returning("*").Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			// lost the first-contact race, the canonical row exists now
			conv = new(model.Conversation)
			if err := r.db.NewSelect().Model(conv).
				Where("user_low_id = ? AND user_high_id = ?", low, high).
				Scan(ctx); err != nil {
				return nil, errors.Wrap(err, "chatRepo.GetOrCreateConversation.Refetch")
			}
			return conv, nil
		}
		return nil, errors.Wrap(err, "chatRepo.GetOrCreateConversation.Insert")
	}
	return conv, nil
}

func (r *ChatRepository) GetConversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	conv := new(model.Conversation)
	err := r.db.NewSelect().Model(conv).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetConversation.Scan")
	}
	return conv, nil
}

func (r *ChatRepository) InsertMessage(ctx context.Context, conversationID uuid.UUID, senderID int64, body string) (*model.Message, error) {
	msg := &model.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
		HiddenFor:      []int64{},
	}
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.InsertMessage.Exec")
	}
	return r.GetMessage(ctx, msg.ID)
}

func (r *ChatRepository) GetMessage(ctx context.Context, messageID int64) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().Model(msg).
		ColumnExpr("message.*").
		ColumnExpr("COALESCE(u.username, '') AS sender_username").
		ColumnExpr("COALESCE(u.avatar_url, '') AS sender_avatar").
		Join("LEFT JOIN users AS u ON u.id = message.sender_id").
		Where("message.id = ?", messageID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetMessage.Scan")
	}
	return msg, nil
}

func (r *ChatRepository) ListVisibleMessages(ctx context.Context, conversationID uuid.UUID, viewerID, afterID int64) ([]*model.Message, error) {
	var msgs []*model.Message
	q := r.db.NewSelect().Model(&msgs).
		ColumnExpr("message.*").
		ColumnExpr("COALESCE(u.username, '') AS sender_username").
		ColumnExpr("COALESCE(u.avatar_url, '') AS sender_avatar").
		Join("LEFT JOIN users AS u ON u.id = message.sender_id").
		Where("message.conversation_id = ?", conversationID).
		Where("NOT (COALESCE(message.hidden_for, '{}') @> ARRAY[?]::bigint[])", viewerID).
		OrderExpr("message.sent_at ASC, message.id ASC")

	if afterID > 0 {
		q = q.Where("message.id > ?", afterID)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListVisibleMessages.Scan")
	}
	return msgs, nil
}

func (r *ChatRepository) MarkDeletedForEveryone(ctx context.Context, messageID int64) error {
	_, err := r.db.NewUpdate().Model((*model.Message)(nil)).
		Set("deleted = TRUE").
		Set("deleted_at = COALESCE(deleted_at, ?)", time.Now()).
		Where("id = ?", messageID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.MarkDeletedForEveryone.Exec")
	}
	return nil
}

func (r *ChatRepository) HideForUser(ctx context.Context, messageID, userID int64) error {
	// containment guard keeps re-adding a no-op, giving set semantics
	_, err := r.db.NewUpdate().Model((*model.Message)(nil)).
		Set("hidden_for = array_append(COALESCE(hidden_for, '{}'), ?)", userID).
		Where("id = ?", messageID).
		Where("NOT (COALESCE(hidden_for, '{}') @> ARRAY[?]::bigint[])", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.HideForUser.Exec")
	}
	return nil
}

func (r *ChatRepository) MarkConversationRead(ctx context.Context, conversationID uuid.UUID, readerID int64) error {
	_, err := r.db.NewUpdate().Model((*model.Message)(nil)).
		Set("is_read = TRUE").
		Where("conversation_id = ?", conversationID).
		Where("sender_id != ?", readerID).
		Where("is_read = FALSE").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.MarkConversationRead.Exec")
	}
	return nil
}

func (r *ChatRepository) ListDeletedMessageIDs(ctx context.Context, conversationID uuid.UUID, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var deleted []int64
	err := r.db.NewSelect().Model((*model.Message)(nil)).
		Column("id").
		Where("conversation_id = ?", conversationID).
		Where("id IN (?)", bun.In(ids)).
		Where("deleted = TRUE").
		Scan(ctx, &deleted)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListDeletedMessageIDs.Scan")
	}
	return deleted, nil
}

func (r *ChatRepository) ListConversationSummaries(ctx context.Context, userID int64) ([]*chat.ConversationSummary, error) {
	var rows []*chat.ConversationSummary
	err := r.db.NewSelect().
		TableExpr("conversations AS c").
		ColumnExpr("c.id AS conversation_id").
		ColumnExpr("c.created_at AS created_at").
		ColumnExpr("CASE WHEN c.user_low_id = ? THEN c.user_high_id ELSE c.user_low_id END AS peer_id", userID).
		ColumnExpr("COALESCE(u.username, '') AS peer_username").
		ColumnExpr("COALESCE(u.avatar_url, '') AS peer_avatar").
		ColumnExpr("COALESCE(u.is_online, FALSE) AS peer_online").
		ColumnExpr("COALESCE((SELECT CASE WHEN m.deleted THEN '' ELSE m.body END FROM messages AS m WHERE m.conversation_id = c.id ORDER BY m.sent_at DESC, m.id DESC LIMIT 1), '') AS last_message").
		ColumnExpr("(SELECT m.sent_at FROM messages AS m WHERE m.conversation_id = c.id ORDER BY m.sent_at DESC, m.id DESC LIMIT 1) AS last_message_at").
		ColumnExpr("(SELECT COUNT(*) FROM messages AS m WHERE m.conversation_id = c.id AND m.sender_id != ? AND m.is_read = FALSE) AS unread_count", userID).
		Join("LEFT JOIN users AS u ON u.id = CASE WHEN c.user_low_id = ? THEN c.user_high_id ELSE c.user_low_id END", userID).
		Where("c.user_low_id = ? OR c.user_high_id = ?", userID, userID).
		OrderExpr("last_message_at DESC NULLS LAST, c.created_at DESC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListConversationSummaries.Scan")
	}
	return rows, nil
}
