package chat

import (
	"context"

	"github.com/google/uuid"

	"github.com/KelGut13/backend-crt/internal/chat/model"
)

type Repository interface {
	// GetOrCreateConversation resolves the conversation for an unordered user
	// pair, creating it on first contact. Safe under concurrent first contact
	// from both sides.
	GetOrCreateConversation(ctx context.Context, userA, userB int64) (*model.Conversation, error)

	GetConversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error)

	// InsertMessage appends a message and returns it joined with the sender's
	// display identity. The sent timestamp comes from the database clock.
	InsertMessage(ctx context.Context, conversationID uuid.UUID, senderID int64, body string) (*model.Message, error)

	GetMessage(ctx context.Context, messageID int64) (*model.Message, error)

	// ListVisibleMessages returns the conversation in (sent_at, id) ascending
	// order, excluding messages hidden for the viewer. Tombstones and
	// messages hidden for the other participant are included. afterID > 0
	// restricts to newer messages.
	ListVisibleMessages(ctx context.Context, conversationID uuid.UUID, viewerID, afterID int64) ([]*model.Message, error)

	// MarkDeletedForEveryone tombstones a message. Idempotent.
	MarkDeletedForEveryone(ctx context.Context, messageID int64) error

	// HideForUser adds userID to the message's hidden set. Idempotent.
	HideForUser(ctx context.Context, messageID, userID int64) error

	// MarkConversationRead flags every unread message not sent by readerID.
	MarkConversationRead(ctx context.Context, conversationID uuid.UUID, readerID int64) error

	// ListDeletedMessageIDs filters the given ids down to those tombstoned.
	ListDeletedMessageIDs(ctx context.Context, conversationID uuid.UUID, ids []int64) ([]int64, error)

	// ListConversationSummaries returns the user's conversations with peer
	// identity, last message preview and unread count, most recent first.
	ListConversationSummaries(ctx context.Context, userID int64) ([]*ConversationSummary, error)
}
