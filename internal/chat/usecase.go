package chat

import (
	"context"

	"github.com/google/uuid"
)

type Usecase interface {
	// OpenConversation resolves or creates the conversation with a friend and
	// returns its visible history plus the peer's display identity. Peer info
	// degrades to nil when the user directory cannot resolve it.
	OpenConversation(ctx context.Context, userID, peerID int64) (*ConversationDTO, error)

	SendMessage(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)

	// PollMessages serves the polling transport: afterID == 0 returns the
	// full visible history, otherwise only messages with id > afterID.
	PollMessages(ctx context.Context, userID int64, conversationID uuid.UUID, afterID int64) ([]*MessageDTO, error)

	// PollDeleted reports which of the client's known message ids have been
	// deleted for everyone since it cached them.
	PollDeleted(ctx context.Context, userID int64, conversationID uuid.UUID, knownIDs []int64) ([]int64, error)

	ListConversations(ctx context.Context, userID int64) ([]*ConversationSummary, error)

	MarkRead(ctx context.Context, userID int64, conversationID uuid.UUID) error

	DeleteMessage(ctx context.Context, cmd DeleteMessageCommand) (*DeleteResultDTO, error)
}
