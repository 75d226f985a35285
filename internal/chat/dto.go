package chat

import (
	"time"

	"github.com/google/uuid"
)

// Delete types accepted by DeleteMessage, matching the client contract.
const (
	DeleteForMe       = "for-me"
	DeleteForEveryone = "for-everyone"
)

// Input commands travel from handler to usecase, DTOs travel back.

type SendMessageCommand struct {
	ConversationID uuid.UUID
	SenderID       int64
	Body           string
}

type DeleteMessageCommand struct {
	MessageID   int64
	RequesterID int64
	DeleteType  string
}

type MessageDTO struct {
	ID             int64     `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	SenderID       int64     `json:"senderId"`
	SenderUsername string    `json:"senderUsername,omitempty"`
	SenderAvatar   string    `json:"senderPhotoURL,omitempty"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sentAt"`
	Deleted        bool      `json:"deleted"`
	IsRead         bool      `json:"isRead"`
}

type PeerDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"photoURL,omitempty"`
	IsOnline  bool   `json:"isOnline"`
}

type ConversationDTO struct {
	ConversationID uuid.UUID     `json:"conversationId"`
	Messages       []*MessageDTO `json:"messages"`
	Peer           *PeerDTO      `json:"peer"`
}

type DeleteResultDTO struct {
	MessageID          int64 `json:"messageId"`
	DeletedForEveryone bool  `json:"deletedForEveryone"`
}

// ConversationSummary is one row of the conversation list aggregate. The bun
// tags line up with the column aliases in ListConversationSummaries.
type ConversationSummary struct {
	ConversationID uuid.UUID  `bun:"conversation_id" json:"conversationId"`
	PeerID         int64      `bun:"peer_id" json:"friendId"`
	PeerUsername   string     `bun:"peer_username" json:"friendUsername"`
	PeerAvatar     string     `bun:"peer_avatar" json:"friendPhotoURL,omitempty"`
	PeerOnline     bool       `bun:"peer_online" json:"friendIsOnline"`
	LastMessage    string     `bun:"last_message" json:"lastMessage,omitempty"`
	LastMessageAt  *time.Time `bun:"last_message_at" json:"lastMessageTime,omitempty"`
	UnreadCount    int        `bun:"unread_count" json:"unreadCount"`
	CreatedAt      time.Time  `bun:"created_at" json:"createdAt"`
}
