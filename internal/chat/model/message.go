package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID int64 `bun:",pk,autoincrement"`

	ConversationID uuid.UUID     `bun:",notnull,type:uuid"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	SenderID int64  `bun:",notnull"`
	Body     string `bun:",notnull"`

	// Assigned by the database so concurrent senders cannot reorder each
	// other through client clock skew. Ties break on ID.
	SentAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Delete-for-everyone. One-way, the row stays as a tombstone.
	Deleted   bool       `bun:",notnull,default:false"`
	DeletedAt *time.Time `bun:",nullzero"`

	// Delete-for-me: user ids this message is hidden from. Independent of
	// Deleted; membership is only ever added.
	HiddenFor []int64 `bun:"hidden_for,array"`

	// Read state of the single non-sender participant.
	IsRead bool `bun:"is_read,notnull,default:false"`

	// Filled by queries that join the sender's display identity.
	SenderUsername string `bun:"sender_username,scanonly"`
	SenderAvatar   string `bun:"sender_avatar,scanonly"`
}

func (m *Message) HiddenForUser(userID int64) bool {
	for _, id := range m.HiddenFor {
		if id == userID {
			return true
		}
	}
	return false
}
