package model

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the single record for an unordered pair of users. The pair
// is stored normalized (UserLowID < UserHighID) so the unique constraint
// holds regardless of who opened the chat first.
type Conversation struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	UserLowID  int64 `bun:",notnull,unique:conversation_pair"`
	UserHighID int64 `bun:",notnull,unique:conversation_pair"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

func (c *Conversation) HasParticipant(userID int64) bool {
	return c.UserLowID == userID || c.UserHighID == userID
}

// PeerOf returns the other participant. Callers must have checked
// HasParticipant first.
func (c *Conversation) PeerOf(userID int64) int64 {
	if c.UserLowID == userID {
		return c.UserHighID
	}
	return c.UserLowID
}

// NormalizePair orders a conversation pair for lookups and inserts.
func NormalizePair(a, b int64) (low, high int64) {
	if a < b {
		return a, b
	}
	return b, a
}
