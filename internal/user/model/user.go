package models

import (
	"time"
)

type User struct {
	ID int64 `bun:",pk,autoincrement"`

	// Username = unique handle shown next to every message
	Username string `bun:",unique,notnull"`

	AvatarURL string `bun:",nullzero"`

	// Persistent online flag; Redis presence keys take precedence while fresh
	IsOnline   bool      `bun:",notnull,default:false"`
	LastSeenAt time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
