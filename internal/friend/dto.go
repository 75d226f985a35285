package friend

import "time"

// Friendship status annotations returned by Search, relative to the searcher.
const (
	SearchStatusAccepted = "accepted"
	SearchStatusSent     = "sent"
	SearchStatusReceived = "received"
)

type SearchRow struct {
	UserID    int64   `bun:"user_id" json:"id"`
	Username  string  `bun:"username" json:"username"`
	AvatarURL string  `bun:"avatar_url" json:"photoURL,omitempty"`
	Status    *string `bun:"friendship_status" json:"friendshipStatus"`
}

type RequestRow struct {
	RequestID   int64     `bun:"request_id" json:"requestId"`
	RequesterID int64     `bun:"user_id" json:"id"`
	Username    string    `bun:"username" json:"username"`
	AvatarURL   string    `bun:"avatar_url" json:"photoURL,omitempty"`
	CreatedAt   time.Time `bun:"created_at" json:"createdAt"`
}

type FriendRow struct {
	FriendID  int64      `bun:"user_id" json:"id"`
	Username  string     `bun:"username" json:"username"`
	AvatarURL string     `bun:"avatar_url" json:"photoURL,omitempty"`
	IsOnline  bool       `bun:"is_online" json:"isOnline"`
	Since     *time.Time `bun:"accepted_at" json:"friendsSince,omitempty"`
}
