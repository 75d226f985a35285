package user

import "time"

// Input commands travel from handler to usecase, DTOs travel back.

type UpdateProfileCommand struct {
	Username  string // empty = unchanged
	AvatarURL string // empty = unchanged
}

type ProfileDTO struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	AvatarURL  string     `json:"photoURL,omitempty"`
	IsOnline   bool       `json:"isOnline"`
	LastSeenAt *time.Time `json:"lastSeenAt,omitempty"`
}
