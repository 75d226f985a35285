package model

import "time"

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
)

// Friendship is one row per user pair: a pending row is an outstanding
// request from requester to addressee, an accepted row is a friendship.
// Rejecting deletes the row.
type Friendship struct {
	ID int64 `bun:",pk,autoincrement"`

	RequesterID int64 `bun:",notnull"`
	AddresseeID int64 `bun:",notnull"`

	Status string `bun:",notnull,default:'pending'"`

	CreatedAt  time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	AcceptedAt *time.Time `bun:",nullzero"`
}

func (f *Friendship) Involves(userID int64) bool {
	return f.RequesterID == userID || f.AddresseeID == userID
}
