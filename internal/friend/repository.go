package friend

import (
	"context"

	"github.com/KelGut13/backend-crt/internal/friend/model"
)

type Repository interface {
	// GetRelation finds the friendship row between two users regardless of
	// who requested it.
	GetRelation(ctx context.Context, userA, userB int64) (*model.Friendship, error)

	CreateRequest(ctx context.Context, requesterID, addresseeID int64) (*model.Friendship, error)
	GetRequest(ctx context.Context, requestID int64) (*model.Friendship, error)
	Accept(ctx context.Context, requestID int64) error
	Delete(ctx context.Context, friendshipID int64) error

	ListIncomingRequests(ctx context.Context, userID int64) ([]*RequestRow, error)
	ListFriends(ctx context.Context, userID int64) ([]*FriendRow, error)

	// AreFriends reports whether an accepted friendship exists. The chat
	// directory gates conversation creation on it.
	AreFriends(ctx context.Context, userA, userB int64) (bool, error)

	SearchUsers(ctx context.Context, searcherID int64, query string, limit int) ([]*SearchRow, error)
}
