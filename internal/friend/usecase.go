package friend

import "context"

type Usecase interface {
	Search(ctx context.Context, userID int64, query string) ([]*SearchRow, error)
	SendRequest(ctx context.Context, userID, friendID int64) error
	ListRequests(ctx context.Context, userID int64) ([]*RequestRow, error)
	Accept(ctx context.Context, userID, requestID int64) error
	Reject(ctx context.Context, userID, requestID int64) error
	ListFriends(ctx context.Context, userID int64) ([]*FriendRow, error)
	Remove(ctx context.Context, userID, friendID int64) error
}
