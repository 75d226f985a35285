package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/KelGut13/backend-crt/internal/friend"
	"github.com/KelGut13/backend-crt/internal/friend/model"
	"github.com/KelGut13/backend-crt/pkg/logger"
)

var (
	ErrRelationNotFound = errors.New("friendship not found")
	ErrRequestNotFound  = errors.New("friend request not found")
)

type FriendRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewFriendRepository(db *bun.DB, logger logger.Logger) *FriendRepository {
	return &FriendRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *FriendRepository) GetRelation(ctx context.Context, userA, userB int64) (*model.Friendship, error) {
	rel := new(model.Friendship)
	err := r.db.NewSelect().Model(rel).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRelationNotFound
		}
		return nil, errors.Wrap(err, "friendRepo.GetRelation.Scan")
	}
	return rel, nil
}

func (r *FriendRepository) CreateRequest(ctx context.Context, requesterID, addresseeID int64) (*model.Friendship, error) {
	rel := &model.Friendship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      model.StatusPending,
	}
	_, err := r.db.NewInsert().Model(rel).Returning("*").Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "friendRepo.CreateRequest.Exec")
	}
	return rel, nil
}

func (r *FriendRepository) GetRequest(ctx context.Context, requestID int64) (*model.Friendship, error) {
	rel := new(model.Friendship)
	err := r.db.NewSelect().Model(rel).Where("id = ?", requestID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, errors.Wrap(err, "friendRepo.GetRequest.Scan")
	}
	return rel, nil
}

func (r *FriendRepository) Accept(ctx context.Context, requestID int64) error {
	_, err := r.db.NewUpdate().Model((*model.Friendship)(nil)).
		Set("status = ?", model.StatusAccepted).
		Set("accepted_at = ?", time.Now()).
		Where("id = ?", requestID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "friendRepo.Accept.Exec")
	}
	return nil
}

func (r *FriendRepository) Delete(ctx context.Context, friendshipID int64) error {
	_, err := r.db.NewDelete().Model((*model.Friendship)(nil)).
		Where("id = ?", friendshipID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "friendRepo.Delete.Exec")
	}
	return nil
}

func (r *FriendRepository) ListIncomingRequests(ctx context.Context, userID int64) ([]*friend.RequestRow, error) {
	var rows []*friend.RequestRow
	err := r.db.NewSelect().
		TableExpr("friendships AS f").
		ColumnExpr("f.id AS request_id").
		ColumnExpr("f.created_at AS created_at").
		ColumnExpr("u.id AS user_id").
		ColumnExpr("u.username AS username").
		ColumnExpr("COALESCE(u.avatar_url, '') AS avatar_url").
		Join("JOIN users AS u ON u.id = f.requester_id").
		Where("f.addressee_id = ?", userID).
		Where("f.status = ?", model.StatusPending).
		OrderExpr("f.created_at DESC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "friendRepo.ListIncomingRequests.Scan")
	}
	return rows, nil
}

func (r *FriendRepository) ListFriends(ctx context.Context, userID int64) ([]*friend.FriendRow, error) {
	var rows []*friend.FriendRow
	err := r.db.NewSelect().
		TableExpr("friendships AS f").
		ColumnExpr("u.id AS user_id").
		ColumnExpr("u.username AS username").
		ColumnExpr("COALESCE(u.avatar_url, '') AS avatar_url").
		ColumnExpr("u.is_online AS is_online").
		ColumnExpr("f.accepted_at AS accepted_at").
		Join("JOIN users AS u ON u.id = CASE WHEN f.requester_id = ? THEN f.addressee_id ELSE f.requester_id END", userID).
		Where("f.requester_id = ? OR f.addressee_id = ?", userID, userID).
		Where("f.status = ?", model.StatusAccepted).
		OrderExpr("u.username ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "friendRepo.ListFriends.Scan")
	}
	return rows, nil
}

func (r *FriendRepository) AreFriends(ctx context.Context, userA, userB int64) (bool, error) {
	count, err := r.db.NewSelect().Model((*model.Friendship)(nil)).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA).
		Where("status = ?", model.StatusAccepted).
		Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "friendRepo.AreFriends.Count")
	}
	return count > 0, nil
}

func (r *FriendRepository) SearchUsers(ctx context.Context, searcherID int64, query string, limit int) ([]*friend.SearchRow, error) {
	var rows []*friend.SearchRow
	err := r.db.NewSelect().
		TableExpr("users AS u").
		ColumnExpr("u.id AS user_id").
		ColumnExpr("u.username AS username").
		ColumnExpr("COALESCE(u.avatar_url, '') AS avatar_url").
		ColumnExpr(`CASE
			WHEN f.status = 'accepted' THEN 'accepted'
			WHEN f.status = 'pending' AND f.requester_id = ? THEN 'sent'
			WHEN f.status = 'pending' AND f.addressee_id = ? THEN 'received'
		END AS friendship_status`, searcherID, searcherID).
		Join(`LEFT JOIN friendships AS f ON
			(f.requester_id = u.id AND f.addressee_id = ?) OR
			(f.addressee_id = u.id AND f.requester_id = ?)`, searcherID, searcherID).
		Where("u.username ILIKE ?", "%"+query+"%").
		Where("u.id != ?", searcherID).
		OrderExpr("u.username ASC").
		Limit(limit).
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "friendRepo.SearchUsers.Scan")
	}
	return rows, nil
}
