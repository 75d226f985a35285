package usecase

import (
	"context"
	"strings"

	"github.com/KelGut13/backend-crt/internal/friend"
	"github.com/KelGut13/backend-crt/internal/friend/model"
	"github.com/KelGut13/backend-crt/internal/friend/repository"
	"github.com/KelGut13/backend-crt/internal/user"
	userRepository "github.com/KelGut13/backend-crt/internal/user/repository"
	"github.com/KelGut13/backend-crt/pkg/errors"
	"github.com/KelGut13/backend-crt/pkg/logger"
)

const searchLimit = 20

type FriendUsecase struct {
	repo   friend.Repository
	users  user.Repository
	logger logger.Logger
}

func NewFriendUsecase(repo friend.Repository, users user.Repository, logger logger.Logger) *FriendUsecase {
	return &FriendUsecase{repo: repo, users: users, logger: logger}
}

func (uc *FriendUsecase) Search(ctx context.Context, userID int64, query string) ([]*friend.SearchRow, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []*friend.SearchRow{}, nil
	}

	rows, err := uc.repo.SearchUsers(ctx, userID, query, searchLimit)
	if err != nil {
		uc.logger.Error("database error searching users", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	if rows == nil {
		rows = []*friend.SearchRow{}
	}
	return rows, nil
}

func (uc *FriendUsecase) SendRequest(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		return errors.ErrSelfFriendRequest
	}

	if _, err := uc.users.GetUserByID(ctx, friendID); err != nil {
		if errors.Is(err, userRepository.ErrUserNotFound) {
			return errors.ErrUserNotFound
		}
		uc.logger.Error("database error resolving user", "friend_id", friendID, "err", err)
		return errors.Internal("internal server error")
	}

	rel, err := uc.repo.GetRelation(ctx, userID, friendID)
	if err != nil && !errors.Is(err, repository.ErrRelationNotFound) {
		uc.logger.Error("database error checking relation", "user_id", userID, "friend_id", friendID, "err", err)
		return errors.Internal("internal server error")
	}
	if rel != nil {
		if rel.Status == model.StatusAccepted {
			return errors.ErrAlreadyFriends
		}
		return errors.ErrRequestPending
	}

	if _, err := uc.repo.CreateRequest(ctx, userID, friendID); err != nil {
		uc.logger.Error("database error creating request", "user_id", userID, "friend_id", friendID, "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *FriendUsecase) ListRequests(ctx context.Context, userID int64) ([]*friend.RequestRow, error) {
	rows, err := uc.repo.ListIncomingRequests(ctx, userID)
	if err != nil {
		uc.logger.Error("database error listing requests", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	if rows == nil {
		rows = []*friend.RequestRow{}
	}
	return rows, nil
}

func (uc *FriendUsecase) Accept(ctx context.Context, userID, requestID int64) error {
	req, err := uc.pendingRequestFor(ctx, userID, requestID)
	if err != nil {
		return err
	}

	if err := uc.repo.Accept(ctx, req.ID); err != nil {
		uc.logger.Error("database error accepting request", "request_id", req.ID, "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *FriendUsecase) Reject(ctx context.Context, userID, requestID int64) error {
	req, err := uc.pendingRequestFor(ctx, userID, requestID)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, req.ID); err != nil {
		uc.logger.Error("database error rejecting request", "request_id", req.ID, "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *FriendUsecase) ListFriends(ctx context.Context, userID int64) ([]*friend.FriendRow, error) {
	rows, err := uc.repo.ListFriends(ctx, userID)
	if err != nil {
		uc.logger.Error("database error listing friends", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	if rows == nil {
		rows = []*friend.FriendRow{}
	}
	return rows, nil
}

func (uc *FriendUsecase) Remove(ctx context.Context, userID, friendID int64) error {
	rel, err := uc.repo.GetRelation(ctx, userID, friendID)
	if err != nil {
		if errors.Is(err, repository.ErrRelationNotFound) {
			return errors.ErrFriendshipMissing
		}
		uc.logger.Error("database error loading relation", "user_id", userID, "friend_id", friendID, "err", err)
		return errors.Internal("internal server error")
	}
	if rel.Status != model.StatusAccepted {
		return errors.ErrFriendshipMissing
	}

	if err := uc.repo.Delete(ctx, rel.ID); err != nil {
		uc.logger.Error("database error removing friend", "friendship_id", rel.ID, "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

// pendingRequestFor loads a request and checks the caller is its addressee:
// only the recipient may accept or reject.
func (uc *FriendUsecase) pendingRequestFor(ctx context.Context, userID, requestID int64) (*model.Friendship, error) {
	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.ErrRequestNotFound
		}
		uc.logger.Error("database error loading request", "request_id", requestID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	if req.AddresseeID != userID {
		return nil, errors.ErrNotRequestRecipient
	}
	if req.Status != model.StatusPending {
		return nil, errors.ErrRequestNotFound
	}
	return req, nil
}
