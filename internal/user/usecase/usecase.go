package usecase

import (
	"context"
	"strings"

	"github.com/KelGut13/backend-crt/internal/user"
	models "github.com/KelGut13/backend-crt/internal/user/model"
	"github.com/KelGut13/backend-crt/internal/user/repository"
	"github.com/KelGut13/backend-crt/pkg/errors"
	"github.com/KelGut13/backend-crt/pkg/logger"
)

type UserUsecase struct {
	repo     user.Repository
	presence user.PresenceStore
	logger   logger.Logger
}

func NewUserUsecase(repo user.Repository, presence user.PresenceStore, logger logger.Logger) *UserUsecase {
	return &UserUsecase{repo: repo, presence: presence, logger: logger}
}

func (uc *UserUsecase) GetProfile(ctx context.Context, userID int64) (*user.ProfileDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("database error loading profile", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return uc.toProfile(ctx, u), nil
}

func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID int64, cmd user.UpdateProfileCommand) (*user.ProfileDTO, error) {
	username := strings.TrimSpace(cmd.Username)
	if cmd.Username != "" && username == "" {
		return nil, errors.ErrEmptyUsername
	}

	err := uc.repo.UpdateProfile(ctx, userID, username, cmd.AvatarURL)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, errors.ErrUserNotFound
		case errors.Is(err, repository.ErrUsernameTaken):
			return nil, errors.ErrUsernameTaken
		}
		uc.logger.Error("database error updating profile", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return uc.GetProfile(ctx, userID)
}

func (uc *UserUsecase) SetOnlineStatus(ctx context.Context, userID int64, online bool) error {
	if err := uc.repo.SetOnline(ctx, userID, online); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.ErrUserNotFound
		}
		uc.logger.Error("database error updating online status", "user_id", userID, "err", err)
		return errors.Internal("internal server error")
	}

	if uc.presence == nil {
		return nil
	}
	var err error
	if online {
		err = uc.presence.SetOnline(ctx, userID)
	} else {
		err = uc.presence.SetOffline(ctx, userID)
	}
	if err != nil {
		// presence is advisory, the persistent flag already changed
		uc.logger.Warn("presence store unavailable", "user_id", userID, "err", err)
	}
	return nil
}

// toProfile resolves the effective online flag. A reachable presence store is
// authoritative; when it errors we fall back to the persistent column.
func (uc *UserUsecase) toProfile(ctx context.Context, u *models.User) *user.ProfileDTO {
	online := u.IsOnline
	if uc.presence != nil {
		if live, err := uc.presence.IsOnline(ctx, u.ID); err != nil {
			uc.logger.Warn("presence store unavailable", "user_id", u.ID, "err", err)
		} else {
			online = live
		}
	}

	dto := &user.ProfileDTO{
		ID:        u.ID,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		IsOnline:  online,
	}
	if !u.LastSeenAt.IsZero() {
		t := u.LastSeenAt
		dto.LastSeenAt = &t
	}
	return dto
}
