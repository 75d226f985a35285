package user

import "context"

type Usecase interface {
	GetProfile(ctx context.Context, userID int64) (*ProfileDTO, error)
	UpdateProfile(ctx context.Context, userID int64, cmd UpdateProfileCommand) (*ProfileDTO, error)
	SetOnlineStatus(ctx context.Context, userID int64, online bool) error
}
