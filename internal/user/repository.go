package user

import (
	"context"

	models "github.com/KelGut13/backend-crt/internal/user/model"
)

type Repository interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// UpdateProfile applies the non-empty fields only
	UpdateProfile(ctx context.Context, userID int64, username, avatarURL string) error

	SetOnline(ctx context.Context, userID int64, online bool) error
}
