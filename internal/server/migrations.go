package server

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	chatModel "github.com/KelGut13/backend-crt/internal/chat/model"
	friendModel "github.com/KelGut13/backend-crt/internal/friend/model"
	userModels "github.com/KelGut13/backend-crt/internal/user/model"
)

// CreateSchema creates the application tables if they do not exist yet.
// Conversations must exist before messages.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*userModels.User)(nil),
		(*friendModel.Friendship)(nil),
		(*chatModel.Conversation)(nil),
		(*chatModel.Message)(nil),
	}

	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrap(err, "server.CreateSchema")
		}
	}
	return nil
}
