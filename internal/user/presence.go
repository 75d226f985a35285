package user

import "context"

// PresenceStore tracks liveness separately from the persistent is_online
// flag. Entries expire on their own, so a crashed client eventually reads
// as offline without any cleanup pass.
type PresenceStore interface {
	SetOnline(ctx context.Context, userID int64) error
	SetOffline(ctx context.Context, userID int64) error
	IsOnline(ctx context.Context, userID int64) (bool, error)
}
