package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPresence keeps one TTL key per online user. Clients refresh it through
// the online-status endpoint; a missed refresh lets the key lapse to offline.
type RedisPresence struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPresence(rdb *redis.Client, ttl time.Duration) *RedisPresence {
	return &RedisPresence{rdb: rdb, ttl: ttl}
}

func (p *RedisPresence) key(userID int64) string {
	return fmt.Sprintf("presence:online:%d", userID)
}

func (p *RedisPresence) SetOnline(ctx context.Context, userID int64) error {
	return p.rdb.Set(ctx, p.key(userID), "1", p.ttl).Err()
}

func (p *RedisPresence) SetOffline(ctx context.Context, userID int64) error {
	return p.rdb.Del(ctx, p.key(userID)).Err()
}

func (p *RedisPresence) IsOnline(ctx context.Context, userID int64) (bool, error) {
	n, err := p.rdb.Exists(ctx, p.key(userID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
