package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "session:"

// RedisRepository stores each session as a JSON value whose TTL matches the
// session's remaining validity, so Redis evicts expired sessions itself.
type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func redisKey(token string) string {
	return redisKeyPrefix + token
}

func (r *RedisRepository) Create(ctx context.Context, s *models.Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ok, err := r.rdb.SetNX(ctx, redisKey(s.Token), data, ttl).Result()
	if err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	if !ok {
		return common.ErrorAlreadyExists
	}
	return nil
}

func (r *RedisRepository) Find(ctx context.Context, token string) (*models.Session, error) {
	data, err := r.rdb.Get(ctx, redisKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("redis error: %w", err)
	}

	s := &models.Session{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

func (r *RedisRepository) Delete(ctx context.Context, token string) error {
	if err := r.rdb.Del(ctx, redisKey(token)).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: keys carry their own TTL.
func (r *RedisRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
