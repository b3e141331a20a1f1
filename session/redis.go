package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisPromoSession struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPromoSession stores pending promos in Redis under one key per
// user. A zero ttl keeps entries until explicitly cleared.
func NewRedisPromoSession(client *redis.Client, ttl time.Duration) PromoSession {
	return &redisPromoSession{client: client, ttl: ttl}
}

func (s *redisPromoSession) key(userID uint) string {
	return fmt.Sprintf("promo:user:%d", userID)
}

func (s *redisPromoSession) Get(ctx context.Context, userID uint) (*AppliedPromo, error) {
	data, err := s.client.Get(ctx, s.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var promo AppliedPromo
	if err := json.Unmarshal([]byte(data), &promo); err != nil {
		return nil, err
	}
	return &promo, nil
}

func (s *redisPromoSession) Set(ctx context.Context, userID uint, promo AppliedPromo) error {
	data, err := json.Marshal(promo)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(userID), data, s.ttl).Err()
}

func (s *redisPromoSession) Clear(ctx context.Context, userID uint) error {
	return s.client.Del(ctx, s.key(userID)).Err()
}
