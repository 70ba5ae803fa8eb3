package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранилище поверх Redis. Все ключи получают общий префикс
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore создает хранилище поверх Redis
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

// Get возвращает значение по ключу
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - key=%s: %v", ErrExecQuery, key, err)
	}
	return value, nil
}

// Set сохраняет значение по ключу без TTL
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: Set - key=%s: %v", ErrExecQuery, key, err)
	}
	return nil
}

// Remove удаляет ключ
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: Remove - key=%s: %v", ErrExecQuery, key, err)
	}
	return nil
}

func (s *RedisStore) key(key string) string {
	return s.prefix + key
}
