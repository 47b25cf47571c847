package repository

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barberpro/internal/kv"
)

type KVRedisRepository struct {
	client *redis.Client
	prefix string
}

func NewKVRedisRepository(client *redis.Client, prefix string) *KVRedisRepository {
	return &KVRedisRepository{client: client, prefix: prefix}
}

func (r *KVRedisRepository) key(k string) string {
	return r.prefix + k
}

func (r *KVRedisRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set grava sem expiração: o snapshot é o registro oficial.
func (r *KVRedisRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.key(key), value, 0).Err()
}

func (r *KVRedisRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

// Compile-time check
var _ kv.Store = (*KVRedisRepository)(nil)
