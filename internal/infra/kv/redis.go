package kv

import (
	"context"
	"errors"

	"room-booking/internal/infra"
	"room-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const redisMaxRetries = 3

// RedisBackend stores the value under key and its revision under key:rev.
// Put is a WATCH/MULTI compare-and-set on the revision key.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func DialRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, infra.WrapRepoErr("failed to ping redis at "+cfg.Addr, err)
	}
	return client, nil
}

func revisionKey(key string) string { return key + ":rev" }

func (r *RedisBackend) Get(ctx context.Context, key string) (Record, error) {
	var valueCmd, revCmd *redis.StringCmd
	_, err := r.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		valueCmd = p.Get(ctx, key)
		revCmd = p.Get(ctx, revisionKey(key))
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return Record{}, infra.WrapRepoErr("failed to read "+key+" from redis", err)
	}

	value, err := valueCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, notFound(key)
	}
	if err != nil {
		return Record{}, infra.WrapRepoErr("failed to read "+key+" from redis", err)
	}

	rev, _ := revCmd.Int64() // missing or malformed counts as 0
	return Record{Value: value, Revision: rev}, nil
}

func (r *RedisBackend) Put(ctx context.Context, key string, value []byte, expected int64) (int64, error) {
	revKey := revisionKey(key)
	var next int64
	var casErr error

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, revKey).Int64()
		if errors.Is(err, redis.Nil) {
			current = 0
		} else if err != nil {
			return err
		}
		if !admits(expected, current) {
			casErr = conflict(key, expected, current)
			return casErr
		}

		next = current + 1
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, value, 0)
			p.Set(ctx, revKey, next, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < redisMaxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, revKey)
		switch {
		case err == nil:
			return next, nil
		case casErr != nil:
			return 0, casErr
		case errors.Is(err, redis.TxFailedErr):
			// the revision key moved between WATCH and EXEC
			if expected != AnyRevision {
				return 0, infra.WrapRepoErr("concurrent write to "+key, err, infra.KindConflict)
			}
			continue
		default:
			return 0, infra.WrapRepoErr("failed to write "+key+" to redis", err)
		}
	}
	return 0, infra.WrapRepoErr("redis write retries exhausted for "+key, redis.TxFailedErr, infra.KindConflict)
}

// Delete blanks the value and bumps the revision in one MULTI, leaving
// untouched keys that were never written.
func (r *RedisBackend) Delete(ctx context.Context, key string) error {
	revKey := revisionKey(key)

	txf := func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key, revKey).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, "", 0)
			p.Incr(ctx, revKey)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < redisMaxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, key, revKey)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return infra.WrapRepoErr("failed to clear "+key+" in redis", err)
		}
	}
	return infra.WrapRepoErr("redis clear retries exhausted for "+key, redis.TxFailedErr)
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}
