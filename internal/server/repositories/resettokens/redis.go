// Package resettokens keeps password reset tokens in Redis.
//
// Tokens are stored under the hash of their value, never in clear text, and
// are removed on first redemption.
package resettokens

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tuchka:reset:"

// maxRetries bounds optimistic-lock retries in Consume.
const maxRetries = 4

// Record is what a reset token resolves to. SecurityStamp is the account's
// stamp at issuance; a token is only honoured while the stamp is unchanged.
type Record struct {
	UserID        string `json:"uid"`
	SecurityStamp string `json:"stamp"`
}

type Store interface {
	Save(ctx context.Context, tokenHash string, rec Record, ttl time.Duration) error
	Consume(ctx context.Context, tokenHash string) (*Record, error)
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(tokenHash string) string {
	return keyPrefix + tokenHash
}

func (s *RedisStore) Save(ctx context.Context, tokenHash string, rec Record, ttl time.Duration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key(tokenHash), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}

// Consume atomically reads and deletes the record. Unknown, expired and
// already consumed tokens yield common.ErrInvalidToken.
func (s *RedisStore) Consume(ctx context.Context, tokenHash string) (*Record, error) {
	k := key(tokenHash)

	for i := 0; i < maxRetries; i++ {
		var rec Record

		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, k).Bytes()
			if err != nil {
				return err
			}
			if err := json.Unmarshal(data, &rec); err != nil {
				return fmt.Errorf("corrupt reset record: %w", err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Del(ctx, k)
				return nil
			})
			return err
		}, k)

		switch {
		case errors.Is(err, redis.TxFailedErr):
			continue
		case errors.Is(err, redis.Nil):
			return nil, common.ErrInvalidToken
		case err != nil:
			return nil, fmt.Errorf("redis error: %w", err)
		}

		return &rec, nil
	}

	return nil, common.ErrInvalidToken
}
