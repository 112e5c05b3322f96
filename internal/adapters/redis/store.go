// Package redis keeps session history in Redis so several API replicas can
// share one history.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
	"github.com/ewilliams-labs/moodreel/internal/core/ports"
)

// DefaultPrefix namespaces every key the store writes.
const DefaultPrefix = "moodreel:"

const maxTxRetries = 5

// Store implements ports.SessionRepository on top of a Redis client.
type Store struct {
	rdb    *redis.Client
	prefix string
}

var _ ports.SessionRepository = (*Store)(nil)

// NewStore connects to addr and verifies the connection with PING.
func NewStore(ctx context.Context, addr, prefix string) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", addr, err)
	}
	return NewStoreWithClient(rdb, prefix), nil
}

// NewStoreWithClient wraps an existing client.
func NewStoreWithClient(rdb *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{rdb: rdb, prefix: prefix}
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.rdb.Close()
}

func (s *Store) key(parts ...string) string {
	return s.prefix + strings.Join(parts, ":")
}

func (s *Store) SaveVersion(ctx context.Context, v domain.StoryVersion) (domain.StoryVersion, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	dataKey, orderKey := s.key("versions", "data"), s.key("versions", "order")

	txf := func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, dataKey, v.ID).Result()
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("redis: version %s: %w", v.ID, domain.ErrDuplicate)
		}
		n, err := tx.LLen(ctx, orderKey).Result()
		if err != nil {
			return err
		}
		v.Number = int(n) + 1
		payload, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, dataKey, v.ID, payload)
			pipe.RPush(ctx, orderKey, v.ID)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.rdb.Watch(ctx, txf, dataKey, orderKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.StoryVersion{}, err
			}
			return domain.StoryVersion{}, fmt.Errorf("redis: save version: %w", err)
		}
		return v, nil
	}
	return domain.StoryVersion{}, fmt.Errorf("redis: save version: %w", redis.TxFailedErr)
}

func (s *Store) ListVersions(ctx context.Context) ([]domain.StoryVersion, error) {
	var out []domain.StoryVersion
	err := s.loadOrdered(ctx, s.key("versions", "order"), s.key("versions", "data"), func(raw string) error {
		var v domain.StoryVersion
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis: list versions: %w", err)
	}
	return out, nil
}

func (s *Store) GetVersion(ctx context.Context, id string) (domain.StoryVersion, error) {
	raw, err := s.rdb.HGet(ctx, s.key("versions", "data"), id).Result()
	if errors.Is(err, redis.Nil) {
		return domain.StoryVersion{}, fmt.Errorf("redis: version %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.StoryVersion{}, fmt.Errorf("redis: get version: %w", err)
	}
	var v domain.StoryVersion
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return domain.StoryVersion{}, fmt.Errorf("redis: decode version %s: %w", id, err)
	}
	return v, nil
}

func (s *Store) AddCollaborator(ctx context.Context, c domain.Collaborator) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("redis: encode collaborator: %w", err)
	}
	added, err := s.rdb.HSetNX(ctx, s.key("collaborators", "data"), c.Email, payload).Result()
	if err != nil {
		return fmt.Errorf("redis: add collaborator: %w", err)
	}
	if !added {
		return fmt.Errorf("redis: collaborator %s: %w", c.Email, domain.ErrDuplicate)
	}
	if err := s.rdb.RPush(ctx, s.key("collaborators", "order"), c.Email).Err(); err != nil {
		return fmt.Errorf("redis: add collaborator: %w", err)
	}
	return nil
}

func (s *Store) RemoveCollaborator(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	n, err := s.rdb.HDel(ctx, s.key("collaborators", "data"), email).Result()
	if err != nil {
		return fmt.Errorf("redis: remove collaborator: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("redis: collaborator %s: %w", email, domain.ErrNotFound)
	}
	if err := s.rdb.LRem(ctx, s.key("collaborators", "order"), 0, email).Err(); err != nil {
		return fmt.Errorf("redis: remove collaborator: %w", err)
	}
	return nil
}

func (s *Store) ListCollaborators(ctx context.Context) ([]domain.Collaborator, error) {
	var out []domain.Collaborator
	err := s.loadOrdered(ctx, s.key("collaborators", "order"), s.key("collaborators", "data"), func(raw string) error {
		var c domain.Collaborator
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis: list collaborators: %w", err)
	}
	return out, nil
}

// loadOrdered walks the IDs in orderKey and hands each stored payload from
// dataKey to fn. IDs whose payload is gone are skipped.
func (s *Store) loadOrdered(ctx context.Context, orderKey, dataKey string, fn func(string) error) error {
	ids, err := s.rdb.LRange(ctx, orderKey, 0, -1).Result()
	if err != nil || len(ids) == 0 {
		return err
	}
	vals, err := s.rdb.HMGet(ctx, dataKey, ids...).Result()
	if err != nil {
		return err
	}
	for _, val := range vals {
		raw, ok := val.(string)
		if !ok {
			continue
		}
		if err := fn(raw); err != nil {
			return err
		}
	}
	return nil
}
