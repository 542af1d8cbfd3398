package redis

// Package redis provides Redis-based adapters for SustainaStock.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
)

const (
	defaultFlashPrefix = "flash:"
	defaultFlashTTL    = 2 * time.Minute
)

// FlashStore is a Redis-backed one-shot notification store.
// Entries expire on their own; Take removes them atomically with GETDEL.
type FlashStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// FlashStoreOptions configures a FlashStore.
type FlashStoreOptions struct {
	Prefix string
	TTL    time.Duration
}

// NewFlashStore creates a Redis flash store with default prefix and TTL.
func NewFlashStore(client redis.UniversalClient) *FlashStore {
	return NewFlashStoreWithOptions(client, FlashStoreOptions{})
}

// NewFlashStoreWithOptions creates a Redis flash store with a custom key prefix and TTL.
func NewFlashStoreWithOptions(client redis.UniversalClient, opts FlashStoreOptions) *FlashStore {
	if opts.Prefix == "" {
		opts.Prefix = defaultFlashPrefix
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultFlashTTL
	}
	return &FlashStore{
		client: client,
		prefix: opts.Prefix,
		ttl:    opts.TTL,
	}
}

func (s *FlashStore) Put(ctx context.Context, n model.Notification) (string, error) {
	if n.Message == "" {
		return "", errors.New("flash message cannot be empty")
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("marshal flash: %w", err)
	}

	id := uuid.NewString()
	if err := s.client.Set(ctx, s.prefix+id, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set: %w", err)
	}
	return id, nil
}

func (s *FlashStore) Take(ctx context.Context, id string) (model.Notification, bool, error) {
	if id == "" {
		return model.Notification{}, false, nil
	}

	data, err := s.client.GetDel(ctx, s.prefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Notification{}, false, nil
		}
		return model.Notification{}, false, fmt.Errorf("redis getdel: %w", err)
	}

	var n model.Notification
	if err := json.Unmarshal([]byte(data), &n); err != nil {
		return model.Notification{}, false, fmt.Errorf("unmarshal flash: %w", err)
	}
	return n, true, nil
}
