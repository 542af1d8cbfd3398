// Package memory provides in-process adapters used when Redis is not configured.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
)

type flashEntry struct {
	n       model.Notification
	expires time.Time
}

// FlashStore keeps one-shot notifications in a mutex-guarded map.
// Expired entries are swept lazily on Put.
type FlashStore struct {
	mu      sync.Mutex
	entries map[string]flashEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewFlashStore creates an in-memory flash store. A non-positive ttl defaults to two minutes.
func NewFlashStore(ttl time.Duration) *FlashStore {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &FlashStore{
		entries: make(map[string]flashEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *FlashStore) Put(_ context.Context, n model.Notification) (string, error) {
	if n.Message == "" {
		return "", errors.New("flash message cannot be empty")
	}
	now := s.now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now.UTC()
	}

	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(now)
	s.entries[id] = flashEntry{n: n, expires: now.Add(s.ttl)}
	return id, nil
}

func (s *FlashStore) Take(_ context.Context, id string) (model.Notification, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return model.Notification{}, false, nil
	}
	delete(s.entries, id)
	if !s.now().Before(e.expires) {
		return model.Notification{}, false, nil
	}
	return e.n, true, nil
}

// Len reports the number of stored entries, expired or not.
func (s *FlashStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *FlashStore) sweepLocked(now time.Time) {
	for id, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, id)
		}
	}
}
