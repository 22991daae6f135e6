package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session: not found")

type Store interface {
	Get(ctx context.Context, id string) (BrowseSession, error)
	Put(ctx context.Context, session BrowseSession) error
	Delete(ctx context.Context, id string) error
}

// RedisStore persists sessions as JSON values with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *RedisStore) Get(ctx context.Context, id string) (BrowseSession, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return BrowseSession{}, ErrNotFound
	}
	if err != nil {
		return BrowseSession{}, err
	}
	var session BrowseSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return BrowseSession{}, err
	}
	return session, nil
}

func (s *RedisStore) Put(ctx context.Context, session BrowseSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), data, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

// MemoryStore backs sessions when no redis address is configured, so
// development runs and tests need no daemon.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]BrowseSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]BrowseSession)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (BrowseSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return BrowseSession{}, ErrNotFound
	}
	return session, nil
}

func (s *MemoryStore) Put(ctx context.Context, session BrowseSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
