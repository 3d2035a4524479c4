package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/user235678/yt-adawi-sub002/internal/pipeline"
)

// SessionStore keeps one ViewState per browsing session. State lives only
// for the duration of a session: the Redis implementation expires entries
// after the configured TTL, nothing is shared across sessions.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (pipeline.ViewState, bool, error)
	Save(ctx context.Context, sessionID string, state pipeline.ViewState) error
}

type redisSessionStore struct {
	redisClient *redis.Client
	keyPrefix   string
	ttl         time.Duration
}

func NewRedisSessionStore(redisClient *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{
		redisClient: redisClient,
		keyPrefix:   "storefront:session:",
		ttl:         ttl,
	}
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (pipeline.ViewState, bool, error) {
	key := s.keyPrefix + sessionID
	val, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return pipeline.NewViewState(), false, nil // No state saved yet
		}
		return pipeline.NewViewState(), false, fmt.Errorf("failed to get view state for session %s: %w", sessionID, err)
	}

	var state pipeline.ViewState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return pipeline.NewViewState(), false, fmt.Errorf("failed to decode view state for session %s: %w", sessionID, err)
	}

	return state, true, nil
}

func (s *redisSessionStore) Save(ctx context.Context, sessionID string, state pipeline.ViewState) error {
	key := s.keyPrefix + sessionID
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode view state for session %s: %w", sessionID, err)
	}

	if err := s.redisClient.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save view state for session %s: %w", sessionID, err)
	}
	return nil
}

// memorySessionStore backs sessions with an in-process map. Used when Redis
// is not configured and in tests.
type memorySessionStore struct {
	mutex  sync.RWMutex
	states map[string]pipeline.ViewState
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{states: make(map[string]pipeline.ViewState)}
}

func (s *memorySessionStore) Get(ctx context.Context, sessionID string) (pipeline.ViewState, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	st, ok := s.states[sessionID]
	if !ok {
		return pipeline.NewViewState(), false, nil
	}
	return st, true, nil
}

func (s *memorySessionStore) Save(ctx context.Context, sessionID string, state pipeline.ViewState) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.states[sessionID] = state
	return nil
}
