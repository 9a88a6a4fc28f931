package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"talent_bridge_backend/internal/engine"
	"talent_bridge_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

// UpdateFunc derives the next session from the stored one. Returning an
// error aborts the update and leaves the stored session untouched.
type UpdateFunc func(engine.Session) (engine.Session, error)

// SessionStore keeps in-flight assessment sessions. Update is atomic per
// session id.
type SessionStore interface {
	Create(ctx context.Context, s engine.Session) error
	Get(ctx context.Context, id string) (engine.Session, error)
	Update(ctx context.Context, id string, fn UpdateFunc) (engine.Session, error)
}

type memoryEntry struct {
	session   engine.Session
	expiresAt time.Time
}

type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemorySessionStore) Create(_ context.Context, s engine.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = &memoryEntry{session: s, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (engine.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.lookup(id)
	if err != nil {
		return engine.Session{}, err
	}
	return e.session, nil
}

// Update holds the store lock while fn runs; fn must not call back into the
// store.
func (m *MemorySessionStore) Update(_ context.Context, id string, fn UpdateFunc) (engine.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.lookup(id)
	if err != nil {
		return engine.Session{}, err
	}
	next, err := fn(e.session)
	if err != nil {
		return e.session, err
	}
	e.session = next
	e.expiresAt = m.now().Add(m.ttl)
	return next, nil
}

func (m *MemorySessionStore) lookup(id string) (*memoryEntry, error) {
	e, ok := m.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	if m.now().After(e.expiresAt) {
		delete(m.sessions, id)
		return nil, util.ErrSessionNotFound
	}
	return e, nil
}

// Sweep drops expired sessions and reports how many were removed.
func (m *MemorySessionStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	removed := 0
	for id, e := range m.sessions {
		if now.After(e.expiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps every interval until ctx is done.
func (m *MemorySessionStore) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Sweep()
			}
		}
	}()
}

func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// RedisSessionStore keeps sessions as JSON values with a sliding TTL. Update
// uses WATCH/MULTI and retries a few times when another writer wins.
type RedisSessionStore struct {
	rdb     *redis.Client
	prefix  string
	ttl     time.Duration
	retries int
}

func NewRedisSessionStore(rdb *redis.Client, prefix string, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, prefix: prefix, ttl: ttl, retries: 5}
}

func (r *RedisSessionStore) key(id string) string {
	return r.prefix + id
}

func (r *RedisSessionStore) Create(ctx context.Context, s engine.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.key(s.ID), data, r.ttl).Err()
}

func (r *RedisSessionStore) Get(ctx context.Context, id string) (engine.Session, error) {
	return r.read(ctx, r.rdb, id)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *RedisSessionStore) read(ctx context.Context, c getter, id string) (engine.Session, error) {
	data, err := c.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return engine.Session{}, util.ErrSessionNotFound
	}
	if err != nil {
		return engine.Session{}, err
	}
	var s engine.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return engine.Session{}, err
	}
	return s, nil
}

func (r *RedisSessionStore) Update(ctx context.Context, id string, fn UpdateFunc) (engine.Session, error) {
	key := r.key(id)
	var result engine.Session
	var fnErr error

	txf := func(tx *redis.Tx) error {
		current, err := r.read(ctx, tx, id)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			result, fnErr = current, err
			return nil
		}
		data, err := json.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		if err == nil {
			result = next
		}
		return err
	}

	for i := 0; i < r.retries; i++ {
		err := r.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return engine.Session{}, err
		}
		return result, fnErr
	}
	return engine.Session{}, util.ErrSessionConflict
}
