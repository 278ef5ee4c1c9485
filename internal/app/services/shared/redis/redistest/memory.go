// Package redistest provides an in-memory RedisRepository for tests. It
// keeps the JSON encoding of the real repository so stored strings read
// back quoted.
package redistest

import (
	"context"
	"giya-service/internal/app/contracts"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type entry struct {
	value     string
	expiresAt time.Time
}

type Memory struct {
	mu      sync.Mutex
	values  map[string]entry
	sets    map[string]map[string]struct{}
	Now     func() time.Time
	FailSet error
}

var _ contracts.RedisRepository = (*Memory)(nil)

func New() *Memory {
	return &Memory{
		values: make(map[string]entry),
		sets:   make(map[string]map[string]struct{}),
		Now:    time.Now,
	}
}

func (m *Memory) live(key string) (entry, bool) {
	e, ok := m.values[key]
	if !ok {
		return e, false
	}
	if !e.expiresAt.IsZero() && !m.Now().Before(e.expiresAt) {
		delete(m.values, key)
		return e, false
	}
	return e, true
}

func (m *Memory) expiry(exp time.Duration) time.Time {
	if exp <= 0 {
		return time.Time{}
	}
	return m.Now().Add(exp)
}

func (m *Memory) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
		delete(m.sets, key)
	}
	return nil
}

func (m *Memory) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if m.FailSet != nil {
		return m.FailSet
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = entry{value: string(raw), expiresAt: m.expiry(exp)}
	return nil
}

func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, _ := m.live(key)
	return e.value, nil
}

func (m *Memory) Expire(ctx context.Context, key string, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.live(key); ok {
		e.expiresAt = m.expiry(exp)
		m.values[key] = e
	}
	return nil
}

func (m *Memory) IncrementWithTTL(ctx context.Context, key string, exp time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(key)
	count := 0
	if ok {
		count, _ = strconv.Atoi(e.value)
	} else {
		e.expiresAt = m.expiry(exp)
	}
	count++
	e.value = strconv.Itoa(count)
	m.values[key] = e
	return count, nil
}

func (m *Memory) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.sets[key]
	if !ok {
		set = make(map[string]struct{})
		m.sets[key] = set
	}
	for _, v := range values {
		switch member := v.(type) {
		case string:
			set[member] = struct{}{}
		default:
			raw, _ := json.Marshal(member)
			set[string(raw)] = struct{}{}
		}
	}
	return nil
}

func (m *Memory) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	members := make([]string, 0, len(m.sets[key]))
	for member := range m.sets[key] {
		members = append(members, member)
	}
	sort.Strings(members)
	return members, nil
}

func (m *Memory) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.live(key); ok {
		return false, nil
	}
	m.values[key] = entry{value: string(raw), expiresAt: m.expiry(exp)}
	return true, nil
}

// Has reports whether key holds a live value.
func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.live(key)
	return ok
}
