package session

import (
	"encoding/json"
	"sync"
	"time"
)

// Store is session-scoped key/value persistence: the server-side stand-in
// for the browser's sessionStorage. Values live for the browsing session
// and are gone afterwards.
type Store interface {
	Get(key string, out any) (bool, error)
	Set(key string, value any) error
	Clear()
}

type storeEntry struct {
	data       []byte
	expiration time.Time
}

// MemoryStore is an in-memory Store with a fixed entry lifetime standing in
// for the browsing-session duration. Expired entries are swept periodically.
type MemoryStore struct {
	entries map[string]storeEntry
	mutex   sync.Mutex
	ttl     time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	store := &MemoryStore{
		entries: make(map[string]storeEntry),
		ttl:     ttl,
	}

	go store.startCleanup()

	return store
}

func (m *MemoryStore) Get(key string, out any) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.entries[key]
	if !exists {
		return false, nil
	}

	if time.Now().After(entry.expiration) {
		delete(m.entries, key)
		return false, nil
	}

	if err := json.Unmarshal(entry.data, out); err != nil {
		return false, err
	}

	return true, nil
}

func (m *MemoryStore) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.entries[key] = storeEntry{
		data:       data,
		expiration: time.Now().Add(m.ttl),
	}

	return nil
}

func (m *MemoryStore) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.entries = make(map[string]storeEntry)
}

func (m *MemoryStore) startCleanup() {
	ticker := time.NewTicker(m.ttl)
	defer ticker.Stop()

	for range ticker.C {
		m.mutex.Lock()
		now := time.Now()
		for k, v := range m.entries {
			if now.After(v.expiration) {
				delete(m.entries, k)
			}
		}
		m.mutex.Unlock()
	}
}
