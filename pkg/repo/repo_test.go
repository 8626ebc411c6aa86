package repo

import (
	"encoding/json"
	"os"
	"sync"
)

// memStore is an in-memory stand-in for the diskv-backed store. It mirrors
// the corrupt-tolerant Load contract: missing keys leave the target untouched.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Load(name string, v any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[name]
	if !ok {
		return nil
	}
	_ = json.Unmarshal(data, v)
	return nil
}

func (m *memStore) Save(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[name] = data
	return nil
}

func (m *memStore) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[name]; !ok {
		return os.ErrNotExist
	}
	delete(m.data, name)
	return nil
}

// seed writes pre-encoded JSON under a key, bypassing the repositories.
func (m *memStore) seed(name, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[name] = []byte(raw)
}
